package dto

import (
	"time"

	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/models/task"
)

// CreateTaskRequest - тело запроса на создание.
// Поле id принимается, но игнорируется: номер выдаёт хранилище.
type CreateTaskRequest struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date" validate:"gt"`
	IsCompleted bool      `json:"is_completed" validate:"eq=false"`
}

// UpdateTaskRequest - полная замена записи, id в теле не имеет силы.
type UpdateTaskRequest struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	IsCompleted bool      `json:"is_completed"`
}

type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	IsCompleted bool      `json:"is_completed"`
}

func FromTask(t task.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		IsCompleted: t.IsCompleted,
	}
}

func FromTaskList(tasks []task.Task) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = FromTask(t)
	}
	return result
}
