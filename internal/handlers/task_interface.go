package handlers

import (
	"context"
	"time"

	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/models/task"
)

type Service interface {
	CreateNewTask(context.Context, string, string, time.Time) task.Task
	GetTasks(context.Context) []task.Task
	GetTaskByID(context.Context, int64) (task.Task, error)
	UpdateTaskByID(context.Context, int64, task.Task) (task.Task, error)
	DeleteTaskByID(context.Context, int64) (task.Task, error)
}
