package service

import (
	"context"

	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/models/task"
)

type TaskRepository interface {
	Create(context.Context, task.Task) task.Task
	Update(context.Context, int64, task.Task) (task.Task, error)
	List(context.Context) []task.Task
	GetByID(context.Context, int64) (task.Task, error)
	Delete(context.Context, int64) (task.Task, error)
}
