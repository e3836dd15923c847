package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/logger"
	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/models/task"
	rep "github.com/AbubakarImam/Mini-Task-Manager-API/internal/repository"
	"go.uber.org/zap"
)

// здесь ошибки хранилища переводятся в ошибки бизнес-логики

type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) TaskService {
	return TaskService{
		repo: repo,
	}
}

// CreateNewTask собирает задачу из пользовательских полей, id назначает хранилище.
func (s *TaskService) CreateNewTask(ctx context.Context, title, description string, dueDate time.Time) task.Task {
	candidate := task.Task{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
	}

	return s.repo.Create(ctx, candidate)
}

func (s *TaskService) GetTasks(ctx context.Context) []task.Task {
	return s.repo.List(ctx)
}

func (s *TaskService) GetTaskByID(ctx context.Context, id int64) (task.Task, error) {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.Int64("target_id", id))
			return task.Task{}, NewNotFound(ResourceTask, id)
		}
		return task.Task{}, fmt.Errorf("получение задачи: %w", err)
	}

	return found, nil
}

// UpdateTaskByID целиком заменяет запись, id берётся из аргумента, а не из replacement.
func (s *TaskService) UpdateTaskByID(ctx context.Context, id int64, replacement task.Task) (task.Task, error) {
	updated, err := s.repo.Update(ctx, id, replacement)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.Int64("target_id", id))
			return task.Task{}, NewNotFound(ResourceTask, id)
		}
		return task.Task{}, fmt.Errorf("обновление задачи: %w", err)
	}

	return updated, nil
}

// DeleteTaskByID убирает запись и возвращает её последнее состояние.
func (s *TaskService) DeleteTaskByID(ctx context.Context, id int64) (task.Task, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.Int64("target_id", id))
			return task.Task{}, NewNotFound(ResourceTask, id)
		}
		return task.Task{}, fmt.Errorf("удаление задачи: %w", err)
	}

	return removed, nil
}
