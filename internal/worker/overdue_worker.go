package worker

import (
	"context"
	"time"

	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/logger"
	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/service"
	"go.uber.org/zap"
)

// OverdueWorker периодически пересчитывает просроченные задачи.
// Записи он не меняет: единственный способ изменить задачу остаётся за операцией обновления.
type OverdueWorker struct {
	repo     service.TaskRepository
	interval time.Duration
	limit    int
}

func NewOverdueWorker(repo service.TaskRepository, options ...WorkerOption) *OverdueWorker {
	w := &OverdueWorker{
		repo:     repo,
		interval: 5 * time.Minute,
		limit:    100,
	}

	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}

	return w
}

func (w *OverdueWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logger.Info("Worker: Фоновая проверка задач на просроченность", zap.Time("started_at", time.Now()))
			w.Check(ctx)
		case <-ctx.Done():
			logger.Info("Worker: Фоновая проверка останавливается")
			return
		}
	}
}

func (w *OverdueWorker) Check(ctx context.Context) {
	start := time.Now()

	tasks := w.repo.List(ctx)

	overdueCount := 0
	now := time.Now()

	for _, t := range tasks {
		if t.IsCompleted {
			continue
		}

		if t.DueDate.Before(now) {
			overdueCount++
		}

		if overdueCount >= w.limit {
			break
		}
	}

	logger.Info(
		"Worker: Завершение проверки задач",
		zap.Duration("ms", time.Since(start)),
		zap.Int("checked", len(tasks)),
		zap.Int("overdue", overdueCount),
	)
}
