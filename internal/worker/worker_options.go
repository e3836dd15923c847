package worker

import "time"

type WorkerOption func(*OverdueWorker)

func WithInterval(interval time.Duration) WorkerOption {
	if interval <= 0 {
		return nil
	}
	return func(w *OverdueWorker) {
		w.interval = interval
	}
}

func WithLimit(limit int) WorkerOption {
	if limit <= 0 {
		return nil
	}
	return func(w *OverdueWorker) {
		w.limit = limit
	}
}
