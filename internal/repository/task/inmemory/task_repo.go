package inmemory

import (
	"context"
	"sync"

	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/models/task"
	repo "github.com/AbubakarImam/Mini-Task-Manager-API/internal/repository"
)

// TaskStorage хранит задачи в памяти процесса. Одна RWMutex закрывает
// и коллекцию, и счётчик идентификаторов: запись идёт эксклюзивно, чтение
// совместно. Читатель никогда не видит частично применённую мутацию.
type TaskStorage struct {
	storage map[int64]task.Task
	ids     []int64
	nextID  int64
	mtx     sync.RWMutex
}

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{
		storage: make(map[int64]task.Task),
		ids:     []int64{},
		nextID:  1,
	}
}

// List возвращает независимую копию всех задач в порядке добавления.
func (s *TaskStorage) List(ctx context.Context) []task.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]task.Task, 0, len(s.ids))
	for _, id := range s.ids {
		res = append(res, s.storage[id])
	}
	return res
}

func (s *TaskStorage) GetByID(ctx context.Context, id int64) (task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	taskToGet, ok := s.storage[id]
	if !ok {
		return task.Task{}, repo.ErrNotFound
	}
	return taskToGet, nil
}

// Create игнорирует id кандидата и ставит следующий номер счётчика.
// Счётчик только растёт: id удалённых задач не переиспользуются.
func (s *TaskStorage) Create(ctx context.Context, candidate task.Task) task.Task {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	candidate.ID = s.nextID
	s.nextID++

	s.storage[candidate.ID] = candidate
	s.ids = append(s.ids, candidate.ID)
	return candidate
}

// Update целиком заменяет запись, принудительно сохраняя исходный id.
// Позиция задачи в порядке обхода не меняется.
func (s *TaskStorage) Update(ctx context.Context, id int64, replacement task.Task) (task.Task, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[id]; !ok {
		return task.Task{}, repo.ErrNotFound
	}

	replacement.ID = id
	s.storage[id] = replacement
	return replacement, nil
}

// Delete удаляет запись навсегда и возвращает её последнее значение.
func (s *TaskStorage) Delete(ctx context.Context, id int64) (task.Task, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	removed, ok := s.storage[id]
	if !ok {
		return task.Task{}, repo.ErrNotFound
	}

	delete(s.storage, id)
	for ind, val := range s.ids {
		if val == id {
			s.ids = append(s.ids[:ind], s.ids[ind+1:]...)
			break
		}
	}
	return removed, nil
}
