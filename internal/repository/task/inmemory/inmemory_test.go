package inmemory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/models/task"
	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/repository"
	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/repository/task/inmemory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTaskStorage_New тестирует создание хранилища
func TestTaskStorage_New(t *testing.T) {
	storage := inmemory.NewTaskStorage()
	assert.NotNil(t, storage)
	assert.Empty(t, storage.List(context.Background()))
}

// TestTaskStorage_Create тестирует выдачу последовательных id начиная с 1
func TestTaskStorage_Create(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	for i := 1; i <= 5; i++ {
		created := storage.Create(ctx, task.Task{
			Title:   fmt.Sprintf("Task %d", i),
			DueDate: time.Now().Add(24 * time.Hour),
		})
		assert.Equal(t, int64(i), created.ID)
	}

	// Проверяем, что id попарно различны и строго возрастают
	tasks := storage.List(ctx)
	require.Len(t, tasks, 5)
	for i := 1; i < len(tasks); i++ {
		assert.Greater(t, tasks[i].ID, tasks[i-1].ID)
	}
}

// TestTaskStorage_Create_IgnoresCandidateID тестирует игнорирование id кандидата
func TestTaskStorage_Create_IgnoresCandidateID(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()
	dueDate := time.Now().Add(24 * time.Hour)

	created := storage.Create(ctx, task.Task{
		ID:          999,
		Title:       "Test Task",
		Description: "Test Description",
		DueDate:     dueDate,
	})

	// id назначен хранилищем, остальные поля не тронуты
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Test Task", created.Title)
	assert.Equal(t, "Test Description", created.Description)
	assert.Equal(t, dueDate, created.DueDate)
	assert.False(t, created.IsCompleted)

	// Под чужим id ничего не появилось
	_, err := storage.GetByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// TestTaskStorage_GetByID тестирует получение задачи по ID
func TestTaskStorage_GetByID(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	created := storage.Create(ctx, task.Task{
		Title:   "Test Get Task",
		DueDate: time.Now().Add(24 * time.Hour),
	})

	retrieved, err := storage.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, retrieved)

	// Несуществующий id
	_, err = storage.GetByID(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// TestTaskStorage_Update тестирует полную замену записи
func TestTaskStorage_Update(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	storage.Create(ctx, task.Task{Title: "First", DueDate: time.Now().Add(time.Hour)})
	second := storage.Create(ctx, task.Task{Title: "Buy milk", DueDate: time.Now().Add(time.Hour)})

	// Подменный id в замене не имеет силы, действует id из аргумента
	updated, err := storage.Update(ctx, second.ID, task.Task{
		ID:          999,
		Title:       "Buy oat milk",
		Description: "2 litres",
		DueDate:     second.DueDate,
		IsCompleted: true,
	})
	require.NoError(t, err)
	assert.Equal(t, second.ID, updated.ID)
	assert.Equal(t, "Buy oat milk", updated.Title)
	assert.Equal(t, "2 litres", updated.Description)
	assert.True(t, updated.IsCompleted)

	retrieved, err := storage.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, retrieved)

	// Позиция в порядке обхода не изменилась
	tasks := storage.List(ctx)
	require.Len(t, tasks, 2)
	assert.Equal(t, "First", tasks[0].Title)
	assert.Equal(t, "Buy oat milk", tasks[1].Title)
}

// TestTaskStorage_Update_NotFound тестирует замену несуществующей задачи
func TestTaskStorage_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	storage.Create(ctx, task.Task{Title: "Only one", DueDate: time.Now().Add(time.Hour)})
	before := storage.List(ctx)

	_, err := storage.Update(ctx, 42, task.Task{Title: "Ghost"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// Хранилище не изменилось
	assert.Equal(t, before, storage.List(ctx))
}

// TestTaskStorage_Delete тестирует удаление задачи
func TestTaskStorage_Delete(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	first := storage.Create(ctx, task.Task{Title: "To delete", DueDate: time.Now().Add(time.Hour)})
	second := storage.Create(ctx, task.Task{Title: "To keep", DueDate: time.Now().Add(time.Hour)})

	removed, err := storage.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, removed)

	// Удалена ровно одна запись
	tasks := storage.List(ctx)
	require.Len(t, tasks, 1)
	assert.Equal(t, second.ID, tasks[0].ID)

	// Повторное удаление: уже не найдено
	_, err = storage.Delete(ctx, first.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// TestTaskStorage_DeletedIDNotReused тестирует невозврат освободившихся id
func TestTaskStorage_DeletedIDNotReused(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	first := storage.Create(ctx, task.Task{Title: "One", DueDate: time.Now().Add(time.Hour)})
	storage.Create(ctx, task.Task{Title: "Two", DueDate: time.Now().Add(time.Hour)})

	_, err := storage.Delete(ctx, first.ID)
	require.NoError(t, err)

	// Счётчик не откатывается: новая задача получает id 3, а не 1
	third := storage.Create(ctx, task.Task{Title: "Three", DueDate: time.Now().Add(time.Hour)})
	assert.Equal(t, int64(3), third.ID)

	_, err = storage.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// TestTaskStorage_List тестирует снимок коллекции
func TestTaskStorage_List(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	t.Run("insertion order", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			storage.Create(ctx, task.Task{
				Title:   fmt.Sprintf("Task %d", i),
				DueDate: time.Now().Add(time.Duration(i) * time.Hour),
			})
		}

		tasks := storage.List(ctx)
		require.Len(t, tasks, 3)
		assert.Equal(t, "Task 1", tasks[0].Title)
		assert.Equal(t, "Task 2", tasks[1].Title)
		assert.Equal(t, "Task 3", tasks[2].Title)
	})

	t.Run("snapshot is independent", func(t *testing.T) {
		snapshot := storage.List(ctx)
		require.NotEmpty(t, snapshot)

		// Правка снимка не задевает хранилище
		snapshot[0].Title = "Mutated"
		fresh := storage.List(ctx)
		assert.Equal(t, "Task 1", fresh[0].Title)
	})

	t.Run("length follows creates minus deletes", func(t *testing.T) {
		before := len(storage.List(ctx))

		created := storage.Create(ctx, task.Task{Title: "Temp", DueDate: time.Now().Add(time.Hour)})
		assert.Len(t, storage.List(ctx), before+1)

		_, err := storage.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Len(t, storage.List(ctx), before)
	})
}

// TestTaskStorage_Scenario тестирует сквозной сценарий из двух задач
func TestTaskStorage_Scenario(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()
	tomorrow := time.Now().Add(24 * time.Hour)

	taskA := storage.Create(ctx, task.Task{Title: "Buy milk", DueDate: tomorrow})
	assert.Equal(t, int64(1), taskA.ID)

	taskB := storage.Create(ctx, task.Task{Title: "Walk the dog", DueDate: tomorrow})
	assert.Equal(t, int64(2), taskB.ID)

	tasks := storage.List(ctx)
	require.Len(t, tasks, 2)
	assert.Equal(t, taskA, tasks[0])
	assert.Equal(t, taskB, tasks[1])

	removed, err := storage.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, taskA, removed)

	tasks = storage.List(ctx)
	require.Len(t, tasks, 1)
	assert.Equal(t, taskB, tasks[0])

	_, err = storage.GetByID(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// TestTaskStorage_ConcurrentAccess тестирует конкурентный доступ
func TestTaskStorage_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()
	goroutines := 10
	perGoroutine := 20

	var wg sync.WaitGroup
	created := make(chan int64, goroutines*perGoroutine)

	// Создаём задачи конкурентно и параллельно читаем снимки
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				res := storage.Create(ctx, task.Task{
					Title:   fmt.Sprintf("Task %d-%d", workerID, j),
					DueDate: time.Now().Add(time.Duration(j) * time.Hour),
				})
				created <- res.ID
				storage.List(ctx)
			}
		}(i)
	}
	wg.Wait()
	close(created)

	// Ни один id не выдан дважды
	seen := make(map[int64]bool)
	for id := range created {
		assert.False(t, seen[id], "id %d выдан повторно", id)
		seen[id] = true
	}
	assert.Len(t, seen, goroutines*perGoroutine)
	assert.Len(t, storage.List(ctx), goroutines*perGoroutine)
}

// TestTaskStorage_EmptyStorage тестирует операции над пустым хранилищем
func TestTaskStorage_EmptyStorage(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	assert.Empty(t, storage.List(ctx))

	_, err := storage.GetByID(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = storage.Update(ctx, 1, task.Task{Title: "Ghost"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = storage.Delete(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
