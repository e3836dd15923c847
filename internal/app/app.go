package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/config"
	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/handlers"
	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/logger"
	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/middleware"
	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/repository/task/inmemory"
	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/service"
	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/worker"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type App struct {
	config     *config.Config
	server     *http.Server
	router     *chi.Mux
	repository service.TaskRepository // интерфейс!
	service    handlers.Service
	worker     *worker.OverdueWorker
	shutdowns  []func() // функции для graceful shutdown
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

func (a *App) Init(ctx context.Context) error {

	if err := logger.Init(a.config.Logging.Development); err != nil {
		return fmt.Errorf("инициализация логгера: %w", err)
	}

	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Завершение работы логгирования...")
		logger.Sync()
	})

	a.repository = inmemory.NewTaskStorage()

	taskService := service.NewTaskService(a.repository)
	a.service = &taskService

	taskHandler := handlers.NewTaskHandler(a.service)

	a.router = newRouter(a.config, taskHandler)

	a.server = &http.Server{
		Addr:              a.config.GetServerAddr(),
		Handler:           a.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if a.config.Worker.Enabled {
		a.worker = worker.NewOverdueWorker(a.repository,
			worker.WithInterval(a.config.Worker.Interval),
			worker.WithLimit(a.config.Worker.Limit),
		)
	}

	return nil
}

func newRouter(cfg *config.Config, taskHandler handlers.TaskHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"Location", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Route("/api/tasks", func(r chi.Router) {

		r.Get("/", taskHandler.GetTasks)  // GET /api/tasks/
		r.Post("/", taskHandler.PostTask) // POST /api/tasks/

		// Только цифровые id, остальное отсекается маршрутом
		r.Route("/{id:[0-9]+}", func(r chi.Router) {
			r.Get("/", taskHandler.GetTaskByID)       // GET /api/tasks/{id}
			r.Put("/", taskHandler.UpdateTaskByID)    // PUT /api/tasks/{id}
			r.Delete("/", taskHandler.DeleteTaskByID) // DELETE /api/tasks/{id}
		})
	})

	// Устаревший префикс /todos навсегда переехал на /tasks
	r.Mount("/todos", redirectTodos())
	r.Mount("/api/todos", redirectTodos())

	r.Get("/health", taskHandler.HealthCheck)

	return r
}

// redirectTodos заменяет первый сегмент /todos на /tasks,
// сохраняя остаток пути и строку запроса. Метод запроса 308 не меняет.
func redirectTodos() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := strings.Replace(r.URL.Path, "/todos", "/tasks", 1)
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}

		logger.Info("HTTP: Переадресация устаревшего пути",
			zap.String("from", r.URL.Path),
			zap.String("to", target))

		http.Redirect(w, r, target, http.StatusPermanentRedirect)
	}
}

// Router отдаёт собранный маршрутизатор, в тестах через него гоняются запросы.
func (a *App) Router() http.Handler {
	return a.router
}

func (a *App) Run(ctx context.Context) error {
	notifyCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	workerCtx, cancelWorker := context.WithCancel(notifyCtx)
	defer cancelWorker()

	var wg sync.WaitGroup

	if a.worker != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.worker.Start(workerCtx)
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP: Сервер запущен", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case runErr = <-errCh:
		logger.Error("HTTP: Сервер остановился с ошибкой", runErr)
	case <-notifyCtx.Done():
		logger.Info("Получен сигнал завершения, останавливаемся...")
	}

	cancelWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка остановки сервера", err)
	}

	wg.Wait()

	// Хуки завершения выполняются в обратном порядке
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}

	if runErr != nil {
		return fmt.Errorf("http-сервер: %w", runErr)
	}
	return nil
}
