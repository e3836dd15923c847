package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/handlers/dto"
	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/logger"
	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/models/task"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type TaskHandler struct {
	TaskService Service
	validate    *validator.Validate
}

func NewTaskHandler(taskService Service) TaskHandler {
	return TaskHandler{
		TaskService: taskService,
		validate:    newValidator(),
	}
}

// parseTaskID читает числовой id из пути.
// Маршрут пропускает только цифры, поэтому ошибка возможна лишь при переполнении.
func parseTaskID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (s *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	logger.Info("HTTP: Вызов сервиса для получения задач")

	tasks := s.TaskService.GetTasks(r.Context())

	logger.Info("HTTP_OUT: Задачи получены",
		zap.Int("count", len(tasks)),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, dto.FromTaskList(tasks))
}

func (s *TaskHandler) PostTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	if r.Method != http.MethodPost {

		logger.Warn("HTTP: Неверный метод",
			zap.String("expected", "POST"),
			zap.String("received", r.Method),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusMethodNotAllowed, "разрешён только POST метод")
		return
	}

	if !checkContentType(r, "application/json") {

		logger.Warn("HTTP: Неверный тип контента",
			zap.String("expected", "application/json"),
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type должен быть application/json")
		return
	}

	var request dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {

		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "неверное тело запроса:"+err.Error())
		return
	}

	// Бизнес-правила проверяются до обращения к хранилищу
	if err := s.validate.Struct(request); err != nil {

		logger.Warn("HTTP: Ошибка валидации",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		handleBusinessError(w, toValidationError(err))
		return
	}

	logger.Info("HTTP: Вызов сервиса создания задач")

	created := s.TaskService.CreateNewTask(r.Context(), request.Title, request.Description, request.DueDate)

	logger.Info("HTTP_OUT: Задача создана",
		zap.Int64("task_id", created.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	w.Header().Set("Location", fmt.Sprintf("/api/tasks/%d", created.ID))
	responseWithJSON(w, http.StatusCreated, dto.FromTask(created))
}

func (s *TaskHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {

	logger.HttpRequestInfo(r, "HTTP: Health check")

	healthCheck(w)
}

func (s *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := parseTaskID(r)
	if err != nil {

		logger.Warn("HTTP: Не удалось получить id",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusNotFound, "задачи с таким id не существует")
		return
	}

	logger.Info("HTTP: Вызов сервиса для получения задачи")

	found, err := s.TaskService.GetTaskByID(r.Context(), id)
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}

		logger.Error("HTTP: Ошибка в Service", err,
			zap.String("operation", "get_task"),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задача получена",
		zap.Int64("task_id", found.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, dto.FromTask(found))
}

func (s *TaskHandler) UpdateTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	logger.HttpRequestInfo(r, "HTTP_IN:")

	if r.Method != http.MethodPut {

		logger.Warn("HTTP: Неверный метод",
			zap.String("expected", "PUT"),
			zap.String("received", r.Method),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusMethodNotAllowed, "только PUT метод доступен")
		return
	}

	id, err := parseTaskID(r)
	if err != nil {

		logger.Warn("HTTP: Не удалось получить id",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusNotFound, "задачи с таким id не существует")
		return
	}

	if !checkContentType(r, "application/json") {

		logger.Warn("HTTP: Неверный тип контента",
			zap.String("expected", "application/json"),
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type должен быть application/json")
		return
	}

	var request dto.UpdateTaskRequest

	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := decoder.Decode(&request); err != nil {

		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "неверно переданы параметры обновления:"+err.Error())
		return
	}

	logger.Info("HTTP: запрос к сервису обновления данных")

	// id из тела не имеет силы, действует id из пути
	updated, err := s.TaskService.UpdateTaskByID(r.Context(), id, task.Task{
		Title:       request.Title,
		Description: request.Description,
		DueDate:     request.DueDate,
		IsCompleted: request.IsCompleted,
	})
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}

		logger.Error("HTTP: ошибка в Service", err,
			zap.String("operation", "update_task"),
			zap.String("client_addr", r.RemoteAddr))

		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задача обновлена",
		zap.Int64("task_id", updated.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, dto.FromTask(updated))
}

func (s *TaskHandler) DeleteTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	logger.HttpRequestInfo(r, "HTTP_IN:")

	if r.Method != http.MethodDelete {

		logger.Warn("HTTP: Неверный метод",
			zap.String("expected", "DELETE"),
			zap.String("received", r.Method),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusMethodNotAllowed, "только DELETE метод доступен")
		return
	}

	id, err := parseTaskID(r)
	if err != nil {

		logger.Warn("HTTP: Не удалось получить id",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusNotFound, "задачи с таким id не существует")
		return
	}

	logger.Info("HTTP: Обращение к сервису для удаления задачи")

	removed, err := s.TaskService.DeleteTaskByID(r.Context(), id)
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}

		logger.Error("HTTP: ошибка в Service", err,
			zap.String("operation", "delete_task"),
			zap.String("client_addr", r.RemoteAddr))

		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задача удалена",
		zap.Int64("task_id", removed.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, dto.FromTask(removed))
}
