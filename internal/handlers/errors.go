package handlers

import (
	"net/http"

	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/logger"
	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/service"
	"go.uber.org/zap"
)

func handleBusinessError(w http.ResponseWriter, err error) bool {
	if businessErr, ok := err.(*service.BusinessError); ok {
		statusCode := mapBusinessErrorToHTTP(businessErr.Code)

		logger.Warn("HTTP: Бизнес-ошибка",
			zap.String("error_code", businessErr.Code),
			zap.Int("http_status", statusCode))

		responseWithPayload(w, statusCode,
			toPayload("error", businessErr.Code),
			toPayload("message", businessErr.Message),
			toPayload("details", businessErr.Details),
		)
		return true
	}
	return false
}

func mapBusinessErrorToHTTP(code string) int {
	switch code {
	case "NOT_FOUND":
		return http.StatusNotFound
	case "VALIDATION_ERROR":
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}
