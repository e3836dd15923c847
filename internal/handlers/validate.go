package handlers

import (
	"mime"
	"net/http"
	"reflect"
	"strings"

	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/service"
	"github.com/go-playground/validator/v10"
)

func checkContentType(r *http.Request, target string) bool {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == target
}

// newValidator отдаёт валидатор, называющий поля их json-именами.
func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

func validationReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return "дедлайн не может быть в прошлом"
	case "eq":
		return "задача не может быть создана уже завершённой"
	default:
		return "неверное значение"
	}
}

// toValidationError переводит ошибки валидатора в бизнес-ошибку,
// перечисляя каждое нарушенное правило по имени поля.
func toValidationError(err error) *service.BusinessError {
	details := []service.Detail{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			details = append(details, service.ToDetail(fe.Field(), validationReason(fe)))
		}
	}
	return service.NewBusinessError("VALIDATION_ERROR", "Задача не прошла проверку", details...)
}
