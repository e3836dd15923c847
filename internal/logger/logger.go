package logger

import (
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger - глобальный логгер приложения.
// По умолчанию no-op, чтобы пакеты можно было тестировать без Init.
var Logger = zap.NewNop()

// Init настраивает глобальный логгер.
// development=true включает человекочитаемый вывод для локальной разработки.
func Init(development bool) error {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = l
	return nil
}

// Sync сбрасывает буферы логгера, вызывается при завершении приложения.
func Sync() {
	_ = Logger.Sync()
}

func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

func Error(msg string, err error, fields ...zap.Field) {
	Logger.Error(msg, append(fields, zap.Error(err))...)
}

// Log пишет сообщение с произвольным уровнем, выбранным на вызывающей стороне.
func Log(lvl zapcore.Level, msg string, fields ...zap.Field) {
	Logger.Log(lvl, msg, fields...)
}

// HttpRequestInfo пишет краткую строку о входящем HTTP-запросе.
func HttpRequestInfo(r *http.Request, msg string) {
	Logger.Info(msg,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("remote_addr", r.RemoteAddr),
	)
}
