package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/app"
	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/config"
	"github.com/AbubakarImam/Mini-Task-Manager-API/internal/logger"
)

func main() {
	configPath := flag.String("config", "config.yml", "путь к файлу конфигурации")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Логгер поднимается внутри приложения, тут его ещё нет
		fmt.Fprintf(os.Stderr, "чтение конфигурации: %v\n", err)
		os.Exit(1)
	}

	application := app.New(cfg)
	if err := application.Init(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "инициализация приложения: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(ctx); err != nil {
		logger.Error("Приложение завершилось с ошибкой", err)
		os.Exit(1)
	}
}
