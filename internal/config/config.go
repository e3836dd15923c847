package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	CORS    CORSConfig    `yaml:"cors"`
	Worker  WorkerConfig  `yaml:"worker"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Host string `yaml:"host"`
}

type LoggingConfig struct {
	Development bool `yaml:"development"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type WorkerConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
	Limit    int           `yaml:"limit"`
}

// Default - значения, с которыми сервис поднимается без config.yml.
// Конфигурация задаёт только окружение, поведение API от неё не зависит.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
		},
		Logging: LoggingConfig{
			Development: true,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Worker: WorkerConfig{
			Enabled:  true,
			Interval: 5 * time.Minute,
			Limit:    100,
		},
	}
}

// Load читает конфигурацию из файла по указанному пути поверх значений
// по умолчанию. Отсутствие файла не ошибка: сервис поднимается с Default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "config.yml"
	}

	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("не могу открыть %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
