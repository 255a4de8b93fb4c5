package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Encoding string `envconfig:"ENCODING" default:"console"`
	Level    string `envconfig:"LEVEL" default:"info"`
}

// Validate проверяет конфиг до старта, чтобы New не падал посреди запуска
func (c *Config) Validate() error {
	if _, err := parseLevel(c.Level); err != nil {
		return err
	}
	switch c.Encoding {
	case "", "console", "json":
		return nil
	default:
		return fmt.Errorf("invalid logger config: encoding %s is not supported", c.Encoding)
	}
}

func New(app string, cfg *Config) *slog.Logger {
	return NewWithWriter(app, cfg, os.Stdout)
}

// NewWithWriter как New, но пишет в w (json) или в stderr-подобный w (console)
func NewWithWriter(app string, cfg *Config, w io.Writer) *slog.Logger {
	if cfg == nil {
		cfg = &Config{}
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug, // пути к файлам нужны только при отладке
	}

	var handler slog.Handler
	switch cfg.Encoding {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With("app", app)
}

// Discard логгер для тестов
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetDefault устанавливает логгер по умолчанию
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}

// parseLevel парсит строковый уровень в slog.Level
func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid logger config: level %s is not supported", level)
	}
}
