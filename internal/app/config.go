package app

import (
	"fmt"
	"time"

	server "github.com/admin/tg-bots/gpt-bot/internal/adapters/primary/http"
	alerterAdapter "github.com/admin/tg-bots/gpt-bot/internal/adapters/secondary/alerter"
	kafkaAdapter "github.com/admin/tg-bots/gpt-bot/internal/adapters/secondary/kafka"
	openaiAdapter "github.com/admin/tg-bots/gpt-bot/internal/adapters/secondary/openai"
	"github.com/admin/tg-bots/gpt-bot/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/tg-bots/gpt-bot/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/admin/tg-bots/gpt-bot/internal/adapters/secondary/storage/s3"
	"github.com/admin/tg-bots/gpt-bot/internal/adapters/secondary/telegram"
	"github.com/admin/tg-bots/gpt-bot/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Log      *logger.Config         `envconfig:"LOG"`
	Server   *server.Config         `envconfig:"APISERVER"`
	Telegram *telegram.Config       `envconfig:"TELEGRAM"`
	OpenAI   *openaiAdapter.Config  `envconfig:"OPENAI"`
	Usage    *UsageConfig           `envconfig:"USAGE"`
	Alerter  *alerterAdapter.Config `envconfig:"ALERTER"`
	Postgres *pg.Config             `envconfig:"POSTGRES"`
	Redis    *redisAdapter.Config   `envconfig:"REDIS"`
	S3       *s3Adapter.Config      `envconfig:"S3"`
	Kafka    *kafkaAdapter.Config   `envconfig:"KAFKA"`
}

// UsageConfig дневная статистика и её сброс
type UsageConfig struct {
	LogFile     string `envconfig:"LOG_FILE" default:"./users.txt"`
	Timezone    string `envconfig:"TIMEZONE" default:"Europe/Moscow"` // зона для даты отчёта и времени сброса
	ResetHour   int    `envconfig:"RESET_HOUR" default:"0"`
	ResetMinute int    `envconfig:"RESET_MINUTE" default:"0"`
}

func (c *UsageConfig) Validate() error {
	if c.ResetHour < 0 || c.ResetHour > 23 {
		return fmt.Errorf("reset hour must be in [0, 23], got %d", c.ResetHour)
	}
	if c.ResetMinute < 0 || c.ResetMinute > 59 {
		return fmt.Errorf("reset minute must be in [0, 59], got %d", c.ResetMinute)
	}
	if c.LogFile == "" {
		return fmt.Errorf("usage log file is required")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

func (c *UsageConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Usage.Validate(); err != nil {
		return fmt.Errorf("usage: %w", err)
	}
	if c.Telegram.IsWebhookEnabled() && c.Telegram.WebhookURL == "" {
		return fmt.Errorf("telegram: webhook_url is required when use_webhook is true")
	}
	return nil
}
