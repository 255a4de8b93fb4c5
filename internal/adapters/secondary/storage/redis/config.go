package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultDialTimeout = 5 * time.Second

type Config struct {
	Host        string `envconfig:"HOST"`
	Port        string `envconfig:"PORT" default:"6379"`
	Username    string `envconfig:"USERNAME"`
	Password    string `envconfig:"PASSWORD"`
	Database    int    `envconfig:"DATABASE" default:"0"`
	DialTimeout int    `envconfig:"DIAL_TIMEOUT" default:"5"` // в секундах
	UsageLogKey string `envconfig:"USAGE_LOG_KEY" default:"gpt_bot:usage_log"`
}

// Enabled redis-зеркало журнала включается заданным HOST
func (c *Config) Enabled() bool {
	return c != nil && c.Host != ""
}

// NewConnection подключается к Redis. Раз в сутки пишется одна строка, пул по умолчанию
func (c *Config) NewConnection(ctx context.Context) (*redis.Client, error) {
	dialTimeout := time.Duration(c.DialTimeout) * time.Second
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%s", c.Host, c.Port),
		Username:    c.Username,
		Password:    c.Password,
		DB:          c.Database,
		DialTimeout: dialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}
