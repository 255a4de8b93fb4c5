package redis

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/admin/tg-bots/gpt-bot/internal/ports/sink"
	"github.com/redis/go-redis/v9"
)

var _ sink.IUsageLogSink = (*UsageLog)(nil)

// UsageLog зеркало журнала статистики в redis-списке
type UsageLog struct {
	client *redis.Client
	key    string
	log    *slog.Logger
}

// NewUsageLog создаёт redis-зеркало журнала
func NewUsageLog(client *redis.Client, key string, log *slog.Logger) *UsageLog {
	return &UsageLog{
		client: client,
		key:    key,
		log:    log,
	}
}

// Append дописывает строку в конец списка
func (u *UsageLog) Append(ctx context.Context, day string, line string) error {
	length, err := u.client.RPush(ctx, u.key, line).Result()
	if err != nil {
		return fmt.Errorf("redis rpush failed: %w", err)
	}
	u.log.Debug("usage log pushed to redis", "key", u.key, "day", day, "length", length)
	return nil
}

// Ping для readiness-проверки
func (u *UsageLog) Ping(ctx context.Context) error {
	return u.client.Ping(ctx).Err()
}

// Close закрывает подключение
func (u *UsageLog) Close() error {
	return u.client.Close()
}
