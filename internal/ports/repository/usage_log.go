package repository

import (
	"context"

	"github.com/admin/tg-bots/gpt-bot/internal/domain"
)

// IUsageLogRepo журнал дневных строк статистики в БД (только добавление)
type IUsageLogRepo interface {
	Append(ctx context.Context, day string, line string) error
	ListRecent(ctx context.Context, limit int) ([]domain.UsageLogRecord, error)
}
