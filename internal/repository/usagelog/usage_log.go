package usagelogRepo

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/admin/tg-bots/gpt-bot/internal/domain"
	"github.com/admin/tg-bots/gpt-bot/internal/ports/persistence"
	ports "github.com/admin/tg-bots/gpt-bot/internal/ports/repository"
	"github.com/admin/tg-bots/gpt-bot/internal/ports/sink"
)

const defaultListLimit = 30

type usageLogColumns struct {
	TableName string
	ID        string
	Day       string
	Line      string
	CreatedAt string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns usageLogColumns
}

var (
	_ ports.IUsageLogRepo = (*Repository)(nil)
	_ sink.IUsageLogSink  = (*Repository)(nil)
)

// New создаёт репозиторий журнала дневной статистики
func New(db persistence.Persistence, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		Log: log,
		columns: usageLogColumns{
			TableName: "usage_daily_log",
			ID:        "id",
			Day:       "day",
			Line:      "line",
			CreatedAt: "created_at",
		},
	}
}

// Append добавляет строку, существующие записи не трогаются
func (r *Repository) Append(ctx context.Context, day string, line string) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		r.columns.TableName,
		r.columns.Day,
		r.columns.Line)
	if err := r.db.Exec(ctx, query, day, line); err != nil {
		r.Log.Error("failed to append usage log", "error", err, "day", day)
		return fmt.Errorf("failed to append usage log: %w", err)
	}
	r.Log.Debug("usage log appended", "day", day)
	return nil
}

// ListRecent возвращает последние записи, новые первыми
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]domain.UsageLogRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s DESC LIMIT $1`,
		r.columns.ID,
		r.columns.Day,
		r.columns.Line,
		r.columns.CreatedAt,
		r.columns.TableName,
		r.columns.ID)

	var records []domain.UsageLogRecord
	if err := r.db.Select(ctx, &records, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list usage log: %w", err)
	}
	return records, nil
}
