package repository

import (
	"context"
	"time"
)

// IUsageTracker дневной счётчик запросов по чатам
type IUsageTracker interface {
	Record(chatID int64, label string)
	ReportText(now time.Time) string
	FlushAndReset(ctx context.Context, now time.Time) error
}
