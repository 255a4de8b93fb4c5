package inmemory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/admin/tg-bots/gpt-bot/internal/domain"
	"github.com/admin/tg-bots/gpt-bot/internal/ports/repository"
	"github.com/admin/tg-bots/gpt-bot/internal/ports/sink"
)

type usageRecord struct {
	label string
	count int
}

// UsageTracker in-memory счётчик запросов по chat_id
type UsageTracker struct {
	mu       sync.Mutex
	records  map[int64]*usageRecord
	order    []int64 // порядок первого обращения, в нём строится отчёт
	sink     sink.IUsageLogSink
	location *time.Location
	log      *slog.Logger
}

// NewUsageTracker создаёт трекер; location - зона для даты в отчёте
func NewUsageTracker(logSink sink.IUsageLogSink, location *time.Location, log *slog.Logger) repository.IUsageTracker {
	if location == nil {
		location = time.UTC
	}
	return &UsageTracker{
		records:  make(map[int64]*usageRecord),
		sink:     logSink,
		location: location,
		log:      log,
	}
}

// Record учитывает запрос. Подпись фиксируется при первом обращении чата:
// запрос с другой подписью для того же chat_id не считается.
func (t *UsageTracker) Record(chatID int64, label string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[chatID]
	if !ok {
		t.records[chatID] = &usageRecord{label: label, count: 0}
		t.order = append(t.order, chatID)
		return
	}

	if rec.label != label {
		t.log.Debug("usage label mismatch, request not counted",
			"chat_id", chatID,
			"stored_label", rec.label,
			"label", label,
		)
		return
	}

	rec.count++
}

// ReportText строка отчёта с датой
func (t *UsageTracker) ReportText(now time.Time) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.reportLocked(now).Line()
}

// FlushAndReset дописывает непустой отчёт в sink и обнуляет счётчики.
// Если запись не удалась, счётчики сохраняются до следующего запуска.
func (t *UsageTracker) FlushAndReset(ctx context.Context, now time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	report := t.reportLocked(now)
	if !report.IsEmpty() {
		if err := t.sink.Append(ctx, report.Date, report.Line()); err != nil {
			return fmt.Errorf("failed to write usage log: %w", err)
		}
		t.log.Info("usage log written", "day", report.Date, "chats", len(report.Entries))
	}

	t.records = make(map[int64]*usageRecord)
	t.order = nil
	return nil
}

func (t *UsageTracker) reportLocked(now time.Time) domain.UsageReport {
	entries := make([]domain.UsageEntry, 0, len(t.order))
	for _, chatID := range t.order {
		rec := t.records[chatID]
		entries = append(entries, domain.UsageEntry{
			ChatID: chatID,
			Label:  rec.label,
			Count:  rec.count,
		})
	}
	return domain.NewUsageReport(now, t.location, entries)
}
