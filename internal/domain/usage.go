package domain

import (
	"fmt"
	"strings"
	"time"
)

// UsageLabel подпись пользователя в дневной статистике
func UsageLabel(username, firstName string) string {
	return fmt.Sprintf("User %s with name %s", username, firstName)
}

// UsageEntry счётчик запросов одного чата
type UsageEntry struct {
	ChatID int64
	Label  string
	Count  int
}

// String строка отчёта по одному чату
func (e UsageEntry) String() string {
	return fmt.Sprintf("%s (chatId - %d) has performed %d requests\n", e.Label, e.ChatID, e.Count)
}

// UsageReport дневной отчёт: дата + записи в порядке первого обращения
type UsageReport struct {
	Date    string
	Entries []UsageEntry
}

const usageDateLayout = "2006-01-02"

// NewUsageReport дата считается в зоне loc
func NewUsageReport(now time.Time, loc *time.Location, entries []UsageEntry) UsageReport {
	if loc == nil {
		loc = time.UTC
	}
	return UsageReport{
		Date:    now.In(loc).Format(usageDateLayout),
		Entries: entries,
	}
}

// Body записи без префикса даты
func (r UsageReport) Body() string {
	parts := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, ", ")
}

// IsEmpty пустой отчёт в лог не пишется
func (r UsageReport) IsEmpty() bool {
	return r.Body() == ""
}

// Line полная строка лога: "<date>: <entries>"
func (r UsageReport) Line() string {
	return r.Date + ": " + r.Body()
}

// UsageLogRecord строка журнала, сохранённая в БД
type UsageLogRecord struct {
	ID        int64     `json:"id" db:"id"`
	Day       string    `json:"day" db:"day"`
	Line      string    `json:"line" db:"line"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
