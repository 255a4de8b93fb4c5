package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/admin/tg-bots/gpt-bot/internal/ports/sink"
)

var _ sink.IUsageLogSink = (*UsageLog)(nil)

// UsageLog дописывает дневные строки статистики в текстовый файл (UTF-8, только добавление)
type UsageLog struct {
	mu   sync.Mutex
	path string
}

func NewUsageLog(path string) *UsageLog {
	return &UsageLog{path: path}
}

// Append строка пишется как есть: записи уже заканчиваются переводом строки
func (l *UsageLog) Append(_ context.Context, _ string, line string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create usage log dir: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open usage log %s: %w", l.path, err)
	}

	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write usage log %s: %w", l.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close usage log %s: %w", l.path, err)
	}
	return nil
}
