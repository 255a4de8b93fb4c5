package usagelog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/admin/tg-bots/gpt-bot/internal/pkg/logger"
)

type fakeSink struct {
	mu    sync.Mutex
	lines []string
	err   error
}

func (f *fakeSink) Append(ctx context.Context, day string, line string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.lines = append(f.lines, day+"|"+line)
	return nil
}

func (f *fakeSink) got() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.lines...)
}

func TestService_AppendFansOut(t *testing.T) {
	t.Parallel()

	primary := &fakeSink{}
	okMirror := &fakeSink{}
	badMirror := &fakeSink{err: errors.New("redis down")}

	svc := New(primary, logger.Discard())
	svc.AddMirror("redis", badMirror)
	svc.AddMirror("postgres", okMirror)

	if err := svc.Append(context.Background(), "2026-01-01", "line"); err != nil {
		t.Fatalf("Append() error = %v, mirror failures must not propagate", err)
	}
	if got := primary.got(); len(got) != 1 || got[0] != "2026-01-01|line" {
		t.Fatalf("primary lines = %v", got)
	}
	if got := okMirror.got(); len(got) != 1 {
		t.Fatalf("mirror lines = %v", got)
	}
	if names := svc.Mirrors(); len(names) != 2 || names[0] != "redis" || names[1] != "postgres" {
		t.Fatalf("Mirrors() = %v", names)
	}
}

func TestService_PrimaryFailureSkipsMirrors(t *testing.T) {
	t.Parallel()

	diskErr := errors.New("disk full")
	mirror := &fakeSink{}

	svc := New(&fakeSink{err: diskErr}, logger.Discard())
	svc.AddMirror("kafka", mirror)

	err := svc.Append(context.Background(), "2026-01-01", "line")
	if !errors.Is(err, diskErr) {
		t.Fatalf("Append() error = %v, want wrapped %v", err, diskErr)
	}
	if got := mirror.got(); len(got) != 0 {
		t.Fatalf("mirror must not be written after primary failure, got %v", got)
	}
}
