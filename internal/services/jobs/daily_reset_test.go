package jobs

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/admin/tg-bots/gpt-bot/internal/pkg/logger"
)

func moscow(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestDailyReset_NextRun(t *testing.T) {
	t.Parallel()
	loc := moscow(t)

	tests := []struct {
		name         string
		hour, minute int
		now          time.Time
		want         time.Time
	}{
		{
			name: "midnight later today",
			now:  time.Date(2026, 5, 10, 23, 59, 0, 0, loc),
			want: time.Date(2026, 5, 11, 0, 0, 0, 0, loc),
		},
		{
			name: "exactly at run time moves to tomorrow",
			now:  time.Date(2026, 5, 10, 0, 0, 0, 0, loc),
			want: time.Date(2026, 5, 11, 0, 0, 0, 0, loc),
		},
		{
			name: "utc input converted to zone",
			hour: 3, minute: 30,
			now:  time.Date(2026, 5, 10, 0, 15, 0, 0, time.UTC), // 03:15 Мск
			want: time.Date(2026, 5, 10, 3, 30, 0, 0, loc),
		},
		{
			name: "month rollover",
			now:  time.Date(2026, 12, 31, 12, 0, 0, 0, loc),
			want: time.Date(2027, 1, 1, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			job := NewDailyReset(nil, tt.hour, tt.minute, loc, logger.Discard())
			if got := job.NextRun(tt.now); !got.Equal(tt.want) {
				t.Fatalf("NextRun(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

type countingResetter struct {
	calls atomic.Int32
	err   error
}

func (c *countingResetter) ResetDaily(ctx context.Context) error {
	c.calls.Add(1)
	return c.err
}

func TestDailyReset_RunDelegates(t *testing.T) {
	t.Parallel()

	r := &countingResetter{err: errors.New("disk full")}
	job := NewDailyReset(r, 0, 0, time.UTC, logger.Discard())

	if err := job.Run(context.Background()); err == nil {
		t.Fatal("Run() error = nil, want resetter error")
	}
	if r.calls.Load() != 1 {
		t.Fatalf("calls = %d, want 1", r.calls.Load())
	}
}

// tickJob срабатывает почти сразу после каждого запуска
type tickJob struct {
	runs atomic.Int32
	err  error
}

func (j *tickJob) Name() string                    { return "tick" }
func (j *tickJob) NextRun(now time.Time) time.Time { return now.Add(time.Millisecond) }
func (j *tickJob) Run(ctx context.Context) error {
	j.runs.Add(1)
	return j.err
}

type recordingAlerter struct {
	mu       sync.Mutex
	messages []string
}

func (a *recordingAlerter) SendAlert(ctx context.Context, message string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, message)
	return nil
}

func (a *recordingAlerter) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.messages)
}

func TestScheduler_RunsUntilCancelledAndAlertsFailures(t *testing.T) {
	t.Parallel()

	job := &tickJob{err: errors.New("boom")}
	alerter := &recordingAlerter{}
	scheduler := NewScheduler(logger.Discard(), alerter)
	scheduler.Register(job)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- scheduler.Start(ctx) }()

	deadline := time.After(2 * time.Second)
	for job.runs.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("job ran %d times, want at least 2", job.runs.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}

	if alerter.count() < 2 {
		t.Fatalf("alerts = %d, want one per failed run", alerter.count())
	}
	alerter.mu.Lock()
	first := alerter.messages[0]
	alerter.mu.Unlock()
	if !strings.Contains(first, "tick") || !strings.Contains(first, "boom") {
		t.Fatalf("alert message = %q", first)
	}
}
