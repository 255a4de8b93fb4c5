package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/admin/tg-bots/gpt-bot/internal/ports/jobs"
	"github.com/admin/tg-bots/gpt-bot/internal/ports/service"
)

// Scheduler управляет запуском периодических джоб.
// Упавший запуск не повторяется: следующая попытка будет в следующий NextRun.
type Scheduler struct {
	jobs           []jobs.Job
	alerterService service.IAlerterService
	log            *slog.Logger
}

// NewScheduler создаёт новый планировщик джоб, alerterService может быть nil
func NewScheduler(log *slog.Logger, alerterService service.IAlerterService) *Scheduler {
	return &Scheduler{
		jobs:           make([]jobs.Job, 0),
		alerterService: alerterService,
		log:            log,
	}
}

// Register регистрирует джобу в планировщике
func (s *Scheduler) Register(job jobs.Job) {
	s.jobs = append(s.jobs, job)
	s.log.Debug("job registered", "job_name", job.Name(), "total_jobs", len(s.jobs))
}

// Start запускает все зарегистрированные джобы и блокируется до отмены ctx
func (s *Scheduler) Start(ctx context.Context) error {
	if len(s.jobs) == 0 {
		s.log.Warn("no jobs registered, scheduler not started")
		return nil
	}

	s.log.Info("starting job scheduler", "jobs_count", len(s.jobs))

	var wg sync.WaitGroup
	for _, job := range s.jobs {
		job := job
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.runJob(ctx, job)
		}()
	}
	wg.Wait()

	s.log.Info("job scheduler stopped")
	return nil
}

// runJob запускает отдельную джобу в цикле
func (s *Scheduler) runJob(ctx context.Context, job jobs.Job) {
	jobName := job.Name()
	for {
		now := time.Now()
		nextRun := job.NextRun(now)
		s.log.Debug("job scheduled", "job_name", jobName, "next_run", nextRun)

		timer := time.NewTimer(nextRun.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.log.Info("job stopped by context", "job_name", jobName)
			return
		case <-timer.C:
			s.execute(ctx, job, jobName)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, job jobs.Job, jobName string) {
	started := time.Now()
	if err := job.Run(ctx); err != nil {
		s.log.Error("job failed",
			"job_name", jobName,
			"error", err,
			"duration", time.Since(started),
		)
		s.sendAlert(ctx, jobName, err)
		return
	}
	s.log.Info("job executed successfully", "job_name", jobName, "duration", time.Since(started))
}

// sendAlert алертит об упавшем запуске
func (s *Scheduler) sendAlert(ctx context.Context, jobName string, jobErr error) {
	if s.alerterService == nil {
		return
	}

	var message strings.Builder
	message.WriteString("⚠️ Ошибка планировщика\n\n")
	message.WriteString(fmt.Sprintf("Джоба: %s\n", jobName))
	message.WriteString(fmt.Sprintf("Ошибка: %s", jobErr.Error()))

	if alertErr := s.alerterService.SendAlert(ctx, message.String()); alertErr != nil {
		s.log.Warn("failed to send job failure alert",
			"job_name", jobName,
			"error", alertErr,
		)
	}
}
