package jobs

import (
	"context"
	"log/slog"
	"time"
)

const dailyResetName = "daily-reset"

type dailyResetter interface {
	ResetDaily(ctx context.Context) error
}

// DailyReset джоба ежедневного сброса окон диалогов и выгрузки статистики
type DailyReset struct {
	resetter dailyResetter
	hour     int
	minute   int
	location *time.Location
	log      *slog.Logger
}

// NewDailyReset запуск каждый день в hour:minute по location
func NewDailyReset(resetter dailyResetter, hour, minute int, location *time.Location, log *slog.Logger) *DailyReset {
	if location == nil {
		location = time.UTC
	}
	return &DailyReset{
		resetter: resetter,
		hour:     hour,
		minute:   minute,
		location: location,
		log:      log,
	}
}

func (j *DailyReset) Name() string {
	return dailyResetName
}

// NextRun ближайшее hour:minute строго после now
func (j *DailyReset) NextRun(now time.Time) time.Time {
	local := now.In(j.location)
	next := time.Date(local.Year(), local.Month(), local.Day(), j.hour, j.minute, 0, 0, j.location)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, j.hour, j.minute, 0, 0, j.location)
	}
	return next
}

func (j *DailyReset) Run(ctx context.Context) error {
	j.log.Info("running daily reset")
	return j.resetter.ResetDaily(ctx)
}
