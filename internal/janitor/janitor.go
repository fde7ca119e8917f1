// Package janitor periodically removes expired password-reset codes from stores that do not
// expire them on their own.
package janitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ErlanBelekov/job-portal/internal/metrics"
	"github.com/ErlanBelekov/job-portal/internal/repository"
	"github.com/robfig/cron/v3"
)

const DefaultSchedule = "@every 1m"

type Janitor struct {
	purger   repository.OTPPurger
	logger   *slog.Logger
	schedule string
}

// New validates schedule (standard five-field cron or a descriptor such as "@every 30s").
func New(purger repository.OTPPurger, logger *slog.Logger, schedule string) (*Janitor, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("parse janitor schedule %q: %w", schedule, err)
	}
	return &Janitor{
		purger:   purger,
		logger:   logger.With("component", "janitor"),
		schedule: schedule,
	}, nil
}

// Start sweeps on the schedule until ctx is cancelled, then waits for a running sweep to finish.
func (j *Janitor) Start(ctx context.Context) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(j.schedule, func() { _, _ = j.Sweep(ctx) }); err != nil {
		j.logger.Error("janitor schedule rejected", "schedule", j.schedule, "error", err)
		return
	}

	c.Start()
	j.logger.Info("janitor started", "schedule", j.schedule)

	<-ctx.Done()
	<-c.Stop().Done()
	j.logger.Info("janitor shut down")
}

// Sweep runs one purge and returns how many codes were removed.
func (j *Janitor) Sweep(ctx context.Context) (int, error) {
	start := time.Now()
	defer func() { metrics.JanitorCycleDuration.Observe(time.Since(start).Seconds()) }()

	purged, err := j.purger.PurgeExpiredPasswordResetOTPs(ctx)
	if err != nil {
		metrics.JanitorErrorsTotal.Inc()
		j.logger.Error("purge expired otps", "error", err)
		return 0, err
	}
	if purged > 0 {
		metrics.JanitorPurgedTotal.Add(float64(purged))
		j.logger.Info("purged expired otps", "count", purged)
	}
	return purged, nil
}
