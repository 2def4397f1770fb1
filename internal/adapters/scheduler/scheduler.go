// Package scheduler drives the time-based reminder dispatch that
// production deployments run instead of the manual trigger.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type reminderChecker interface {
	CheckAndNotify(ctx context.Context)
}

type Scheduler struct {
	notify   reminderChecker
	logger   *zap.SugaredLogger
	interval time.Duration
}

func New(notify reminderChecker, logger *zap.SugaredLogger, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{
		notify:   notify,
		logger:   logger,
		interval: interval,
	}
}

// Start runs the reminder loop until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("starting reminder scheduler")
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Info("reminder scheduler stopped")
				return
			case <-ticker.C:
				s.notify.CheckAndNotify(ctx)
			}
		}
	}()
}
