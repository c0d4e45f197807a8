package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type MaintenanceRunner interface {
	RunDaily(ctx context.Context) error
}

// Scheduler fires the maintenance run once per day at local midnight.
// It holds no locks and never blocks the serving path; a failed run is
// logged and retried on the next cycle.
type Scheduler struct {
	maintenance MaintenanceRunner
	loc         *time.Location
	logger      logger.Logger
	now         func() time.Time
}

func New(maintenance MaintenanceRunner, loc *time.Location, logger logger.Logger) *Scheduler {
	return &Scheduler{
		maintenance: maintenance,
		loc:         loc,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("maintenance scheduler started")

	for {
		timer := time.NewTimer(s.untilNextMidnight())

		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("maintenance scheduler stopped")
			return
		case <-timer.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if err := s.maintenance.RunDaily(ctx); err != nil {
		s.logger.Error("maintenance run failed",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("maintenance run completed")
}

func (s *Scheduler) untilNextMidnight() time.Duration {
	now := s.now().In(s.loc)
	year, month, day := now.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, s.loc).AddDate(0, 0, 1)
	return midnight.Sub(now)
}
