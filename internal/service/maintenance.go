package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/StudySpaceOptimizer/backend/internal/domain"
	"github.com/StudySpaceOptimizer/backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// MaintenanceService owns the daily housekeeping: seeding the recurring
// off-hours blackout windows a few days ahead and pruning old log files.
// It never runs on the request path.
type MaintenanceService struct {
	blackoutRepo     ports.BlackoutRepo
	logger           logger.Logger
	loc              *time.Location
	seedDays         int
	logDir           string
	logRetentionDays int
	now              func() time.Time
}

func NewMaintenanceService(
	blackoutRepo ports.BlackoutRepo,
	logger logger.Logger,
	loc *time.Location,
	seedDays int,
	logDir string,
	logRetentionDays int,
) *MaintenanceService {
	return &MaintenanceService{
		blackoutRepo:     blackoutRepo,
		logger:           logger,
		loc:              loc,
		seedDays:         seedDays,
		logDir:           logDir,
		logRetentionDays: logRetentionDays,
		now:              time.Now,
	}
}

func (s *MaintenanceService) RunDaily(ctx context.Context) error {
	if err := s.SeedBlackoutWindows(ctx); err != nil {
		return fmt.Errorf("seed blackout windows: %w", err)
	}

	s.pruneLogs()

	return nil
}

// SeedBlackoutWindows inserts the off-hours windows for today through
// today+seedDays, skipping windows that already overlap an existing one.
func (s *MaintenanceService) SeedBlackoutWindows(ctx context.Context) error {
	today := s.now().In(s.loc)

	for day := 0; day <= s.seedDays; day++ {
		date := today.AddDate(0, 0, day)

		for _, slot := range s.offHours(date) {
			overlapping, err := s.blackoutRepo.Overlaps(ctx, slot)
			if err != nil {
				return fmt.Errorf("check existing windows: %w", err)
			}
			if overlapping {
				continue
			}

			if err = s.blackoutRepo.Insert(ctx, slot); err != nil {
				return fmt.Errorf("insert window: %w", err)
			}

			s.logger.Info("blackout window seeded",
				logger.Int64("start_time", slot.StartTime),
				logger.Int64("end_time", slot.EndTime),
			)
		}
	}

	return nil
}

// offHours returns the closed periods of the given local day: weekdays
// close 00:00-08:00 and 22:00-24:00, weekends 00:00-09:00 and 17:00-24:00.
func (s *MaintenanceService) offHours(date time.Time) []domain.TimeSlot {
	at := func(hour, min, sec int) int64 {
		return time.Date(date.Year(), date.Month(), date.Day(), hour, min, sec, 0, s.loc).Unix()
	}

	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return []domain.TimeSlot{
			{StartTime: at(0, 0, 0), EndTime: at(9, 0, 0)},
			{StartTime: at(17, 0, 0), EndTime: at(23, 59, 59)},
		}
	default:
		return []domain.TimeSlot{
			{StartTime: at(0, 0, 0), EndTime: at(8, 0, 0)},
			{StartTime: at(22, 0, 0), EndTime: at(23, 59, 59)},
		}
	}
}

// pruneLogs removes date-named log files past the retention period.
// Failures are logged and retried on the next cycle.
func (s *MaintenanceService) pruneLogs() {
	if s.logDir == "" {
		return
	}

	cutoff := s.now().In(s.loc).AddDate(0, 0, -s.logRetentionDays)

	entries, err := os.ReadDir(s.logDir)
	if err != nil {
		s.logger.Error("failed to read log directory",
			logger.String("dir", s.logDir),
			logger.String("error", err.Error()),
		)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		datePart, _, _ := strings.Cut(entry.Name(), ".")
		day, err := time.ParseInLocation("2006-01-02", datePart, s.loc)
		if err != nil {
			continue
		}

		if day.Before(cutoff) {
			path := filepath.Join(s.logDir, entry.Name())
			if err := os.Remove(path); err != nil {
				s.logger.Warn("failed to remove log file",
					logger.String("path", path),
					logger.String("error", err.Error()),
				)
				continue
			}
			s.logger.Info("log file pruned", logger.String("path", path))
		}
	}
}
