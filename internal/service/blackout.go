package service

import (
	"context"
	"fmt"

	"github.com/StudySpaceOptimizer/backend/internal/domain"
	"github.com/StudySpaceOptimizer/backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BlackoutService struct {
	repo   ports.BlackoutRepo
	logger logger.Logger
}

func NewBlackoutService(repo ports.BlackoutRepo, logger logger.Logger) *BlackoutService {
	return &BlackoutService{
		repo:   repo,
		logger: logger,
	}
}

// Add appends a blackout window. No conflict check: overlapping windows
// behave as their union during admission.
func (s *BlackoutService) Add(ctx context.Context, slot domain.TimeSlot) error {
	if !slot.Valid() {
		return domain.ErrInvalidTimeSlot
	}

	if err := s.repo.Insert(ctx, slot); err != nil {
		return fmt.Errorf("insert blackout window: %w", err)
	}

	s.logger.Info("blackout window added",
		logger.Int64("start_time", slot.StartTime),
		logger.Int64("end_time", slot.EndTime),
	)

	return nil
}
