package service

import (
	"context"
	"fmt"
	"time"

	"github.com/StudySpaceOptimizer/backend/internal/domain"
	"github.com/StudySpaceOptimizer/backend/internal/service/ports"
)

type SeatService struct {
	seatRepo     ports.SeatRepo
	blackoutRepo ports.BlackoutRepo
	now          func() time.Time
}

func NewSeatService(seatRepo ports.SeatRepo, blackoutRepo ports.BlackoutRepo) *SeatService {
	return &SeatService{
		seatRepo:     seatRepo,
		blackoutRepo: blackoutRepo,
		now:          time.Now,
	}
}

// Overview reports every seat's status at this instant. Inside a blackout
// window the whole floor is closed regardless of per-seat state.
func (s *SeatService) Overview(ctx context.Context) ([]domain.SeatAvailability, error) {
	now := s.now().Unix()

	within, err := s.blackoutRepo.Contains(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("check blackout: %w", err)
	}

	if within {
		ids, err := s.seatRepo.ListIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("list seats: %w", err)
		}

		overview := make([]domain.SeatAvailability, 0, len(ids))
		for _, id := range ids {
			overview = append(overview, domain.SeatAvailability{
				SeatID: id,
				Status: domain.SeatStatusUnavailable,
			})
		}
		return overview, nil
	}

	return s.seatRepo.CurrentStatuses(ctx, now)
}

func (s *SeatService) OverviewInSlot(ctx context.Context, slot domain.TimeSlot) ([]domain.SeatAvailability, error) {
	if !slot.Valid() {
		return nil, domain.ErrInvalidTimeSlot
	}
	return s.seatRepo.StatusesInSlot(ctx, slot)
}

func (s *SeatService) GetSeat(ctx context.Context, id int) (*domain.Seat, error) {
	return s.seatRepo.GetByID(ctx, id)
}

func (s *SeatService) UpdateSeat(ctx context.Context, input domain.UpdateSeatInput) error {
	return s.seatRepo.Update(ctx, input)
}

// EnsureSeats seeds seat rows 1..count; existing rows are left untouched.
func (s *SeatService) EnsureSeats(ctx context.Context, count int) error {
	for id := 1; id <= count; id++ {
		if err := s.seatRepo.Upsert(ctx, &domain.Seat{ID: id, Available: true}); err != nil {
			return fmt.Errorf("seed seat %d: %w", id, err)
		}
	}
	return nil
}
