package ports

import (
	"context"

	"github.com/StudySpaceOptimizer/backend/internal/domain"
)

type SeatRepo interface {
	Upsert(ctx context.Context, seat *domain.Seat) error
	GetByID(ctx context.Context, id int) (*domain.Seat, error)
	Update(ctx context.Context, input domain.UpdateSeatInput) error
	ListIDs(ctx context.Context) ([]int, error)
	CurrentStatuses(ctx context.Context, now int64) ([]domain.SeatAvailability, error)
	StatusesInSlot(ctx context.Context, slot domain.TimeSlot) ([]domain.SeatAvailability, error)
}
