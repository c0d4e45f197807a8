package ports

import (
	"context"

	"github.com/StudySpaceOptimizer/backend/internal/domain"
)

type ReservationRepo interface {
	// Create admits the reservation atomically: the overlap re-check and
	// the insert run in one transaction.
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Delete(ctx context.Context, id string) error
	// ListActiveByUser returns the user's reservations whose end time is
	// after the given instant.
	ListActiveByUser(ctx context.Context, userID string, after int64) ([]*domain.Reservation, error)
	ListBySeat(ctx context.Context, seatID int, slot domain.TimeSlot) ([]*domain.Reservation, error)
}
