package ports

import (
	"context"

	"github.com/StudySpaceOptimizer/backend/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, r *domain.Reservation)
	NotifyReservationCancelled(ctx context.Context, r *domain.Reservation)
}
