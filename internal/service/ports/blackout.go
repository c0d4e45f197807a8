package ports

import (
	"context"

	"github.com/StudySpaceOptimizer/backend/internal/domain"
)

type BlackoutRepo interface {
	Insert(ctx context.Context, slot domain.TimeSlot) error
	Overlaps(ctx context.Context, slot domain.TimeSlot) (bool, error)
	Contains(ctx context.Context, instant int64) (bool, error)
}
