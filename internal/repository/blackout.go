package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/StudySpaceOptimizer/backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BlackoutRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBlackoutRepo(db *dbpg.DB) *BlackoutRepository {
	return &BlackoutRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BlackoutRepository) Insert(ctx context.Context, slot domain.TimeSlot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO blackout_windows (start_time, end_time) VALUES ($1, $2)`
	if _, err = tx.ExecContext(ctx, query, slot.StartTime, slot.EndTime); err != nil {
		return fmt.Errorf("insert blackout window: %w", err)
	}

	return tx.Commit()
}

func (r *BlackoutRepository) Overlaps(ctx context.Context, slot domain.TimeSlot) (bool, error) {
	query := `SELECT EXISTS(
				SELECT 1 FROM blackout_windows
				WHERE GREATEST(start_time, $1::bigint) < LEAST(end_time, $2::bigint))`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, slot.StartTime, slot.EndTime)
	if err != nil {
		return false, fmt.Errorf("check blackout overlap: %w", err)
	}

	var overlapping bool
	if err = row.Scan(&overlapping); err != nil {
		return false, fmt.Errorf("scan blackout overlap: %w", err)
	}

	return overlapping, nil
}

func (r *BlackoutRepository) Contains(ctx context.Context, instant int64) (bool, error) {
	query := `SELECT EXISTS(
				SELECT 1 FROM blackout_windows
				WHERE start_time <= $1 AND end_time > $1)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, instant)
	if err != nil {
		return false, fmt.Errorf("check blackout contains: %w", err)
	}

	var within bool
	if err = row.Scan(&within); err != nil {
		return false, fmt.Errorf("scan blackout contains: %w", err)
	}

	return within, nil
}
