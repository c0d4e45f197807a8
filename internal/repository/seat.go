package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/StudySpaceOptimizer/backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SeatRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSeatRepo(db *dbpg.DB) *SeatRepository {
	return &SeatRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SeatRepository) Upsert(ctx context.Context, seat *domain.Seat) error {
	query := `INSERT INTO seats (id, available, other_info)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (id) DO NOTHING`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, seat.ID, seat.Available, seat.OtherInfo); err != nil {
		return fmt.Errorf("upsert seat: %w", err)
	}

	return nil
}

func (r *SeatRepository) GetByID(ctx context.Context, id int) (*domain.Seat, error) {
	query := `SELECT id, available, other_info FROM seats WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get seat: %w", err)
	}

	var seat domain.Seat
	if err = row.Scan(&seat.ID, &seat.Available, &seat.OtherInfo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSeatNotFound
		}
		return nil, fmt.Errorf("scan seat: %w", err)
	}

	return &seat, nil
}

func (r *SeatRepository) Update(ctx context.Context, input domain.UpdateSeatInput) error {
	query := `UPDATE seats
			  SET available = $1, other_info = $2
			  WHERE id = $3`
	result, err := r.db.ExecWithRetry(ctx, r.strategy, query, input.Available, input.OtherInfo, input.SeatID)
	if err != nil {
		return fmt.Errorf("update seat: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("seat rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrSeatNotFound
	}

	return nil
}

func (r *SeatRepository) ListIDs(ctx context.Context) ([]int, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, `SELECT id FROM seats ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list seats: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan seat id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// CurrentStatuses reports each seat as Unavailable (withdrawn by an
// admin), Borrowed (a reservation covers now) or Available.
func (r *SeatRepository) CurrentStatuses(ctx context.Context, now int64) ([]domain.SeatAvailability, error) {
	query := `
		SELECT
			s.id,
			CASE
				WHEN NOT s.available THEN 'Unavailable'
				WHEN r.seat_id IS NULL THEN 'Available'
				ELSE 'Borrowed'
			END AS status
		FROM seats s
		LEFT JOIN reservations r
			ON r.seat_id = s.id
			AND r.start_time <= $1
			AND r.end_time > $1
		ORDER BY s.id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, now)
	if err != nil {
		return nil, fmt.Errorf("query current seat statuses: %w", err)
	}
	defer rows.Close()

	return scanStatuses(rows)
}

// StatusesInSlot reports each seat's status against the given slot. The
// administrative flag wins over reservations, same as CurrentStatuses.
func (r *SeatRepository) StatusesInSlot(ctx context.Context, slot domain.TimeSlot) ([]domain.SeatAvailability, error) {
	query := `
		SELECT DISTINCT
			s.id,
			CASE
				WHEN NOT s.available THEN 'Unavailable'
				WHEN r.seat_id IS NULL THEN 'Available'
				ELSE 'Borrowed'
			END AS status
		FROM seats s
		LEFT JOIN reservations r
			ON r.seat_id = s.id
			AND GREATEST(r.start_time, $1::bigint) < LEAST(r.end_time, $2::bigint)
		ORDER BY s.id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, slot.StartTime, slot.EndTime)
	if err != nil {
		return nil, fmt.Errorf("query seat statuses in slot: %w", err)
	}
	defer rows.Close()

	return scanStatuses(rows)
}

func scanStatuses(rows *sql.Rows) ([]domain.SeatAvailability, error) {
	var res []domain.SeatAvailability
	for rows.Next() {
		var item domain.SeatAvailability
		if err := rows.Scan(&item.SeatID, &item.Status); err != nil {
			return nil, fmt.Errorf("scan seat status: %w", err)
		}
		res = append(res, item)
	}

	return res, rows.Err()
}
