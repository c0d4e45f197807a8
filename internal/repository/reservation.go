package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/StudySpaceOptimizer/backend/internal/domain"
	_ "github.com/lib/pq" // postgres driver
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create admits a reservation. The overlap re-check and the insert run in
// a single transaction; the seat row is locked first so two concurrent
// admissions for the same seat cannot both pass the check.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	seatQuery := `SELECT available FROM seats WHERE id = $1 FOR UPDATE`
	var available bool
	if err = tx.QueryRowContext(ctx, seatQuery, res.SeatID).Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSeatNotFound
		}
		return fmt.Errorf("lock seat: %w", err)
	}

	overlapQuery := `SELECT EXISTS(
					   SELECT 1 FROM reservations
					   WHERE seat_id = $1
						 AND GREATEST(start_time, $2::bigint) < LEAST(end_time, $3::bigint))`
	var overlapping bool
	if err = tx.QueryRowContext(
		ctx, overlapQuery,
		res.SeatID, res.TimeSlot.StartTime, res.TimeSlot.EndTime,
	).Scan(&overlapping); err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}

	if overlapping {
		return domain.ErrSlotTaken
	}

	query := `INSERT INTO reservations
				(id, user_id, seat_id, start_time, end_time, check_in_time, check_out_time, created_at)
			  VALUES ($1, $2, $3, $4, $5, NULL, NULL, $6)`
	if _, err = tx.ExecContext(
		ctx, query, res.ID, res.UserID,
		res.SeatID, res.TimeSlot.StartTime, res.TimeSlot.EndTime, res.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	return tx.Commit()
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT id, user_id, seat_id, start_time, end_time, check_in_time, check_out_time, created_at
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	var res domain.Reservation
	if err = row.Scan(
		&res.ID, &res.UserID, &res.SeatID,
		&res.TimeSlot.StartTime, &res.TimeSlot.EndTime,
		&res.CheckInTime, &res.CheckOutTime, &res.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return &res, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepository) ListActiveByUser(ctx context.Context, userID string, after int64) ([]*domain.Reservation, error) {
	query := `SELECT id, user_id, seat_id, start_time, end_time, check_in_time, check_out_time, created_at
			  FROM reservations
			  WHERE user_id = $1 AND end_time > $2
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID, after)
	if err != nil {
		return nil, fmt.Errorf("list reservations by user: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (r *ReservationRepository) ListBySeat(ctx context.Context, seatID int, slot domain.TimeSlot) ([]*domain.Reservation, error) {
	query := `SELECT id, user_id, seat_id, start_time, end_time, check_in_time, check_out_time, created_at
			  FROM reservations
			  WHERE seat_id = $1
				AND GREATEST(start_time, $2::bigint) < LEAST(end_time, $3::bigint)
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, seatID, slot.StartTime, slot.EndTime)
	if err != nil {
		return nil, fmt.Errorf("list reservations by seat: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var res []*domain.Reservation
	for rows.Next() {
		var item domain.Reservation
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.SeatID,
			&item.TimeSlot.StartTime, &item.TimeSlot.EndTime,
			&item.CheckInTime, &item.CheckOutTime, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, &item)
	}

	return res, rows.Err()
}
