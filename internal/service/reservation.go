package service

import (
	"context"
	"fmt"
	"time"

	"github.com/StudySpaceOptimizer/backend/internal/domain"
	"github.com/StudySpaceOptimizer/backend/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// ReservationService is the booking admission engine. Validation and the
// business-rule checks run before storage is touched; the final overlap
// check and insert happen atomically inside the repository.
type ReservationService struct {
	reservationRepo ports.ReservationRepo
	blackoutRepo    ports.BlackoutRepo
	notifier        ports.ReservationNotifier
	logger          logger.Logger
	loc             *time.Location
	now             func() time.Time
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	blackoutRepo ports.BlackoutRepo,
	notifier ports.ReservationNotifier,
	logger logger.Logger,
	loc *time.Location,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		blackoutRepo:    blackoutRepo,
		notifier:        notifier,
		logger:          logger,
		loc:             loc,
		now:             time.Now,
	}
}

func (s *ReservationService) Reserve(ctx context.Context, userID string, seatID int, slot domain.TimeSlot) (*domain.Reservation, error) {
	if err := s.validateReservationSlot(slot); err != nil {
		return nil, err
	}

	blocked, err := s.blackoutRepo.Overlaps(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("check blackout: %w", err)
	}
	if blocked {
		s.logger.Warn("timeslot overlaps a blackout window",
			logger.Int64("start_time", slot.StartTime),
			logger.Int64("end_time", slot.EndTime),
		)
		return nil, domain.ErrBlackedOut
	}

	active, err := s.reservationRepo.ListActiveByUser(ctx, userID, s.now().Unix())
	if err != nil {
		return nil, fmt.Errorf("list user reservations: %w", err)
	}

	// A user may pre-book their immediate next slot, but not hold a
	// second reservation that extends further into today.
	nextHalfHour, endOfDay := s.sameDayBounds()
	for _, r := range active {
		if nextHalfHour < r.TimeSlot.EndTime && r.TimeSlot.EndTime <= endOfDay {
			s.logger.Warn("user already has an active reservation today",
				logger.String("user_id", userID),
				logger.String("reservation_id", r.ID),
			)
			return nil, domain.ErrActiveReservation
		}
	}

	reservation := &domain.Reservation{
		ID:        uuid.New().String(),
		UserID:    userID,
		SeatID:    seatID,
		TimeSlot:  slot,
		CreatedAt: s.now().UTC(),
	}
	if err = s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", reservation.ID),
		logger.String("user_id", userID),
		logger.Int("seat_id", seatID),
	)

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), reservation)

	return reservation, nil
}

func (s *ReservationService) Cancel(ctx context.Context, userID, reservationID string) error {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}

	if reservation.UserID != userID {
		s.logger.Warn("user attempted to cancel a reservation they do not own",
			logger.String("user_id", userID),
			logger.String("reservation_id", reservationID),
		)
		return domain.ErrNotOwner
	}

	if err = s.reservationRepo.Delete(ctx, reservationID); err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", reservationID),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyReservationCancelled(context.WithoutCancel(ctx), reservation)

	return nil
}

func (s *ReservationService) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListActiveByUser(ctx, userID, s.now().Unix())
}

func (s *ReservationService) ListBySeat(ctx context.Context, seatID int, slot domain.TimeSlot) ([]*domain.Reservation, error) {
	if !slot.Valid() {
		return nil, domain.ErrInvalidTimeSlot
	}
	return s.reservationRepo.ListBySeat(ctx, seatID, slot)
}

func (s *ReservationService) validateReservationSlot(slot domain.TimeSlot) error {
	if !slot.Valid() {
		return domain.ErrInvalidTimeSlot
	}
	if !slot.SameLocalDay(s.loc) {
		return domain.ErrCrossDayTimeSlot
	}
	if slot.StartTime < s.now().Unix() {
		return domain.ErrStartInPast
	}
	return nil
}

// sameDayBounds returns the next half-hour boundary strictly after now
// and the end of the current local day, both as epoch seconds.
func (s *ReservationService) sameDayBounds() (nextHalfHour, endOfDay int64) {
	now := s.now().In(s.loc)
	year, month, day := now.Date()

	if now.Minute() >= 30 {
		nextHalfHour = time.Date(year, month, day, now.Hour()+1, 0, 0, 0, s.loc).Unix()
	} else {
		nextHalfHour = time.Date(year, month, day, now.Hour(), 30, 0, 0, s.loc).Unix()
	}
	endOfDay = time.Date(year, month, day, 23, 59, 59, 0, s.loc).Unix()

	return nextHalfHour, endOfDay
}
