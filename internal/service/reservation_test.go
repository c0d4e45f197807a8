package service

import (
	"context"
	"testing"
	"time"

	"github.com/StudySpaceOptimizer/backend/internal/domain"
	"github.com/StudySpaceOptimizer/backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var testLoc = time.FixedZone("GMT+8", 8*3600)

// testNow is 2026-09-01 10:12:00 local, a Tuesday.
var testNow = time.Date(2026, 9, 1, 10, 12, 0, 0, testLoc)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func localSlot(t *testing.T, startHour, startMin, endHour, endMin int) domain.TimeSlot {
	t.Helper()
	return domain.TimeSlot{
		StartTime: time.Date(2026, 9, 1, startHour, startMin, 0, 0, testLoc).Unix(),
		EndTime:   time.Date(2026, 9, 1, endHour, endMin, 0, 0, testLoc).Unix(),
	}
}

func newTestReservationService(t *testing.T) (*ReservationService, *mocks.MockReservationRepo, *mocks.MockBlackoutRepo, *mocks.MockReservationNotifier) {
	t.Helper()

	reservationRepo := mocks.NewMockReservationRepo(t)
	blackoutRepo := mocks.NewMockBlackoutRepo(t)
	notifier := mocks.NewMockReservationNotifier(t)

	svc := NewReservationService(reservationRepo, blackoutRepo, notifier, newTestLogger(t), testLoc)
	svc.now = func() time.Time { return testNow }

	return svc, reservationRepo, blackoutRepo, notifier
}

func TestReservationService_Reserve_Success(t *testing.T) {
	svc, reservationRepo, blackoutRepo, notifier := newTestReservationService(t)

	slot := localSlot(t, 14, 0, 16, 0)

	blackoutRepo.EXPECT().Overlaps(mock.Anything, slot).Return(false, nil)
	reservationRepo.EXPECT().ListActiveByUser(mock.Anything, "u1", testNow.Unix()).Return(nil, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything).Return()

	reservation, err := svc.Reserve(context.Background(), "u1", 7, slot)

	require.NoError(t, err)
	assert.NotEmpty(t, reservation.ID)
	assert.Equal(t, "u1", reservation.UserID)
	assert.Equal(t, 7, reservation.SeatID)
	assert.Equal(t, slot, reservation.TimeSlot)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Reserve_InvalidSlot(t *testing.T) {
	svc, _, _, _ := newTestReservationService(t)

	slot := domain.TimeSlot{StartTime: 2000, EndTime: 1000}

	_, err := svc.Reserve(context.Background(), "u1", 7, slot)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTimeSlot)
}

func TestReservationService_Reserve_CrossDaySlot(t *testing.T) {
	svc, _, _, _ := newTestReservationService(t)

	slot := domain.TimeSlot{
		StartTime: time.Date(2026, 9, 1, 22, 0, 0, 0, testLoc).Unix(),
		EndTime:   time.Date(2026, 9, 2, 2, 0, 0, 0, testLoc).Unix(),
	}

	_, err := svc.Reserve(context.Background(), "u1", 7, slot)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCrossDayTimeSlot)
}

func TestReservationService_Reserve_StartInPast(t *testing.T) {
	svc, _, _, _ := newTestReservationService(t)

	slot := localSlot(t, 9, 0, 11, 0)

	_, err := svc.Reserve(context.Background(), "u1", 7, slot)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStartInPast)
}

func TestReservationService_Reserve_BlackedOut(t *testing.T) {
	svc, _, blackoutRepo, _ := newTestReservationService(t)

	slot := localSlot(t, 14, 0, 16, 0)

	blackoutRepo.EXPECT().Overlaps(mock.Anything, slot).Return(true, nil)

	_, err := svc.Reserve(context.Background(), "u1", 7, slot)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBlackedOut)
}

func TestReservationService_Reserve_ActiveReservationToday(t *testing.T) {
	svc, reservationRepo, blackoutRepo, _ := newTestReservationService(t)

	slot := localSlot(t, 14, 0, 16, 0)
	existing := &domain.Reservation{
		ID:       "r1",
		UserID:   "u1",
		SeatID:   3,
		TimeSlot: localSlot(t, 10, 0, 12, 0),
	}

	blackoutRepo.EXPECT().Overlaps(mock.Anything, slot).Return(false, nil)
	reservationRepo.EXPECT().ListActiveByUser(mock.Anything, "u1", testNow.Unix()).
		Return([]*domain.Reservation{existing}, nil)

	_, err := svc.Reserve(context.Background(), "u1", 7, slot)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrActiveReservation)
}

func TestReservationService_Reserve_AllowsPreBookingNextSlot(t *testing.T) {
	svc, reservationRepo, blackoutRepo, notifier := newTestReservationService(t)

	// The current sitting ends at the next half-hour boundary (10:30).
	// Booking the follow-up slot is allowed.
	slot := localSlot(t, 10, 30, 12, 0)
	current := &domain.Reservation{
		ID:       "r1",
		UserID:   "u1",
		SeatID:   7,
		TimeSlot: localSlot(t, 10, 0, 10, 30),
	}

	blackoutRepo.EXPECT().Overlaps(mock.Anything, slot).Return(false, nil)
	reservationRepo.EXPECT().ListActiveByUser(mock.Anything, "u1", testNow.Unix()).
		Return([]*domain.Reservation{current}, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything).Return()

	_, err := svc.Reserve(context.Background(), "u1", 7, slot)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Reserve_IgnoresTomorrowReservation(t *testing.T) {
	svc, reservationRepo, blackoutRepo, notifier := newTestReservationService(t)

	slot := localSlot(t, 14, 0, 16, 0)
	tomorrow := &domain.Reservation{
		ID:     "r1",
		UserID: "u1",
		SeatID: 3,
		TimeSlot: domain.TimeSlot{
			StartTime: time.Date(2026, 9, 2, 10, 0, 0, 0, testLoc).Unix(),
			EndTime:   time.Date(2026, 9, 2, 12, 0, 0, 0, testLoc).Unix(),
		},
	}

	blackoutRepo.EXPECT().Overlaps(mock.Anything, slot).Return(false, nil)
	reservationRepo.EXPECT().ListActiveByUser(mock.Anything, "u1", testNow.Unix()).
		Return([]*domain.Reservation{tomorrow}, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything).Return()

	_, err := svc.Reserve(context.Background(), "u1", 7, slot)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Reserve_SlotTaken(t *testing.T) {
	svc, reservationRepo, blackoutRepo, _ := newTestReservationService(t)

	slot := localSlot(t, 14, 0, 16, 0)

	blackoutRepo.EXPECT().Overlaps(mock.Anything, slot).Return(false, nil)
	reservationRepo.EXPECT().ListActiveByUser(mock.Anything, "u1", testNow.Unix()).Return(nil, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSlotTaken)

	_, err := svc.Reserve(context.Background(), "u1", 7, slot)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestReservationService_Cancel_Success(t *testing.T) {
	svc, reservationRepo, _, notifier := newTestReservationService(t)

	reservation := &domain.Reservation{
		ID:       "r1",
		UserID:   "u1",
		SeatID:   7,
		TimeSlot: localSlot(t, 14, 0, 16, 0),
	}

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reservation, nil)
	reservationRepo.EXPECT().Delete(mock.Anything, "r1").Return(nil)
	notifier.EXPECT().NotifyReservationCancelled(mock.Anything, reservation).Return()

	err := svc.Cancel(context.Background(), "u1", "r1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_NotOwner(t *testing.T) {
	svc, reservationRepo, _, _ := newTestReservationService(t)

	reservation := &domain.Reservation{ID: "r1", UserID: "someone-else"}
	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reservation, nil)

	err := svc.Cancel(context.Background(), "u1", "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestReservationService_Cancel_NotFound(t *testing.T) {
	svc, reservationRepo, _, _ := newTestReservationService(t)

	reservationRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	err := svc.Cancel(context.Background(), "u1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_ListBySeat_InvalidSlot(t *testing.T) {
	svc, _, _, _ := newTestReservationService(t)

	_, err := svc.ListBySeat(context.Background(), 7, domain.TimeSlot{StartTime: 2000, EndTime: 1000})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTimeSlot)
}
