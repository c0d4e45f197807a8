package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/StudySpaceOptimizer/backend/internal/domain"
	"github.com/StudySpaceOptimizer/backend/internal/handler/dto"
	hmocks "github.com/StudySpaceOptimizer/backend/internal/handler/mocks"
	"github.com/StudySpaceOptimizer/backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testUserID = "u1"

func setupRouter(t *testing.T) (*hmocks.MockReservationSvc, *hmocks.MockSeatSvc, *hmocks.MockBlackoutSvc, http.Handler) {
	t.Helper()
	reservationSvc := hmocks.NewMockReservationSvc(t)
	seatSvc := hmocks.NewMockSeatSvc(t)
	blackoutSvc := hmocks.NewMockBlackoutSvc(t)

	h := NewHandler(reservationSvc, seatSvc, blackoutSvc)

	asUser := func(c *ginext.Context) {
		c.Set(middleware.ContextUserID, testUserID)
		c.Next()
	}

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/seats/overview", h.SeatsOverview)
		api.GET("/seats/overview/timeslot", h.SeatsOverviewInTimeSlot)
		api.GET("/seats/:id/reservations", h.ListSeatReservations)

		api.POST("/reservations", asUser, h.CreateReservation)
		api.DELETE("/reservations/:id", asUser, h.CancelReservation)
		api.GET("/users/reservations", asUser, h.ListUserReservations)

		api.POST("/blackouts", h.AddBlackout)
		api.POST("/seats/info", h.UpdateSeat)
	}

	return reservationSvc, seatSvc, blackoutSvc, r
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	slot := domain.TimeSlot{StartTime: 1900000000, EndTime: 1900007200}
	reservation := &domain.Reservation{
		ID:        uuid.New().String(),
		UserID:    testUserID,
		SeatID:    7,
		TimeSlot:  slot,
		CreatedAt: time.Now().UTC(),
	}

	reservationSvc.EXPECT().Reserve(mock.Anything, testUserID, 7, slot).Return(reservation, nil)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		SeatID:    7,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, reservation.ID, resp.ID)
	assert.Equal(t, 7, resp.SeatID)
}

func TestHandler_CreateReservation_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"seat_id":0}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid slot", domain.ErrInvalidTimeSlot, http.StatusUnprocessableEntity},
		{"cross day", domain.ErrCrossDayTimeSlot, http.StatusUnprocessableEntity},
		{"start in past", domain.ErrStartInPast, http.StatusUnprocessableEntity},
		{"blacked out", domain.ErrBlackedOut, http.StatusBadRequest},
		{"active reservation", domain.ErrActiveReservation, http.StatusBadRequest},
		{"slot taken", domain.ErrSlotTaken, http.StatusConflict},
		{"seat not found", domain.ErrSeatNotFound, http.StatusNotFound},
		{"internal", fmt.Errorf("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservationSvc, _, _, r := setupRouter(t)

			reservationSvc.EXPECT().Reserve(mock.Anything, testUserID, 7, mock.Anything).Return(nil, tt.err)

			body := []byte(`{"seat_id":7,"start_time":1900000000,"end_time":1900007200}`)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_CancelReservation_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	reservationSvc.EXPECT().Cancel(mock.Anything, testUserID, id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelReservation_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelReservation_NotOwner(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	reservationSvc.EXPECT().Cancel(mock.Anything, testUserID, id).Return(domain.ErrNotOwner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CancelReservation_NotFound(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	reservationSvc.EXPECT().Cancel(mock.Anything, testUserID, id).Return(domain.ErrReservationNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListUserReservations_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	reservations := []*domain.Reservation{
		{ID: uuid.New().String(), UserID: testUserID, SeatID: 1, TimeSlot: domain.TimeSlot{StartTime: 1, EndTime: 2}},
		{ID: uuid.New().String(), UserID: testUserID, SeatID: 2, TimeSlot: domain.TimeSlot{StartTime: 3, EndTime: 4}},
	}
	reservationSvc.EXPECT().ListByUser(mock.Anything, testUserID).Return(reservations, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListSeatReservations_Success(t *testing.T) {
	reservationSvc, _, _, r := setupRouter(t)

	slot := domain.TimeSlot{StartTime: 1900000000, EndTime: 1900007200}
	reservationSvc.EXPECT().ListBySeat(mock.Anything, 3, slot).Return(nil, nil)

	w := httptest.NewRecorder()
	url := fmt.Sprintf("/api/seats/3/reservations?start_time=%d&end_time=%d", slot.StartTime, slot.EndTime)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListSeatReservations_InvalidSeatID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/seats/abc/reservations?start_time=1&end_time=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListSeatReservations_MissingQuery(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/seats/3/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Seats ---

func TestHandler_SeatsOverview_Success(t *testing.T) {
	_, seatSvc, _, r := setupRouter(t)

	overview := []domain.SeatAvailability{
		{SeatID: 1, Status: domain.SeatStatusAvailable},
		{SeatID: 2, Status: domain.SeatStatusBorrowed},
	}
	seatSvc.EXPECT().Overview(mock.Anything).Return(overview, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/seats/overview", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SeatsOverviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Seats, 2)
	assert.Equal(t, "Available", resp.Seats[0].Status)
	assert.Equal(t, "Borrowed", resp.Seats[1].Status)
}

func TestHandler_SeatsOverviewInTimeSlot_Success(t *testing.T) {
	_, seatSvc, _, r := setupRouter(t)

	slot := domain.TimeSlot{StartTime: 1900000000, EndTime: 1900007200}
	overview := []domain.SeatAvailability{
		{SeatID: 1, Status: domain.SeatStatusUnavailable},
	}
	seatSvc.EXPECT().OverviewInSlot(mock.Anything, slot).Return(overview, nil)

	w := httptest.NewRecorder()
	url := fmt.Sprintf("/api/seats/overview/timeslot?start_time=%d&end_time=%d", slot.StartTime, slot.EndTime)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SeatsOverviewInTimeSlot_InvalidQuery(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/seats/overview/timeslot?start_time=abc&end_time=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Admin ---

func TestHandler_AddBlackout_Success(t *testing.T) {
	_, _, blackoutSvc, r := setupRouter(t)

	slot := domain.TimeSlot{StartTime: 1900000000, EndTime: 1900007200}
	blackoutSvc.EXPECT().Add(mock.Anything, slot).Return(nil)

	body, _ := json.Marshal(dto.AddBlackoutRequest{StartTime: slot.StartTime, EndTime: slot.EndTime})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/blackouts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AddBlackout_InvalidSlot(t *testing.T) {
	_, _, blackoutSvc, r := setupRouter(t)

	blackoutSvc.EXPECT().Add(mock.Anything, mock.Anything).Return(domain.ErrInvalidTimeSlot)

	body := []byte(`{"start_time":2000,"end_time":1000}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/blackouts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_UpdateSeat_Success(t *testing.T) {
	_, seatSvc, _, r := setupRouter(t)

	seatSvc.EXPECT().UpdateSeat(mock.Anything, mock.Anything).
		Run(func(_ context.Context, input domain.UpdateSeatInput) {
			assert.Equal(t, 5, input.SeatID)
			assert.False(t, input.Available)
		}).
		Return(nil)

	body := []byte(`{"seat_id":5,"available":false}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/seats/info", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateSeat_MissingAvailable(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"seat_id":5}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/seats/info", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
