package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/StudySpaceOptimizer/backend/internal/domain"
	"github.com/StudySpaceOptimizer/backend/internal/handler/dto"
	"github.com/StudySpaceOptimizer/backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type ReservationSvc interface {
	Reserve(ctx context.Context, userID string, seatID int, slot domain.TimeSlot) (*domain.Reservation, error)
	Cancel(ctx context.Context, userID, reservationID string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
	ListBySeat(ctx context.Context, seatID int, slot domain.TimeSlot) ([]*domain.Reservation, error)
}

type SeatSvc interface {
	Overview(ctx context.Context) ([]domain.SeatAvailability, error)
	OverviewInSlot(ctx context.Context, slot domain.TimeSlot) ([]domain.SeatAvailability, error)
	UpdateSeat(ctx context.Context, input domain.UpdateSeatInput) error
}

type BlackoutSvc interface {
	Add(ctx context.Context, slot domain.TimeSlot) error
}

type Handler struct {
	reservationService ReservationSvc
	seatService        SeatSvc
	blackoutService    BlackoutSvc
}

func NewHandler(reservationService ReservationSvc, seatService SeatSvc, blackoutService BlackoutSvc) *Handler {
	return &Handler{
		reservationService: reservationService,
		seatService:        seatService,
		blackoutService:    blackoutService,
	}
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slot := domain.TimeSlot{StartTime: req.StartTime, EndTime: req.EndTime}

	reservation, err := h.reservationService.Reserve(
		c.Request.Context(), c.GetString(middleware.ContextUserID), req.SeatID, slot,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	if err := h.reservationService.Cancel(c.Request.Context(), c.GetString(middleware.ContextUserID), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) ListUserReservations(c *ginext.Context) {
	reservations, err := h.reservationService.ListByUser(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListSeatReservations(c *ginext.Context) {
	seatID, err := strconv.Atoi(c.Param("id"))
	if err != nil || seatID < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid seat id"})
		return
	}

	slot, ok := h.slotFromQuery(c)
	if !ok {
		return
	}

	reservations, err := h.reservationService.ListBySeat(c.Request.Context(), seatID, slot)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Seats

func (h *Handler) SeatsOverview(c *ginext.Context) {
	overview, err := h.seatService.Overview(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSeatsOverviewResponse(overview))
}

func (h *Handler) SeatsOverviewInTimeSlot(c *ginext.Context) {
	slot, ok := h.slotFromQuery(c)
	if !ok {
		return
	}

	overview, err := h.seatService.OverviewInSlot(c.Request.Context(), slot)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSeatsOverviewResponse(overview))
}

// Admin

func (h *Handler) AddBlackout(c *ginext.Context) {
	var req dto.AddBlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slot := domain.TimeSlot{StartTime: req.StartTime, EndTime: req.EndTime}
	if err := h.blackoutService.Add(c.Request.Context(), slot); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "created"})
}

func (h *Handler) UpdateSeat(c *ginext.Context) {
	var req dto.UpdateSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateSeatInput{
		SeatID:    req.SeatID,
		Available: *req.Available,
		OtherInfo: req.OtherInfo,
	}
	if err := h.seatService.UpdateSeat(c.Request.Context(), input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

func (h *Handler) slotFromQuery(c *ginext.Context) (domain.TimeSlot, bool) {
	start, err := strconv.ParseInt(c.Query("start_time"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_time"})
		return domain.TimeSlot{}, false
	}

	end, err := strconv.ParseInt(c.Query("end_time"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_time"})
		return domain.TimeSlot{}, false
	}

	return domain.TimeSlot{StartTime: start, EndTime: end}, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrInvalidTimeSlot),
		errors.Is(err, domain.ErrCrossDayTimeSlot),
		errors.Is(err, domain.ErrStartInPast):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBlackedOut),
		errors.Is(err, domain.ErrActiveReservation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrSeatNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
