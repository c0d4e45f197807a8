package dto

import (
	"time"

	"github.com/StudySpaceOptimizer/backend/internal/domain"
)

type ReservationResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	SeatID       int    `json:"seat_id"`
	StartTime    int64  `json:"start_time"`
	EndTime      int64  `json:"end_time"`
	CheckInTime  *int64 `json:"check_in_time,omitempty"`
	CheckOutTime *int64 `json:"check_out_time,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type SeatStatusResponse struct {
	SeatID int    `json:"seat_id"`
	Status string `json:"status"`
}

type SeatsOverviewResponse struct {
	Seats []SeatStatusResponse `json:"seats"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		SeatID:       r.SeatID,
		StartTime:    r.TimeSlot.StartTime,
		EndTime:      r.TimeSlot.EndTime,
		CheckInTime:  r.CheckInTime,
		CheckOutTime: r.CheckOutTime,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}

func ToSeatsOverviewResponse(statuses []domain.SeatAvailability) SeatsOverviewResponse {
	seats := make([]SeatStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		seats = append(seats, SeatStatusResponse{
			SeatID: s.SeatID,
			Status: string(s.Status),
		})
	}

	return SeatsOverviewResponse{Seats: seats}
}
