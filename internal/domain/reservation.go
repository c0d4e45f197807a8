package domain

import "time"

// Reservation is a committed claim on one seat for one timeslot.
// CheckInTime and CheckOutTime are written by the attendance flow and are
// never touched by the booking path.
type Reservation struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	SeatID       int      `json:"seat_id"`
	TimeSlot     TimeSlot `json:"timeslot"`
	CheckInTime  *int64   `json:"check_in_time,omitempty"`
	CheckOutTime *int64   `json:"check_out_time,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
