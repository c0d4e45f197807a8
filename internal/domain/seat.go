package domain

type Seat struct {
	ID        int     `json:"id"`
	Available bool    `json:"available"`
	OtherInfo *string `json:"other_info,omitempty"`
}

type SeatStatus string

const (
	SeatStatusAvailable   SeatStatus = "Available"
	SeatStatusUnavailable SeatStatus = "Unavailable"
	SeatStatusBorrowed    SeatStatus = "Borrowed"
)

// SeatAvailability is the per-seat entry of an overview report.
type SeatAvailability struct {
	SeatID int        `json:"seat_id"`
	Status SeatStatus `json:"status"`
}

type UpdateSeatInput struct {
	SeatID    int
	Available bool
	OtherInfo *string
}
