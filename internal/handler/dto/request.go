package dto

type CreateReservationRequest struct {
	SeatID    int   `json:"seat_id" binding:"required,min=1"`
	StartTime int64 `json:"start_time" binding:"required"`
	EndTime   int64 `json:"end_time" binding:"required"`
}

type AddBlackoutRequest struct {
	StartTime int64 `json:"start_time" binding:"required"`
	EndTime   int64 `json:"end_time" binding:"required"`
}

type UpdateSeatRequest struct {
	SeatID    int     `json:"seat_id" binding:"required,min=1"`
	Available *bool   `json:"available" binding:"required"`
	OtherInfo *string `json:"other_info"`
}
