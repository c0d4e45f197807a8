package domain

// BlackoutWindow is an admin-declared timeslot during which no seat may be
// reserved. Windows are global and append-only; overlapping windows are
// allowed since every check is "exists any overlapping window".
type BlackoutWindow struct {
	ID       int64    `json:"id"`
	TimeSlot TimeSlot `json:"timeslot"`
}
