package domain

import "time"

// TimeSlot is a half-open time range [StartTime, EndTime) in epoch seconds.
type TimeSlot struct {
	StartTime int64 `json:"start_time"`
	EndTime   int64 `json:"end_time"`
}

// Overlaps reports whether two slots intersect. Touching endpoints do not
// count as an overlap.
func (t TimeSlot) Overlaps(other TimeSlot) bool {
	return max(t.StartTime, other.StartTime) < min(t.EndTime, other.EndTime)
}

// Contains reports whether instant falls inside the slot.
func (t TimeSlot) Contains(instant int64) bool {
	return t.StartTime <= instant && instant < t.EndTime
}

func (t TimeSlot) Valid() bool {
	return t.StartTime <= t.EndTime
}

// SameLocalDay reports whether both endpoints fall on the same calendar
// day in loc.
func (t TimeSlot) SameLocalDay(loc *time.Location) bool {
	start := time.Unix(t.StartTime, 0).In(loc)
	end := time.Unix(t.EndTime, 0).In(loc)

	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()

	return sy == ey && sm == em && sd == ed
}
