package domain

import "errors"

var (
	ErrInvalidTimeSlot  = errors.New("end time is before start time")
	ErrCrossDayTimeSlot = errors.New("start and end are not on the same day")
	ErrStartInPast      = errors.New("start time is in the past")
)

var (
	ErrBlackedOut        = errors.New("timeslot overlaps a blackout window")
	ErrActiveReservation = errors.New("user already has an active reservation today")
	ErrSlotTaken         = errors.New("seat is already reserved for this timeslot")
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrSeatNotFound        = errors.New("seat not found")
	ErrNotOwner            = errors.New("reservation belongs to another user")
)
