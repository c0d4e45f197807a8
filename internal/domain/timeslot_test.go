package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlot_Overlaps(t *testing.T) {
	base := TimeSlot{StartTime: 1000, EndTime: 2000}

	tests := []struct {
		name  string
		other TimeSlot
		want  bool
	}{
		{"identical", TimeSlot{StartTime: 1000, EndTime: 2000}, true},
		{"contained", TimeSlot{StartTime: 1200, EndTime: 1800}, true},
		{"containing", TimeSlot{StartTime: 500, EndTime: 2500}, true},
		{"overlaps start", TimeSlot{StartTime: 500, EndTime: 1500}, true},
		{"overlaps end", TimeSlot{StartTime: 1500, EndTime: 2500}, true},
		{"adjacent before", TimeSlot{StartTime: 500, EndTime: 1000}, false},
		{"adjacent after", TimeSlot{StartTime: 2000, EndTime: 2500}, false},
		{"disjoint before", TimeSlot{StartTime: 100, EndTime: 500}, false},
		{"disjoint after", TimeSlot{StartTime: 3000, EndTime: 4000}, false},
		{"zero length at start", TimeSlot{StartTime: 1000, EndTime: 1000}, false},
		{"zero length inside", TimeSlot{StartTime: 1500, EndTime: 1500}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestTimeSlot_Contains(t *testing.T) {
	slot := TimeSlot{StartTime: 1000, EndTime: 2000}

	assert.True(t, slot.Contains(1000))
	assert.True(t, slot.Contains(1500))
	assert.False(t, slot.Contains(2000))
	assert.False(t, slot.Contains(999))
}

func TestTimeSlot_Valid(t *testing.T) {
	assert.True(t, TimeSlot{StartTime: 1000, EndTime: 2000}.Valid())
	assert.True(t, TimeSlot{StartTime: 1000, EndTime: 1000}.Valid())
	assert.False(t, TimeSlot{StartTime: 2000, EndTime: 1000}.Valid())
}

func TestTimeSlot_SameLocalDay(t *testing.T) {
	loc := time.FixedZone("GMT+8", 8*3600)

	morning := time.Date(2026, 9, 1, 9, 0, 0, 0, loc)
	evening := time.Date(2026, 9, 1, 21, 0, 0, 0, loc)
	nextDay := time.Date(2026, 9, 2, 1, 0, 0, 0, loc)

	sameDay := TimeSlot{StartTime: morning.Unix(), EndTime: evening.Unix()}
	assert.True(t, sameDay.SameLocalDay(loc))

	crossDay := TimeSlot{StartTime: evening.Unix(), EndTime: nextDay.Unix()}
	assert.False(t, crossDay.SameLocalDay(loc))

	// Same UTC day but different local days.
	lateNight := time.Date(2026, 9, 1, 23, 0, 0, 0, loc)
	pastMidnight := time.Date(2026, 9, 2, 0, 30, 0, 0, loc)
	slot := TimeSlot{StartTime: lateNight.Unix(), EndTime: pastMidnight.Unix()}
	assert.False(t, slot.SameLocalDay(loc))
	assert.True(t, slot.SameLocalDay(time.UTC))
}
