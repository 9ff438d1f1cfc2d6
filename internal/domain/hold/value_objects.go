package hold

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate     = errors.New("invalid booking date")
	ErrInvalidTimeSlot = errors.New("invalid time slot")
)

// TimeSlot is a half-open [start,end) interval within a single booking date,
// held as minutes from midnight. Wall-clock seconds are ignored.
type TimeSlot struct {
	startMin int
	endMin   int
}

func NewTimeSlot(start, end string) (TimeSlot, error) {
	startMin, err := parseMinuteOfDay(start)
	if err != nil {
		return TimeSlot{}, err
	}
	endMin, err := parseMinuteOfDay(end)
	if err != nil {
		return TimeSlot{}, err
	}
	if startMin >= endMin {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{startMin: startMin, endMin: endMin}, nil
}

func ReconstructTimeSlot(startMin, endMin int) TimeSlot {
	return TimeSlot{startMin: startMin, endMin: endMin}
}

func (ts TimeSlot) StartMinute() int { return ts.startMin }
func (ts TimeSlot) EndMinute() int   { return ts.endMin }

func (ts TimeSlot) Start() string { return formatMinuteOfDay(ts.startMin) }
func (ts TimeSlot) End() string   { return formatMinuteOfDay(ts.endMin) }

// Overlaps reports whether two half-open intervals intersect:
// [s1,e1) and [s2,e2) overlap iff s1 < e2 && s2 < e1.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.startMin < other.endMin && other.startMin < ts.endMin
}

func (ts TimeSlot) DurationMinutes() int {
	d := ts.endMin - ts.startMin
	if d < 0 {
		return 0
	}
	return d
}

func (ts TimeSlot) DurationHours() float64 {
	return float64(ts.DurationMinutes()) / 60.0
}

func parseMinuteOfDay(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, ErrInvalidTimeSlot
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, ErrInvalidTimeSlot
	}
	return h*60 + m, nil
}

func formatMinuteOfDay(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// BookingDate is a calendar date (YYYY-MM-DD) with no time component.
type BookingDate struct {
	value time.Time
}

func NewBookingDate(s string) (BookingDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return BookingDate{}, ErrInvalidDate
	}
	return BookingDate{value: t}, nil
}

func ReconstructBookingDate(t time.Time) BookingDate {
	return BookingDate{value: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d BookingDate) Time() time.Time { return d.value }

func (d BookingDate) String() string { return d.value.Format("2006-01-02") }
