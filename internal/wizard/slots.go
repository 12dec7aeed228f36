package wizard

import (
	"fmt"
	"time"

	"github.com/ariefcatur/go-repair-shop/internal/booking"
)

const (
	openHour   = 9
	closeHour  = 18
	DateLayout = "2006-01-02"
)

var timeGrid = buildTimeGrid()

// buildTimeGrid yields 09:00..18:00 every 30 minutes, without 18:30.
func buildTimeGrid() []string {
	var out []string
	for h := openHour; h <= closeHour; h++ {
		out = append(out, fmt.Sprintf("%02d:00", h))
		if h < closeHour {
			out = append(out, fmt.Sprintf("%02d:30", h))
		}
	}
	return out
}

func TimeSlots() []string { return append([]string(nil), timeGrid...) }

func validTime(hhmm string) bool {
	for _, t := range timeGrid {
		if t == hhmm {
			return true
		}
	}
	return false
}

// midnight truncates t to the start of its day in loc.
func midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DateAllowed rejects days before today and Sundays.
func DateAllowed(day, now time.Time, loc *time.Location) bool {
	d := midnight(day, loc)
	if d.Before(midnight(now, loc)) {
		return false
	}
	return d.Weekday() != time.Sunday
}

// BuildSlot combines a calendar day and an "HH:MM" grid time. End equals Start.
func BuildSlot(day time.Time, hhmm string, loc *time.Location) (booking.Slot, error) {
	tod, err := time.Parse("15:04", hhmm)
	if err != nil {
		return booking.Slot{}, fmt.Errorf("parse time %q: %w", hhmm, err)
	}
	y, m, d := day.In(loc).Date()
	start := time.Date(y, m, d, tod.Hour(), tod.Minute(), 0, 0, loc).UTC()
	return booking.Slot{Start: start, End: start}, nil
}

// ParseDate reads a YYYY-MM-DD day in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}
