package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/shift-schedule-api/internal/constants"
)

var ErrInvalidDate = errors.New("invalid date")

// WeekBounds identifies one scheduling period.
type WeekBounds struct {
	Start time.Time
	End   time.Time
}

// UTC returns the bounds converted to UTC, the form they are stored and queried in.
func (w WeekBounds) UTC() WeekBounds {
	return WeekBounds{Start: w.Start.UTC(), End: w.End.UTC()}
}

// IsZero reports whether either bound is missing.
func (w WeekBounds) IsZero() bool {
	return w.Start.IsZero() || w.End.IsZero()
}

// Shift moves both bounds by the given number of days.
func (w WeekBounds) Shift(days int) WeekBounds {
	return WeekBounds{Start: w.Start.AddDate(0, 0, days), End: w.End.AddDate(0, 0, days)}
}

// DateKey is the calendar date of the week start in loc.
func (w WeekBounds) DateKey(loc *time.Location) string {
	return w.Start.In(loc).Format(constants.DateLayout)
}

// Label renders "D.M.YYYY-D.M.YYYY" using the dates in loc.
func (w WeekBounds) Label(loc *time.Location) string {
	s, e := w.Start.In(loc), w.End.In(loc)
	return fmt.Sprintf("%d.%d.%d-%d.%d.%d", s.Day(), int(s.Month()), s.Year(), e.Day(), int(e.Month()), e.Year())
}

// ShortLabel renders "D.M - D.M" using the dates in loc.
func (w WeekBounds) ShortLabel(loc *time.Location) string {
	s, e := w.Start.In(loc), w.End.In(loc)
	return fmt.Sprintf("%d.%d - %d.%d", s.Day(), int(s.Month()), e.Day(), int(e.Month()))
}

// WeekContaining returns the Monday 00:00 to Sunday 23:59:59.999 range around t in loc.
func WeekContaining(t time.Time, loc *time.Location) WeekBounds {
	local := t.In(loc)
	offset := (int(local.Weekday()) + 6) % 7 // days since Monday
	monday := time.Date(local.Year(), local.Month(), local.Day()-offset, 0, 0, 0, 0, loc)
	sunday := time.Date(monday.Year(), monday.Month(), monday.Day()+6, 23, 59, 59, int(999*time.Millisecond), loc)
	return WeekBounds{Start: monday, End: sunday}
}

// ParseDate accepts RFC3339 timestamps or plain YYYY-MM-DD dates, the latter taken as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(constants.DateLayout, value, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// ParseWeekBounds parses both bounds of a week. Empty values yield zero times.
func ParseWeekBounds(start, end string, loc *time.Location) (WeekBounds, error) {
	var bounds WeekBounds
	var err error
	if start != "" {
		if bounds.Start, err = ParseDate(start, loc); err != nil {
			return WeekBounds{}, err
		}
	}
	if end != "" {
		if bounds.End, err = ParseDate(end, loc); err != nil {
			return WeekBounds{}, err
		}
	}
	return bounds, nil
}
