package domain

import (
	"fmt"
	"time"
)

// WeekKeyLayout is the date-only layout used for week keys on the wire and
// in storage.
const WeekKeyLayout = "2006-01-02"

// CurrentWeekMonday returns the Monday of the ISO week containing today, at
// midnight in today's location.
func CurrentWeekMonday(today time.Time) time.Time {
	return mondayFromISO(today)
}

// isoWeekday maps Go's Sunday=0 numbering to ISO Monday=1 … Sunday=7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func mondayFromISO(t time.Time) time.Time {
	d := t.AddDate(0, 0, -(isoWeekday(t) - 1))
	return StartOfDay(d)
}

// mondayFromZeroIndexed resolves the same Monday using Sunday=0 numbering.
// Sunday steps back six days; any other day steps back weekday-1.
func mondayFromZeroIndexed(t time.Time) time.Time {
	wd := int(t.Weekday())
	diff := 1 - wd
	if wd == 0 {
		diff = -6
	}
	return StartOfDay(t.AddDate(0, 0, diff))
}

// StartOfDay returns 00:00:00 of the same calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameWeek reports whether a and b fall in the same Monday-anchored week.
func SameWeek(a, b time.Time) bool {
	return WeekKey(CurrentWeekMonday(a)) == WeekKey(CurrentWeekMonday(b))
}

// WeekKey formats a week start as YYYY-MM-DD.
func WeekKey(monday time.Time) string {
	return monday.Format(WeekKeyLayout)
}

// ParseWeekKey parses a YYYY-MM-DD week key in loc. The date must be a
// Monday.
func ParseWeekKey(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(WeekKeyLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidWeekStart, s)
	}
	if t.Weekday() != time.Monday {
		return time.Time{}, fmt.Errorf("%w: %s is a %s", ErrInvalidWeekStart, s, t.Weekday())
	}
	return t, nil
}
