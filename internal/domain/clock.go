package domain

import (
	"fmt"
	"strconv"
)

// Clock is a wall-clock time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a 24-hour "HH:MM" string. Both fields must be exactly
// two digits, hour in [0,23] and minute in [0,59].
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	h, err := parseTwoDigits(s[:2])
	if err != nil || h > 23 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	m, err := parseTwoDigits(s[3:])
	if err != nil || m > 59 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

func parseTwoDigits(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-digit in %q", s)
		}
	}
	return strconv.Atoi(s)
}

// Minutes returns minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// DurationMinutes returns end minus start in minutes. The result is negative
// when end precedes start; callers that need a positive span validate first.
func DurationMinutes(start, end string) (int, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	return e.Minutes() - s.Minutes(), nil
}

// DurationHours returns the signed number of hours between two "HH:MM"
// times on the same day.
func DurationHours(start, end string) (float64, error) {
	mins, err := DurationMinutes(start, end)
	if err != nil {
		return 0, err
	}
	return float64(mins) / 60.0, nil
}

// Entry time windows and grid, in minutes since midnight.
const (
	SlotMinutes   = 15
	EarliestStart = 4 * 60
	LatestStart   = 20 * 60
	EarliestEnd   = 4 * 60
	LatestEnd     = 21 * 60
)

// TimeOptions lists every quarter-hour slot between from and to (minutes
// since midnight, inclusive).
func TimeOptions(from, to int) []string {
	var opts []string
	for m := from; m <= to; m += SlotMinutes {
		opts = append(opts, Clock{Hour: m / 60, Minute: m % 60}.String())
	}
	return opts
}

// StartTimeOptions returns the selectable start times.
func StartTimeOptions() []string {
	return TimeOptions(EarliestStart, LatestStart)
}

// EndOptionsAfter returns the end-time slots strictly after start. An empty
// or unparseable start yields every end slot.
func EndOptionsAfter(start string) []string {
	from := EarliestEnd
	if c, err := ParseClock(start); err == nil && c.Minutes() >= from {
		from = c.Minutes() + 1
		if rem := from % SlotMinutes; rem != 0 {
			from += SlotMinutes - rem
		}
	}
	return TimeOptions(from, LatestEnd)
}
