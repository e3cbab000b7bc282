package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// EntryDraft is an entry as submitted by a caller, before validation.
type EntryDraft struct {
	Day         string
	JobName     string
	StartTime   string
	EndTime     string
	Description string
}

// ValidateEntry checks a draft and returns the finalized entry with a fresh
// ID. It never touches a timecard.
func ValidateEntry(d EntryDraft) (Entry, error) {
	if err := validateDraft(d); err != nil {
		return Entry{}, err
	}
	day, _ := ParseWeekday(d.Day)
	return Entry{
		ID:          uuid.New().String(),
		Day:         day,
		JobName:     strings.TrimSpace(d.JobName),
		StartTime:   strings.TrimSpace(d.StartTime),
		EndTime:     strings.TrimSpace(d.EndTime),
		Description: strings.TrimSpace(d.Description),
	}, nil
}

func validateDraft(d EntryDraft) error {
	var missing []string
	if strings.TrimSpace(d.Day) == "" {
		missing = append(missing, "day")
	}
	if strings.TrimSpace(d.JobName) == "" {
		missing = append(missing, "jobName")
	}
	if strings.TrimSpace(d.StartTime) == "" {
		missing = append(missing, "startTime")
	}
	if strings.TrimSpace(d.EndTime) == "" {
		missing = append(missing, "endTime")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	if _, ok := ParseWeekday(d.Day); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidDay, d.Day)
	}

	start, err := ParseClock(strings.TrimSpace(d.StartTime))
	if err != nil {
		return fmt.Errorf("start time: %w", err)
	}
	end, err := ParseClock(strings.TrimSpace(d.EndTime))
	if err != nil {
		return fmt.Errorf("end time: %w", err)
	}

	if end.Minutes()-start.Minutes() <= 0 {
		return fmt.Errorf("%w: end %s must be after start %s", ErrInvalidTimeRange, end, start)
	}
	if start.Minutes()%SlotMinutes != 0 || end.Minutes()%SlotMinutes != 0 {
		return fmt.Errorf("%w: times must fall on %d-minute increments", ErrInvalidTimeRange, SlotMinutes)
	}
	if start.Minutes() < EarliestStart || start.Minutes() > LatestStart {
		return fmt.Errorf("%w: start %s outside %s-%s", ErrInvalidTimeRange, start,
			minutesClock(EarliestStart), minutesClock(LatestStart))
	}
	if end.Minutes() < EarliestEnd || end.Minutes() > LatestEnd {
		return fmt.Errorf("%w: end %s outside %s-%s", ErrInvalidTimeRange, end,
			minutesClock(EarliestEnd), minutesClock(LatestEnd))
	}
	return nil
}

func minutesClock(m int) Clock {
	return Clock{Hour: m / 60, Minute: m % 60}
}
