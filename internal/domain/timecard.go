package domain

import (
	"fmt"
	"time"
)

// Entry is one day/job/time-range line on a timecard.
type Entry struct {
	ID          string
	Day         Weekday
	JobName     string
	StartTime   string
	EndTime     string
	Description string
}

// Minutes returns the entry's span in minutes. Stored entries are validated,
// so a parse failure counts as zero.
func (e Entry) Minutes() int {
	m, err := DurationMinutes(e.StartTime, e.EndTime)
	if err != nil {
		return 0
	}
	return m
}

// Hours returns the entry's span in hours.
func (e Entry) Hours() float64 {
	return float64(e.Minutes()) / 60.0
}

// Timecard is one employee's record of hours for a single week.
// TotalHours is derived from Entries and is recomputed on every mutation.
type Timecard struct {
	ID          string
	EmployeeID  string
	WeekStart   time.Time
	Entries     []Entry
	TotalHours  float64
	Completed   bool
	CompletedAt *time.Time
	Seq         int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTimecard returns an empty, open timecard for the week starting at
// weekStart. weekStart must already be a Monday at midnight.
func NewTimecard(id, employeeID string, weekStart, now time.Time) *Timecard {
	return &Timecard{
		ID:         id,
		EmployeeID: employeeID,
		WeekStart:  weekStart,
		Entries:    []Entry{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// WeekKey returns the YYYY-MM-DD key of the timecard's week.
func (t *Timecard) WeekKey() string {
	return WeekKey(t.WeekStart)
}

// TotalMinutes sums entry spans in minutes.
func (t *Timecard) TotalMinutes() int {
	total := 0
	for _, e := range t.Entries {
		total += e.Minutes()
	}
	return total
}

// Recompute refreshes TotalHours from Entries.
func (t *Timecard) Recompute() {
	t.TotalHours = float64(t.TotalMinutes()) / 60.0
}

func (t *Timecard) checkOpen() error {
	if t.Completed {
		return fmt.Errorf("timecard %s: %w", t.ID, ErrTimecardLocked)
	}
	return nil
}

// AddEntry validates draft and appends it.
func (t *Timecard) AddEntry(draft EntryDraft, now time.Time) (Entry, error) {
	if err := t.checkOpen(); err != nil {
		return Entry{}, err
	}
	e, err := ValidateEntry(draft)
	if err != nil {
		return Entry{}, err
	}
	t.Entries = append(t.Entries, e)
	t.Recompute()
	t.UpdatedAt = now
	return e, nil
}

// RemoveEntry deletes the entry with the given ID.
func (t *Timecard) RemoveEntry(entryID string, now time.Time) error {
	if err := t.checkOpen(); err != nil {
		return err
	}
	idx := -1
	for i, e := range t.Entries {
		if e.ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("entry %s: %w", entryID, ErrEntryNotFound)
	}
	entries := make([]Entry, 0, len(t.Entries)-1)
	entries = append(entries, t.Entries[:idx]...)
	entries = append(entries, t.Entries[idx+1:]...)
	t.Entries = entries
	t.Recompute()
	t.UpdatedAt = now
	return nil
}

// ReplaceEntries validates every draft and, only if all pass, swaps the
// entry list in one step.
func (t *Timecard) ReplaceEntries(drafts []EntryDraft, now time.Time) error {
	if err := t.checkOpen(); err != nil {
		return err
	}
	entries := make([]Entry, 0, len(drafts))
	for i, d := range drafts {
		e, err := ValidateEntry(d)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i+1, err)
		}
		entries = append(entries, e)
	}
	t.Entries = entries
	t.Recompute()
	t.UpdatedAt = now
	return nil
}

// Complete locks the timecard. Completing twice is a no-op and keeps the
// original CompletedAt.
func (t *Timecard) Complete(now time.Time) {
	if t.Completed {
		return
	}
	t.Completed = true
	t.CompletedAt = &now
	t.UpdatedAt = now
}

// FindEntry returns the entry with the given ID.
func (t *Timecard) FindEntry(entryID string) (Entry, bool) {
	for _, e := range t.Entries {
		if e.ID == entryID {
			return e, true
		}
	}
	return Entry{}, false
}
