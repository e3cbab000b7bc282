package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/google/uuid"
)

var testEmailCounter atomic.Int64

// Employee options
type EmployeeOption func(*domain.Employee)

func AsManager() EmployeeOption {
	return func(e *domain.Employee) {
		e.Role = domain.RoleManager
	}
}

func WithEmail(email string) EmployeeOption {
	return func(e *domain.Employee) {
		e.Email = email
	}
}

func NewTestEmployee(name string, opts ...EmployeeOption) *domain.Employee {
	e := &domain.Employee{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     fmt.Sprintf("user%d@example.com", testEmailCounter.Add(1)),
		Role:      domain.RoleEmployee,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Timecard options
type TimecardOption func(*domain.Timecard)

// WithEntries appends already-validated entries built from drafts. It
// panics on an invalid draft, which is a bug in the test.
func WithEntries(drafts ...domain.EntryDraft) TimecardOption {
	return func(tc *domain.Timecard) {
		for _, d := range drafts {
			e, err := domain.ValidateEntry(d)
			if err != nil {
				panic(fmt.Sprintf("invalid test entry %+v: %v", d, err))
			}
			tc.Entries = append(tc.Entries, e)
		}
		tc.Recompute()
	}
}

func Completed() TimecardOption {
	return func(tc *domain.Timecard) {
		tc.Complete(tc.UpdatedAt)
	}
}

// Week returns the Monday of the week containing the given date, in UTC.
func Week(year int, month time.Month, day int) time.Time {
	return domain.CurrentWeekMonday(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

func NewTestTimecard(employeeID string, weekStart time.Time, opts ...TimecardOption) *domain.Timecard {
	now := time.Now().UTC().Truncate(time.Second)
	tc := domain.NewTimecard(uuid.New().String(), employeeID, weekStart, now)
	for _, opt := range opts {
		opt(tc)
	}
	return tc
}

// Entry returns a draft on the given day and times with a default job.
func Entry(day, start, end string) domain.EntryDraft {
	return domain.EntryDraft{Day: day, JobName: "Site A", StartTime: start, EndTime: end, Description: "work"}
}
