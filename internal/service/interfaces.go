package service

import (
	"context"
	"time"

	"github.com/alexanderramin/timecard/internal/domain"
)

// TimecardService scopes every operation to one employee. A timecard owned
// by someone else is reported as domain.ErrTimecardNotFound.
type TimecardService interface {
	// Create opens a timecard for the week starting on weekStart, which
	// must be a Monday in the service location.
	Create(ctx context.Context, employeeID string, weekStart time.Time) (*domain.Timecard, error)
	CreateCurrentWeek(ctx context.Context, employeeID string) (*domain.Timecard, error)
	// List returns the employee's timecards, most recently created first.
	// limit <= 0 returns all of them.
	List(ctx context.Context, employeeID string, limit int) ([]*domain.Timecard, error)
	Get(ctx context.Context, employeeID, id string) (*domain.Timecard, error)
	AddEntry(ctx context.Context, employeeID, id string, draft domain.EntryDraft) (*domain.Timecard, domain.Entry, error)
	RemoveEntry(ctx context.Context, employeeID, id, entryID string) (*domain.Timecard, error)
	ReplaceEntries(ctx context.Context, employeeID, id string, drafts []domain.EntryDraft) (*domain.Timecard, error)
	Complete(ctx context.Context, employeeID, id string) (*domain.Timecard, error)
	// Delete removes the timecard. A completed timecard is only removed
	// when allowCompleted is set; otherwise domain.ErrTimecardLocked.
	Delete(ctx context.Context, employeeID, id string, allowCompleted bool) error
	// HasCurrentWeek reports whether the employee already has a timecard
	// for the current week, along with that week's Monday.
	HasCurrentWeek(ctx context.Context, employeeID string) (bool, time.Time, error)
	// CurrentWeek returns this week's Monday in the service location.
	CurrentWeek() time.Time
}

// EmployeeSummary pairs an employee with their most recent timecards.
type EmployeeSummary struct {
	Employee  *domain.Employee
	Timecards []*domain.Timecard
}

type EmployeeService interface {
	Create(ctx context.Context, e *domain.Employee) error
	Get(ctx context.Context, id string) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	// ListWithRecent returns every employee with up to limit of their most
	// recent timecards; limit <= 0 includes all of them.
	ListWithRecent(ctx context.Context, limit int) ([]EmployeeSummary, error)
	// Caller resolves an employee ID into an authenticated identity.
	Caller(ctx context.Context, employeeID string) (domain.Caller, error)
}
