package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/timecard/internal/domain"
)

type TimecardRepo interface {
	// Create stores a new timecard and assigns its Seq. It returns
	// domain.ErrDuplicateWeek if the employee already has that week.
	Create(ctx context.Context, tc *domain.Timecard) error
	GetByID(ctx context.Context, id string) (*domain.Timecard, error)
	GetByEmployeeWeek(ctx context.Context, employeeID string, weekStart time.Time) (*domain.Timecard, error)
	// ListByEmployee returns most recently created first. limit <= 0 means all.
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]*domain.Timecard, error)
	// Update rewrites entries and completion state.
	Update(ctx context.Context, tc *domain.Timecard) error
	Delete(ctx context.Context, id string) error
}

type EmployeeRepo interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
}

// Repos is a set of repositories bound to one connection or transaction.
type Repos struct {
	Timecards TimecardRepo
	Employees EmployeeRepo
}

// Store hands out scoped repositories. WithinTx commits only if fn returns
// nil; Read gives a consistent view without write intent.
type Store interface {
	Read(ctx context.Context, fn func(ctx context.Context, r Repos) error) error
	WithinTx(ctx context.Context, fn func(ctx context.Context, r Repos) error) error
	Close() error
}
