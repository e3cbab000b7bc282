package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/alexanderramin/timecard/internal/repository"
	"github.com/google/uuid"
)

type employeeService struct {
	store    repository.Store
	now      func() time.Time
	observer UseCaseObserver
}

func NewEmployeeService(store repository.Store, opts Options, observers ...UseCaseObserver) EmployeeService {
	opts = opts.withDefaults()
	return &employeeService{
		store:    store,
		now:      opts.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *employeeService) Create(ctx context.Context, e *domain.Employee) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"email": e.Email}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "create-employee",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Role == "" {
		e.Role = domain.RoleEmployee
	}
	e.Name = strings.TrimSpace(e.Name)
	e.Email = strings.ToLower(strings.TrimSpace(e.Email))
	if err := e.Validate(); err != nil {
		return err
	}
	e.CreatedAt = s.now().UTC()
	fields["employee_id"] = e.ID

	return s.store.WithinTx(ctx, func(ctx context.Context, r repository.Repos) error {
		return r.Employees.Create(ctx, e)
	})
}

func (s *employeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	var e *domain.Employee
	err := s.store.Read(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		e, err = r.Employees.GetByID(ctx, id)
		return employeeErr(err, id)
	})
	return e, err
}

func (s *employeeService) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	var e *domain.Employee
	err := s.store.Read(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		e, err = r.Employees.GetByEmail(ctx, email)
		return employeeErr(err, email)
	})
	return e, err
}

func (s *employeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	var employees []*domain.Employee
	err := s.store.Read(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		employees, err = r.Employees.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	return employees, nil
}

func (s *employeeService) ListWithRecent(ctx context.Context, limit int) ([]EmployeeSummary, error) {
	var summaries []EmployeeSummary
	err := s.store.Read(ctx, func(ctx context.Context, r repository.Repos) error {
		employees, err := r.Employees.List(ctx)
		if err != nil {
			return err
		}
		summaries = make([]EmployeeSummary, 0, len(employees))
		for _, e := range employees {
			cards, err := r.Timecards.ListByEmployee(ctx, e.ID, limit)
			if err != nil {
				return fmt.Errorf("employee %s: %w", e.ID, err)
			}
			if cards == nil {
				cards = []*domain.Timecard{}
			}
			summaries = append(summaries, EmployeeSummary{Employee: e, Timecards: cards})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing employee summaries: %w", err)
	}
	return summaries, nil
}

func (s *employeeService) Caller(ctx context.Context, employeeID string) (domain.Caller, error) {
	if employeeID == "" {
		return domain.Caller{}, fmt.Errorf("%w: employee id", domain.ErrMissingField)
	}
	e, err := s.Get(ctx, employeeID)
	if err != nil {
		return domain.Caller{}, err
	}
	return domain.Caller{EmployeeID: e.ID, Role: e.Role}, nil
}
