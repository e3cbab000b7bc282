package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/alexanderramin/timecard/internal/repository"
	"github.com/google/uuid"
)

// Options configures time handling for the services.
type Options struct {
	// Location decides which calendar day "today" is. Defaults to time.Local.
	Location *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type timecardService struct {
	store    repository.Store
	locks    *keyLock
	loc      *time.Location
	now      func() time.Time
	observer UseCaseObserver
}

func NewTimecardService(store repository.Store, opts Options, observers ...UseCaseObserver) TimecardService {
	opts = opts.withDefaults()
	return &timecardService{
		store:    store,
		locks:    newKeyLock(),
		loc:      opts.Location,
		now:      opts.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *timecardService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *timecardService) CurrentWeek() time.Time {
	return domain.CurrentWeekMonday(s.now().In(s.loc))
}

func (s *timecardService) Create(ctx context.Context, employeeID string, weekStart time.Time) (tc *domain.Timecard, err error) {
	startedAt := time.Now()
	fields := map[string]any{"employee_id": employeeID}
	defer func() { s.observe(ctx, "create-timecard", startedAt, fields, err) }()

	y, m, d := weekStart.Date()
	weekStart = time.Date(y, m, d, 0, 0, 0, 0, s.loc)
	if weekStart.Weekday() != time.Monday {
		return nil, fmt.Errorf("%w: %s is a %s", domain.ErrInvalidWeekStart, domain.WeekKey(weekStart), weekStart.Weekday())
	}
	week := domain.WeekKey(weekStart)
	fields["week"] = week

	unlock := s.locks.Lock(weekKey(employeeID, week))
	defer unlock()

	now := s.now().UTC()
	tc = domain.NewTimecard(uuid.New().String(), employeeID, weekStart, now)
	err = s.store.WithinTx(ctx, func(ctx context.Context, r repository.Repos) error {
		if _, err := r.Employees.GetByID(ctx, employeeID); err != nil {
			return employeeErr(err, employeeID)
		}
		_, err := r.Timecards.GetByEmployeeWeek(ctx, employeeID, weekStart)
		if err == nil {
			return fmt.Errorf("week %s: %w", week, domain.ErrDuplicateWeek)
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return r.Timecards.Create(ctx, tc)
	})
	if err != nil {
		return nil, err
	}
	fields["timecard_id"] = tc.ID
	return tc, nil
}

func (s *timecardService) CreateCurrentWeek(ctx context.Context, employeeID string) (*domain.Timecard, error) {
	return s.Create(ctx, employeeID, s.CurrentWeek())
}

func (s *timecardService) List(ctx context.Context, employeeID string, limit int) ([]*domain.Timecard, error) {
	var cards []*domain.Timecard
	err := s.store.Read(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		cards, err = r.Timecards.ListByEmployee(ctx, employeeID, limit)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listing timecards: %w", err)
	}
	for _, tc := range cards {
		s.localize(tc)
	}
	if cards == nil {
		cards = []*domain.Timecard{}
	}
	return cards, nil
}

func (s *timecardService) Get(ctx context.Context, employeeID, id string) (*domain.Timecard, error) {
	var tc *domain.Timecard
	err := s.store.Read(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		tc, err = s.load(ctx, r, employeeID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tc, nil
}

func (s *timecardService) AddEntry(ctx context.Context, employeeID, id string, draft domain.EntryDraft) (tc *domain.Timecard, entry domain.Entry, err error) {
	tc, err = s.mutate(ctx, "add-entry", employeeID, id, func(tc *domain.Timecard, now time.Time) error {
		var err error
		entry, err = tc.AddEntry(draft, now)
		return err
	})
	return tc, entry, err
}

func (s *timecardService) RemoveEntry(ctx context.Context, employeeID, id, entryID string) (*domain.Timecard, error) {
	return s.mutate(ctx, "remove-entry", employeeID, id, func(tc *domain.Timecard, now time.Time) error {
		return tc.RemoveEntry(entryID, now)
	})
}

func (s *timecardService) ReplaceEntries(ctx context.Context, employeeID, id string, drafts []domain.EntryDraft) (*domain.Timecard, error) {
	return s.mutate(ctx, "replace-entries", employeeID, id, func(tc *domain.Timecard, now time.Time) error {
		return tc.ReplaceEntries(drafts, now)
	})
}

func (s *timecardService) Complete(ctx context.Context, employeeID, id string) (*domain.Timecard, error) {
	return s.mutate(ctx, "complete-timecard", employeeID, id, func(tc *domain.Timecard, now time.Time) error {
		tc.Complete(now)
		return nil
	})
}

func (s *timecardService) Delete(ctx context.Context, employeeID, id string, allowCompleted bool) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"employee_id": employeeID, "timecard_id": id}
	defer func() { s.observe(ctx, "delete-timecard", startedAt, fields, err) }()

	unlock := s.locks.Lock(timecardKey(id))
	defer unlock()

	return s.store.WithinTx(ctx, func(ctx context.Context, r repository.Repos) error {
		tc, err := s.load(ctx, r, employeeID, id)
		if err != nil {
			return err
		}
		if tc.Completed && !allowCompleted {
			return fmt.Errorf("timecard %s: %w", id, domain.ErrTimecardLocked)
		}
		return notFoundErr(r.Timecards.Delete(ctx, id), id)
	})
}

func (s *timecardService) HasCurrentWeek(ctx context.Context, employeeID string) (bool, time.Time, error) {
	week := s.CurrentWeek()
	exists := false
	err := s.store.Read(ctx, func(ctx context.Context, r repository.Repos) error {
		_, err := r.Timecards.GetByEmployeeWeek(ctx, employeeID, week)
		switch {
		case err == nil:
			exists = true
			return nil
		case errors.Is(err, repository.ErrNotFound):
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return false, week, fmt.Errorf("checking current week: %w", err)
	}
	return exists, week, nil
}

// mutate runs one read-modify-write of a timecard under its lock and inside
// a store transaction. Nothing is written if fn fails.
func (s *timecardService) mutate(ctx context.Context, name, employeeID, id string, fn func(tc *domain.Timecard, now time.Time) error) (tc *domain.Timecard, err error) {
	startedAt := time.Now()
	fields := map[string]any{"employee_id": employeeID, "timecard_id": id}
	defer func() { s.observe(ctx, name, startedAt, fields, err) }()

	unlock := s.locks.Lock(timecardKey(id))
	defer unlock()

	err = s.store.WithinTx(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		tc, err = s.load(ctx, r, employeeID, id)
		if err != nil {
			return err
		}
		if err := fn(tc, s.now().UTC()); err != nil {
			return err
		}
		return notFoundErr(r.Timecards.Update(ctx, tc), id)
	})
	if err != nil {
		return nil, err
	}
	fields["total_hours"] = tc.TotalHours
	return tc, nil
}

// load fetches a timecard and checks ownership.
func (s *timecardService) load(ctx context.Context, r repository.Repos, employeeID, id string) (*domain.Timecard, error) {
	tc, err := r.Timecards.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundErr(err, id)
	}
	if tc.EmployeeID != employeeID {
		return nil, fmt.Errorf("timecard %s: %w", id, domain.ErrTimecardNotFound)
	}
	s.localize(tc)
	return tc, nil
}

// localize moves the stored week date into the service location.
func (s *timecardService) localize(tc *domain.Timecard) {
	y, m, d := tc.WeekStart.Date()
	tc.WeekStart = time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}

func notFoundErr(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("timecard %s: %w", id, domain.ErrTimecardNotFound)
	}
	return err
}

func employeeErr(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("employee %s: %w", id, domain.ErrEmployeeNotFound)
	}
	return err
}
