package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timecard/internal/domain"
)

// resolveEmployee looks an employee up by ID or, when the input contains
// an @, by email.
func resolveEmployee(ctx context.Context, app *App, input string) (*domain.Employee, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("employee is required")
	}
	if strings.Contains(input, "@") {
		return app.Employees.GetByEmail(ctx, strings.ToLower(input))
	}
	return app.Employees.Get(ctx, input)
}

// resolveCaller resolves the --as flag (or TIMECARD_EMPLOYEE) into the
// identity commands act on behalf of.
func resolveCaller(ctx context.Context, app *App) (domain.Caller, error) {
	if strings.TrimSpace(app.Config.Employee) == "" {
		return domain.Caller{}, fmt.Errorf("no employee selected: pass --as or set TIMECARD_EMPLOYEE")
	}
	e, err := resolveEmployee(ctx, app, app.Config.Employee)
	if err != nil {
		return domain.Caller{}, err
	}
	return app.Employees.Caller(ctx, e.ID)
}

// resolveOwner picks whose timecards a command reads. An empty flag means
// the caller's own; naming someone else requires the manager role.
func resolveOwner(ctx context.Context, app *App, caller domain.Caller, flag string) (*domain.Employee, error) {
	if flag == "" {
		return app.Employees.Get(ctx, caller.EmployeeID)
	}
	e, err := resolveEmployee(ctx, app, flag)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(e.ID) {
		return nil, fmt.Errorf("%w: only managers can read another employee's timecards", domain.ErrForbidden)
	}
	return e, nil
}

// resolveTimecard finds one of the employee's timecards. The input can be:
//   - empty or "current" for this week's timecard
//   - a YYYY-MM-DD week key (a Monday)
//   - a full timecard ID or an unambiguous ID prefix
func resolveTimecard(ctx context.Context, app *App, employeeID, input string) (*domain.Timecard, error) {
	input = strings.TrimSpace(input)
	cards, err := app.Timecards.List(ctx, employeeID, 0)
	if err != nil {
		return nil, err
	}

	var week time.Time
	switch {
	case input == "" || strings.EqualFold(input, "current"):
		week = app.Timecards.CurrentWeek()
	case len(input) == len(domain.WeekKeyLayout) && strings.Count(input, "-") == 2:
		week, err = domain.ParseWeekKey(input, app.Timecards.CurrentWeek().Location())
		if err != nil {
			return nil, err
		}
	}
	if !week.IsZero() {
		for _, tc := range cards {
			if domain.SameWeek(tc.WeekStart, week) {
				return tc, nil
			}
		}
		return nil, fmt.Errorf("%w: no timecard for the week of %s", domain.ErrTimecardNotFound, domain.WeekKey(week))
	}

	var matches []*domain.Timecard
	for _, tc := range cards {
		if tc.ID == input {
			return tc, nil
		}
		if strings.HasPrefix(tc.ID, input) {
			matches = append(matches, tc)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %q", domain.ErrTimecardNotFound, input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("timecard ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveEntry expands an entry ID prefix against the timecard's entries.
func resolveEntry(tc *domain.Timecard, input string) (domain.Entry, error) {
	if e, ok := tc.FindEntry(input); ok {
		return e, nil
	}
	var matches []domain.Entry
	for _, e := range tc.Entries {
		if strings.HasPrefix(e.ID, input) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return domain.Entry{}, fmt.Errorf("%w: %q", domain.ErrEntryNotFound, input)
	case 1:
		return matches[0], nil
	default:
		return domain.Entry{}, fmt.Errorf("entry ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// isNotFound reports whether err means the timecard does not exist.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrTimecardNotFound)
}
