package domain

import "errors"

// Validation errors. They are returned before any state changes.
var (
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvalidTimeRange  = errors.New("invalid time range")
	ErrInvalidDay        = errors.New("invalid day")
	ErrInvalidWeekStart  = errors.New("week start must be a Monday")
)

// Structural errors, detected at the aggregate or repository boundary.
var (
	ErrEntryNotFound    = errors.New("entry not found")
	ErrTimecardNotFound = errors.New("timecard not found")
	ErrTimecardLocked   = errors.New("timecard is completed")
	ErrDuplicateWeek    = errors.New("a timecard for this week already exists")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrForbidden        = errors.New("not permitted")
)
