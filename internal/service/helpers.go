package service

import (
	"errors"

	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/alexanderramin/timecard/internal/repository"
)

var clientErrors = []error{
	domain.ErrMissingField,
	domain.ErrInvalidTimeFormat,
	domain.ErrInvalidTimeRange,
	domain.ErrInvalidDay,
	domain.ErrInvalidWeekStart,
	domain.ErrEntryNotFound,
	domain.ErrTimecardNotFound,
	domain.ErrTimecardLocked,
	domain.ErrDuplicateWeek,
	domain.ErrEmployeeNotFound,
	domain.ErrForbidden,
	repository.ErrDuplicateEmail,
}

// IsClientError reports whether err is one of the known domain rejections
// rather than an infrastructure failure.
func IsClientError(err error) bool {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
