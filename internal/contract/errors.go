package contract

import (
	"errors"
	"net/http"

	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/alexanderramin/timecard/internal/repository"
)

// ErrorCode is the stable, machine-readable error identifier on the wire.
type ErrorCode string

const (
	ErrCodeMissingField      ErrorCode = "MISSING_FIELD"
	ErrCodeInvalidTimeFormat ErrorCode = "INVALID_TIME_FORMAT"
	ErrCodeInvalidTimeRange  ErrorCode = "INVALID_TIME_RANGE"
	ErrCodeInvalidDay        ErrorCode = "INVALID_DAY"
	ErrCodeInvalidWeekStart  ErrorCode = "INVALID_WEEK_START"
	ErrCodeInvalidRequest    ErrorCode = "INVALID_REQUEST"
	ErrCodeEntryNotFound     ErrorCode = "ENTRY_NOT_FOUND"
	ErrCodeTimecardNotFound  ErrorCode = "TIMECARD_NOT_FOUND"
	ErrCodeEmployeeNotFound  ErrorCode = "EMPLOYEE_NOT_FOUND"
	ErrCodeTimecardLocked    ErrorCode = "TIMECARD_LOCKED"
	ErrCodeDuplicateWeek     ErrorCode = "DUPLICATE_WEEK"
	ErrCodeDuplicateEmail    ErrorCode = "DUPLICATE_EMAIL"
	ErrCodeForbidden         ErrorCode = "FORBIDDEN"
	ErrCodeUnauthenticated   ErrorCode = "UNAUTHENTICATED"
	ErrCodeInternal          ErrorCode = "INTERNAL"
)

// ErrUnauthenticated marks a request without a usable caller identity.
var ErrUnauthenticated = errors.New("caller identity required")

// ErrInvalidRequest marks a body or query that could not be decoded.
var ErrInvalidRequest = errors.New("invalid request")

var errorTable = []struct {
	err    error
	code   ErrorCode
	status int
}{
	{domain.ErrMissingField, ErrCodeMissingField, http.StatusBadRequest},
	{domain.ErrInvalidTimeFormat, ErrCodeInvalidTimeFormat, http.StatusBadRequest},
	{domain.ErrInvalidTimeRange, ErrCodeInvalidTimeRange, http.StatusBadRequest},
	{domain.ErrInvalidDay, ErrCodeInvalidDay, http.StatusBadRequest},
	{domain.ErrInvalidWeekStart, ErrCodeInvalidWeekStart, http.StatusBadRequest},
	{ErrInvalidRequest, ErrCodeInvalidRequest, http.StatusBadRequest},
	{domain.ErrEntryNotFound, ErrCodeEntryNotFound, http.StatusNotFound},
	{domain.ErrTimecardNotFound, ErrCodeTimecardNotFound, http.StatusNotFound},
	{domain.ErrEmployeeNotFound, ErrCodeEmployeeNotFound, http.StatusNotFound},
	{domain.ErrTimecardLocked, ErrCodeTimecardLocked, http.StatusConflict},
	{domain.ErrDuplicateWeek, ErrCodeDuplicateWeek, http.StatusConflict},
	{repository.ErrDuplicateEmail, ErrCodeDuplicateEmail, http.StatusConflict},
	{domain.ErrForbidden, ErrCodeForbidden, http.StatusForbidden},
	{ErrUnauthenticated, ErrCodeUnauthenticated, http.StatusUnauthorized},
}

// CodeFor maps an error to its wire code and HTTP status. Unknown errors
// are INTERNAL / 500.
func CodeFor(err error) (ErrorCode, int) {
	for _, row := range errorTable {
		if errors.Is(err, row.err) {
			return row.code, row.status
		}
	}
	return ErrCodeInternal, http.StatusInternalServerError
}

// ErrorBody is the payload of every error response.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// NewErrorResponse builds the response for err. Internal errors get a
// generic message so storage details stay out of responses.
func NewErrorResponse(err error) (ErrorResponse, int) {
	code, status := CodeFor(err)
	msg := err.Error()
	if code == ErrCodeInternal {
		msg = "internal error"
	}
	return ErrorResponse{Error: ErrorBody{Code: code, Message: msg}}, status
}
