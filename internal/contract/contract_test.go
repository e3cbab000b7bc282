package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/alexanderramin/timecard/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeFor(t *testing.T) {
	cases := []struct {
		err    error
		code   ErrorCode
		status int
	}{
		{fmt.Errorf("entry 2: %w", domain.ErrMissingField), ErrCodeMissingField, http.StatusBadRequest},
		{domain.ErrInvalidTimeFormat, ErrCodeInvalidTimeFormat, http.StatusBadRequest},
		{domain.ErrInvalidTimeRange, ErrCodeInvalidTimeRange, http.StatusBadRequest},
		{domain.ErrInvalidWeekStart, ErrCodeInvalidWeekStart, http.StatusBadRequest},
		{fmt.Errorf("timecard x: %w", domain.ErrTimecardNotFound), ErrCodeTimecardNotFound, http.StatusNotFound},
		{domain.ErrEntryNotFound, ErrCodeEntryNotFound, http.StatusNotFound},
		{domain.ErrTimecardLocked, ErrCodeTimecardLocked, http.StatusConflict},
		{domain.ErrDuplicateWeek, ErrCodeDuplicateWeek, http.StatusConflict},
		{repository.ErrDuplicateEmail, ErrCodeDuplicateEmail, http.StatusConflict},
		{domain.ErrForbidden, ErrCodeForbidden, http.StatusForbidden},
		{ErrUnauthenticated, ErrCodeUnauthenticated, http.StatusUnauthorized},
		{errors.New("disk I/O error"), ErrCodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			code, status := CodeFor(tc.err)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.status, status)
		})
	}
}

func TestNewErrorResponse_HidesInternalDetail(t *testing.T) {
	resp, status := NewErrorResponse(errors.New("sqlite: no such table: timecards"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal error", resp.Error.Message)

	resp, _ = NewErrorResponse(fmt.Errorf("timecard t1: %w", domain.ErrTimecardLocked))
	assert.Contains(t, resp.Error.Message, "timecard t1")
}

func TestFromTimecard_WireShape(t *testing.T) {
	week := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	tc := domain.NewTimecard("tc-1", "emp-1", week, week)
	_, err := tc.AddEntry(domain.EntryDraft{Day: "Monday", JobName: "Site A", StartTime: "09:00", EndTime: "17:30"}, week)
	require.NoError(t, err)

	data, err := json.Marshal(FromTimecard(tc))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "2024-03-04", raw["weekStartDate"])
	assert.Equal(t, 8.5, raw["totalHours"])
	assert.Equal(t, false, raw["completed"])
	assert.NotContains(t, raw, "completedAt")

	entries := raw["entries"].([]any)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]any)
	assert.Equal(t, "Site A", entry["jobName"])
	assert.Equal(t, 8.5, entry["hours"])
}

func TestUpdateTimecardRequest_IgnoresClientFields(t *testing.T) {
	body := `{"entries":[{"id":7,"day":"Friday","jobName":"J","startTime":"08:00","endTime":"09:00"}],"totalHours":99}`
	var req UpdateTimecardRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	drafts := req.Drafts()
	require.Len(t, drafts, 1)
	assert.Equal(t, "Friday", drafts[0].Day)
	require.NotNil(t, req.TotalHours)
}
