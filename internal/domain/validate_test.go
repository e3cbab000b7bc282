package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() EntryDraft {
	return EntryDraft{
		Day:         "Monday",
		JobName:     "Site A",
		StartTime:   "08:00",
		EndTime:     "12:00",
		Description: "setup",
	}
}

func TestValidateEntry_AssignsID(t *testing.T) {
	a, err := ValidateEntry(validDraft())
	require.NoError(t, err)
	b, err := ValidateEntry(validDraft())
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, Monday, a.Day)
	assert.Equal(t, "Site A", a.JobName)
	assert.Equal(t, 4.0, a.Hours())
}

func TestValidateEntry_MissingFields(t *testing.T) {
	cases := map[string]func(*EntryDraft){
		"day":       func(d *EntryDraft) { d.Day = "" },
		"jobName":   func(d *EntryDraft) { d.JobName = "  " },
		"startTime": func(d *EntryDraft) { d.StartTime = "" },
		"endTime":   func(d *EntryDraft) { d.EndTime = "" },
	}
	for field, mutate := range cases {
		d := validDraft()
		mutate(&d)
		_, err := ValidateEntry(d)
		require.Error(t, err, field)
		assert.ErrorIs(t, err, ErrMissingField, field)
		assert.Contains(t, err.Error(), field)
	}
}

func TestValidateEntry_DescriptionOptional(t *testing.T) {
	d := validDraft()
	d.Description = ""
	_, err := ValidateEntry(d)
	assert.NoError(t, err)
}

func TestValidateEntry_DayCaseInsensitive(t *testing.T) {
	d := validDraft()
	d.Day = "friday"
	e, err := ValidateEntry(d)
	require.NoError(t, err)
	assert.Equal(t, Friday, e.Day)
}

func TestValidateEntry_UnknownDay(t *testing.T) {
	d := validDraft()
	d.Day = "Funday"
	_, err := ValidateEntry(d)
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestValidateEntry_BadFormat(t *testing.T) {
	d := validDraft()
	d.StartTime = "8am"
	_, err := ValidateEntry(d)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestValidateEntry_NonPositiveRange(t *testing.T) {
	for _, pair := range [][2]string{{"12:00", "12:00"}, {"12:00", "08:00"}} {
		d := validDraft()
		d.StartTime, d.EndTime = pair[0], pair[1]
		_, err := ValidateEntry(d)
		assert.ErrorIs(t, err, ErrInvalidTimeRange, "%v", pair)
	}
}

func TestValidateEntry_Windows(t *testing.T) {
	cases := []struct {
		start, end string
		ok         bool
	}{
		{"20:00", "20:15", true},
		{"04:00", "04:15", true},
		{"20:00", "21:00", true},
		{"03:45", "05:00", false},
		{"20:15", "21:00", false},
		{"20:00", "21:15", false},
		{"08:10", "09:00", false},
		{"08:00", "09:05", false},
	}
	for _, tc := range cases {
		d := validDraft()
		d.StartTime, d.EndTime = tc.start, tc.end
		_, err := ValidateEntry(d)
		if tc.ok {
			assert.NoError(t, err, "%s-%s", tc.start, tc.end)
		} else {
			assert.ErrorIs(t, err, ErrInvalidTimeRange, "%s-%s", tc.start, tc.end)
		}
	}
}
