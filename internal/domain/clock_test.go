package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock_Valid(t *testing.T) {
	cases := map[string]Clock{
		"00:00": {0, 0},
		"04:15": {4, 15},
		"23:59": {23, 59},
		"12:30": {12, 30},
	}
	for in, want := range cases {
		got, err := ParseClock(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got)
		assert.Equal(t, in, got.String())
	}
}

func TestParseClock_Invalid(t *testing.T) {
	cases := []string{"", "9:00", "09:0", "24:00", "12:60", "ab:cd", "12-30", "+1:00", "12:3x", " 09:00"}
	for _, in := range cases {
		_, err := ParseClock(in)
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	}
}

func TestDurationHours_Exact(t *testing.T) {
	h, err := DurationHours("09:00", "17:30")
	require.NoError(t, err)
	assert.Equal(t, 8.5, h)

	h, err = DurationHours("20:00", "20:15")
	require.NoError(t, err)
	assert.Equal(t, 0.25, h)
}

func TestDurationHours_AllQuarterHourPairs(t *testing.T) {
	opts := TimeOptions(0, 23*60+45)
	for i, s := range opts {
		for _, e := range opts[i+1:] {
			sc, _ := ParseClock(s)
			ec, _ := ParseClock(e)
			h, err := DurationHours(s, e)
			require.NoError(t, err)
			assert.Equal(t, float64(ec.Minutes()-sc.Minutes())/60, h, "%s-%s", s, e)
		}
	}
}

func TestDurationHours_NegativeNotClamped(t *testing.T) {
	h, err := DurationHours("17:00", "09:00")
	require.NoError(t, err)
	assert.Equal(t, -8.0, h)
}

func TestDurationHours_BadInput(t *testing.T) {
	_, err := DurationHours("9am", "17:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	_, err = DurationHours("09:00", "25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestStartTimeOptions_Window(t *testing.T) {
	opts := StartTimeOptions()
	require.NotEmpty(t, opts)
	assert.Equal(t, "04:00", opts[0])
	assert.Equal(t, "20:00", opts[len(opts)-1])
	assert.Len(t, opts, 16*4+1)
}

func TestEndOptionsAfter(t *testing.T) {
	opts := EndOptionsAfter("20:00")
	assert.Equal(t, []string{"20:15", "20:30", "20:45", "21:00"}, opts)

	opts = EndOptionsAfter("08:07")
	require.NotEmpty(t, opts)
	assert.Equal(t, "08:15", opts[0])

	all := EndOptionsAfter("")
	assert.Equal(t, "04:00", all[0])
	assert.Equal(t, "21:00", all[len(all)-1])
}
