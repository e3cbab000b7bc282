package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentWeekMonday_Known(t *testing.T) {
	cases := []struct {
		today time.Time
		want  string
	}{
		{time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), "2024-03-04"},   // Monday
		{time.Date(2024, 3, 6, 23, 59, 0, 0, time.UTC), "2024-03-04"}, // Wednesday
		{time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), "2024-03-04"}, // Sunday
		{time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), "2024-03-11"},  // next Monday
		{time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC), "2024-12-30"},   // across year end
	}
	for _, tc := range cases {
		got := CurrentWeekMonday(tc.today)
		assert.Equal(t, tc.want, WeekKey(got), "today=%s", tc.today)
		assert.Equal(t, 0, got.Hour())
		assert.Equal(t, 0, got.Minute())
	}
}

func TestCurrentWeekMonday_Property(t *testing.T) {
	start := time.Date(2023, 1, 1, 15, 30, 0, 0, time.UTC)
	for i := 0; i < 3*366; i++ {
		d := start.AddDate(0, 0, i)
		m := CurrentWeekMonday(d)
		require.Equal(t, time.Monday, m.Weekday(), "date=%s", d)

		days := int(StartOfDay(d).Sub(m).Hours() / 24)
		assert.GreaterOrEqual(t, days, 0)
		assert.LessOrEqual(t, days, 6)

		assert.Equal(t, m, mondayFromZeroIndexed(d), "indexing conventions disagree for %s", d)
	}
}

func TestCurrentWeekMonday_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC-7", -7*3600)
	today := time.Date(2024, 3, 10, 22, 0, 0, 0, loc)
	m := CurrentWeekMonday(today)
	assert.Equal(t, loc, m.Location())
	assert.Equal(t, "2024-03-04", WeekKey(m))
}

func TestSameWeek(t *testing.T) {
	mon := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	sun := time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC)
	nextMon := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	assert.True(t, SameWeek(mon, sun))
	assert.False(t, SameWeek(sun, nextMon))
}

func TestParseWeekKey(t *testing.T) {
	got, err := ParseWeekKey("2024-03-04", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseWeekKey("2024-03-05", time.UTC)
	assert.ErrorIs(t, err, ErrInvalidWeekStart)

	_, err = ParseWeekKey("03/04/2024", time.UTC)
	assert.ErrorIs(t, err, ErrInvalidWeekStart)
}
