package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/timecard/internal/domain"
)

func sampleTimecard(t *testing.T) *domain.Timecard {
	t.Helper()
	week := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	tc := domain.NewTimecard("0123456789abcdef", "emp-1", week, week)
	for _, d := range []domain.EntryDraft{
		{Day: "Tuesday", JobName: "Site B", StartTime: "09:00", EndTime: "10:30", Description: "inspection"},
		{Day: "Monday", JobName: "Site A", StartTime: "08:00", EndTime: "12:00"},
	} {
		_, err := tc.AddEntry(d, week)
		require.NoError(t, err)
	}
	return tc
}

func TestFormatTimecard_GroupsByDayInWeekOrder(t *testing.T) {
	out := FormatTimecard(sampleTimecard(t))

	assert.Contains(t, out, "Week of Mar 4, 2024")
	assert.Contains(t, out, "OPEN")
	assert.Contains(t, out, "Total Hours:")
	assert.Contains(t, out, "5.50")
	monday := strings.Index(out, "Monday")
	tuesday := strings.Index(out, "Tuesday")
	require.True(t, monday >= 0 && tuesday >= 0)
	assert.Less(t, monday, tuesday, "days render Monday first regardless of entry order")
	assert.NotContains(t, out, "Wednesday")
}

func TestFormatTimecard_Empty(t *testing.T) {
	week := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	tc := domain.NewTimecard("tc", "emp", week, week)
	tc.Complete(week)
	out := FormatTimecard(tc)
	assert.Contains(t, out, "No entries yet.")
	assert.Contains(t, out, "COMPLETED")
}

func TestFormatTimecardList(t *testing.T) {
	out := FormatTimecardList([]*domain.Timecard{sampleTimecard(t)})
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "89abcdef")
	assert.Contains(t, out, "2024-03-04")
	assert.Contains(t, out, "5.50")
}

func TestRenderTable_RightAlign(t *testing.T) {
	out := RenderTable([]string{"JOB", "HOURS"}, [][]string{{"A", "4.00"}, {"B", "10.50"}}, 1)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, lipgloss.Width(lines[2]), lipgloss.Width(lines[3]))
	assert.Contains(t, lines[2], "   4.00")
}

func TestRenderHoursBar(t *testing.T) {
	assert.Contains(t, RenderHoursBar(20, 40, 10), "20.00/40h")
	assert.Contains(t, RenderHoursBar(0, 40, 10), "░░░░░░░░░░")
	assert.Contains(t, RenderHoursBar(50, 40, 4), "████")
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Just now", HumanTimestamp(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour), now))
	assert.Equal(t, "Mar 4, 2024 08:00", HumanTimestamp(time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC), now))
}

func TestFormatEmployee_ShowsRegistration(t *testing.T) {
	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	e := &domain.Employee{
		ID:        "e1",
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Role:      domain.RoleManager,
		CreatedAt: now.Add(-2 * time.Hour),
	}

	out := FormatEmployee(e, now)
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, "registered")
	assert.Contains(t, out, "2h ago")
	assert.NotContains(t, out, "phone")
}
