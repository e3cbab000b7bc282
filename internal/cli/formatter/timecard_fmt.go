package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timecard/internal/domain"
)

// WeeklyTargetHours is the reference line for the hours bar.
const WeeklyTargetHours = 40

// FormatTimecardList renders one row per timecard in the given order.
func FormatTimecardList(cards []*domain.Timecard) string {
	headers := []string{"ID", "WEEK", "ENTRIES", "HOURS", "STATUS"}
	rows := make([][]string, 0, len(cards))
	for _, tc := range cards {
		rows = append(rows, []string{
			TruncID(tc.ID),
			tc.WeekKey(),
			fmt.Sprintf("%d", len(tc.Entries)),
			FormatHours(tc.TotalHours),
			StatusPill(tc.Completed),
		})
	}
	return RenderBox("Timecards", RenderTable(headers, rows, 2, 3))
}

// FormatTimecard renders a timecard with its entries and an hours bar.
func FormatTimecard(tc *domain.Timecard) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(WeekLabel(tc.WeekStart)), StatusPill(tc.Completed)))
	b.WriteString(Dim("id "+tc.ID) + "\n")
	if tc.CompletedAt != nil {
		b.WriteString(Dim("completed "+tc.CompletedAt.Format(time.RFC3339)) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(FormatEntries(tc))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total Hours: %s\n", Bold(FormatHours(tc.TotalHours))))
	b.WriteString(RenderHoursBar(tc.TotalHours, WeeklyTargetHours, 24))
	return RenderBox("Timecard", b.String())
}

// FormatEntries renders the entries grouped by day in Monday-first order,
// skipping days with nothing logged.
func FormatEntries(tc *domain.Timecard) string {
	if len(tc.Entries) == 0 {
		return Dim("No entries yet.") + "\n"
	}
	var blocks []string
	for _, day := range domain.DaysOfWeek {
		if block := formatDay(tc.Entries, day); block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, "\n")
}

func formatDay(entries []domain.Entry, day domain.Weekday) string {
	var rows [][]string
	minutes := 0
	for _, e := range entries {
		if e.Day != day {
			continue
		}
		minutes += e.Minutes()
		rows = append(rows, []string{
			TruncID(e.ID),
			e.JobName,
			e.StartTime + "–" + e.EndTime,
			FormatHours(e.Hours()),
			Dim(e.Description),
		})
	}
	if len(rows) == 0 {
		return ""
	}
	title := fmt.Sprintf("%s %s", StyleHeader.Render(string(day)), Dim("("+FormatHours(float64(minutes)/60)+"h)"))
	return title + "\n" + RenderTable([]string{"ID", "JOB", "TIME", "HOURS", "DESCRIPTION"}, rows, 3)
}

// FormatEmployeeList renders the employee directory.
func FormatEmployeeList(employees []*domain.Employee) string {
	headers := []string{"ID", "NAME", "EMAIL", "ROLE"}
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{TruncID(e.ID), e.Name, e.Email, RoleBadge(string(e.Role))})
	}
	return RenderBox("Employees", RenderTable(headers, rows))
}

// FormatEmployee renders one employee's details, with the registration time
// relative to now.
func FormatEmployee(e *domain.Employee, now time.Time) string {
	lines := []string{
		Bold(e.Name) + "  " + RoleBadge(string(e.Role)),
		Dim("id ") + e.ID,
		Dim("email ") + e.Email,
	}
	if e.Phone != "" {
		lines = append(lines, Dim("phone ")+e.Phone)
	}
	if e.Notes != "" {
		lines = append(lines, Dim("notes ")+e.Notes)
	}
	if !e.CreatedAt.IsZero() {
		lines = append(lines, Dim("registered ")+HumanTimestamp(e.CreatedAt, now))
	}
	return RenderBox("Employee", strings.Join(lines, "\n"))
}
