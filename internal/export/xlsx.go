// Package export renders timecards as spreadsheets for payroll.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexanderramin/timecard/internal/domain"
)

const (
	SummarySheet = "Summary"
	EntriesSheet = "Entries"
)

var (
	summaryHeader = []any{"Week Of", "Total Hours", "Entries", "Completed", "Completed At"}
	entriesHeader = []any{"Week Of", "Day", "Job", "Start", "End", "Hours", "Description"}
)

// FileName returns the download name for emp's workbook, like
// timecards-jane-doe.xlsx. Only a-z, 0-9 and single dashes survive from the
// name, so the result is always a bare file name.
func FileName(emp *domain.Employee) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(emp.Name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '.':
			dash = true
		}
	}
	slug := b.String()
	if slug == "" {
		slug = "employee"
	}
	return "timecards-" + slug + ".xlsx"
}

// WriteTimecards writes one workbook for emp: a per-week summary sheet and
// an entries sheet, in the order cards are given.
func WriteTimecards(w io.Writer, emp *domain.Employee, cards []*domain.Timecard) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("naming summary sheet: %w", err)
	}
	if _, err := f.NewSheet(EntriesSheet); err != nil {
		return fmt.Errorf("adding entries sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	hours, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("creating hours style: %w", err)
	}

	if err := writeSummary(f, emp, cards, bold, hours); err != nil {
		return err
	}
	if err := writeEntries(f, cards, bold, hours); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, emp *domain.Employee, cards []*domain.Timecard, bold, hours int) error {
	if err := f.SetSheetRow(SummarySheet, "A1", &[]any{"Employee", emp.Name, emp.Email}); err != nil {
		return fmt.Errorf("writing summary title: %w", err)
	}
	if err := f.SetSheetRow(SummarySheet, "A3", &summaryHeader); err != nil {
		return fmt.Errorf("writing summary header: %w", err)
	}
	if err := f.SetCellStyle(SummarySheet, "A3", "E3", bold); err != nil {
		return fmt.Errorf("styling summary header: %w", err)
	}

	row := 4
	total := 0
	for _, tc := range cards {
		completedAt := ""
		if tc.CompletedAt != nil {
			completedAt = tc.CompletedAt.UTC().Format("2006-01-02 15:04")
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		values := []any{tc.WeekKey(), tc.TotalHours, len(tc.Entries), yesNo(tc.Completed), completedAt}
		if err := f.SetSheetRow(SummarySheet, cell, &values); err != nil {
			return fmt.Errorf("writing week %s: %w", tc.WeekKey(), err)
		}
		total += tc.TotalMinutes()
		row++
	}

	cell, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetSheetRow(SummarySheet, cell, &[]any{"Total", float64(total) / 60.0}); err != nil {
		return fmt.Errorf("writing summary total: %w", err)
	}
	if err := f.SetCellStyle(SummarySheet, cell, cell, bold); err != nil {
		return fmt.Errorf("styling summary total: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(2, row)
	if err := f.SetCellStyle(SummarySheet, "B4", last, hours); err != nil {
		return fmt.Errorf("styling hours: %w", err)
	}
	return f.SetColWidth(SummarySheet, "A", "E", 16)
}

func writeEntries(f *excelize.File, cards []*domain.Timecard, bold, hours int) error {
	if err := f.SetSheetRow(EntriesSheet, "A1", &entriesHeader); err != nil {
		return fmt.Errorf("writing entries header: %w", err)
	}
	if err := f.SetCellStyle(EntriesSheet, "A1", "G1", bold); err != nil {
		return fmt.Errorf("styling entries header: %w", err)
	}

	row := 2
	for _, tc := range cards {
		for _, e := range tc.Entries {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			values := []any{tc.WeekKey(), string(e.Day), e.JobName, e.StartTime, e.EndTime, e.Hours(), e.Description}
			if err := f.SetSheetRow(EntriesSheet, cell, &values); err != nil {
				return fmt.Errorf("writing entry %s: %w", e.ID, err)
			}
			hoursCell, _ := excelize.CoordinatesToCellName(6, row)
			if err := f.SetCellStyle(EntriesSheet, hoursCell, hoursCell, hours); err != nil {
				return fmt.Errorf("styling entry %s: %w", e.ID, err)
			}
			row++
		}
	}
	if err := f.SetColWidth(EntriesSheet, "A", "F", 12); err != nil {
		return err
	}
	return f.SetColWidth(EntriesSheet, "G", "G", 40)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
