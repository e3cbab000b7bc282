package export

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexanderramin/timecard/internal/domain"
)

func sampleCard(t *testing.T, week time.Time, drafts ...domain.EntryDraft) *domain.Timecard {
	t.Helper()
	tc := domain.NewTimecard("tc-"+domain.WeekKey(week), "emp-1", week, week)
	for _, d := range drafts {
		_, err := tc.AddEntry(d, week)
		require.NoError(t, err)
	}
	return tc
}

func TestWriteTimecards(t *testing.T) {
	emp := &domain.Employee{ID: "emp-1", Name: "Ada Lovelace", Email: "ada@example.com"}
	march := sampleCard(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		domain.EntryDraft{Day: "Monday", JobName: "Site A", StartTime: "08:00", EndTime: "12:00", Description: "framing"},
		domain.EntryDraft{Day: "Monday", JobName: "Site B", StartTime: "13:00", EndTime: "16:00"},
	)
	march.Complete(time.Date(2024, 3, 8, 17, 0, 0, 0, time.UTC))
	feb := sampleCard(t, time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC),
		domain.EntryDraft{Day: "Friday", JobName: "Site A", StartTime: "09:00", EndTime: "17:30"},
	)

	var buf bytes.Buffer
	require.NoError(t, WriteTimecards(&buf, emp, []*domain.Timecard{march, feb}))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{SummarySheet, EntriesSheet}, f.GetSheetList())

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	require.Len(t, summary, 6)
	assert.Equal(t, "Ada Lovelace", summary[0][1])
	assert.Equal(t, "Week Of", summary[2][0])
	assert.Equal(t, "2024-03-04", summary[3][0])
	assert.Equal(t, "yes", summary[3][3])
	assert.Equal(t, "2024-03-08 17:00", summary[3][4])
	assert.Equal(t, "2024-02-26", summary[4][0])
	assert.Equal(t, "no", summary[4][3])
	assert.Equal(t, "Total", summary[5][0])

	total, err := f.GetCellValue(SummarySheet, "B6", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "15.5", total)

	entries, err := f.GetRows(EntriesSheet)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, []string{"2024-03-04", "Monday", "Site A", "08:00", "12:00"}, entries[1][:5])
	assert.Equal(t, "framing", entries[1][6])
	assert.Equal(t, "Friday", entries[3][1])
}

func TestWriteTimecards_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTimecards(&buf, &domain.Employee{Name: "Nobody"}, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(EntriesSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "timecards-ada-lovelace.xlsx", FileName(&domain.Employee{Name: " Ada Lovelace "}))
	assert.Equal(t, "timecards-cher.xlsx", FileName(&domain.Employee{Name: "Cher"}))
	assert.Equal(t, "timecards-mary-jane-o-neil.xlsx", FileName(&domain.Employee{Name: "Mary-Jane  O_Neil"}))
}

func TestFileName_StaysABareName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"../../x y", "timecards-x-y.xlsx"},
		{`evil"; filename="a.sh`, "timecards-evil-filenamea-sh.xlsx"},
		{"/etc/passwd", "timecards-etcpasswd.xlsx"},
		{"...", "timecards-employee.xlsx"},
		{"Zoë", "timecards-zo.xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FileName(&domain.Employee{Name: tt.name})
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, filepath.Base(got))
		})
	}
}
