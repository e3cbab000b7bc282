package contract

import (
	"time"

	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/alexanderramin/timecard/internal/service"
)

type Entry struct {
	ID          string  `json:"id"`
	Day         string  `json:"day"`
	JobName     string  `json:"jobName"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
}

type Timecard struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employeeId"`
	WeekStartDate string     `json:"weekStartDate"`
	Entries       []Entry    `json:"entries"`
	TotalHours    float64    `json:"totalHours"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func FromEntry(e domain.Entry) Entry {
	return Entry{
		ID:          e.ID,
		Day:         string(e.Day),
		JobName:     e.JobName,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Description: e.Description,
		Hours:       e.Hours(),
	}
}

func FromTimecard(tc *domain.Timecard) Timecard {
	out := Timecard{
		ID:            tc.ID,
		EmployeeID:    tc.EmployeeID,
		WeekStartDate: tc.WeekKey(),
		Entries:       make([]Entry, 0, len(tc.Entries)),
		TotalHours:    tc.TotalHours,
		Completed:     tc.Completed,
		CompletedAt:   tc.CompletedAt,
		CreatedAt:     tc.CreatedAt,
		UpdatedAt:     tc.UpdatedAt,
	}
	for _, e := range tc.Entries {
		out.Entries = append(out.Entries, FromEntry(e))
	}
	return out
}

func FromTimecards(cards []*domain.Timecard) []Timecard {
	out := make([]Timecard, 0, len(cards))
	for _, tc := range cards {
		out = append(out, FromTimecard(tc))
	}
	return out
}

// CreateTimecardRequest creates a timecard. An empty WeekStartDate means the
// current week.
type CreateTimecardRequest struct {
	WeekStartDate string `json:"weekStartDate"`
}

// EntryRequest is one entry as submitted by a client. Unknown fields such
// as a client-side id or hours are ignored.
type EntryRequest struct {
	Day         string `json:"day"`
	JobName     string `json:"jobName"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Description string `json:"description"`
}

func (r EntryRequest) Draft() domain.EntryDraft {
	return domain.EntryDraft{
		Day:         r.Day,
		JobName:     r.JobName,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Description: r.Description,
	}
}

// UpdateTimecardRequest replaces a timecard's entries. TotalHours is
// accepted for compatibility and ignored; the server recomputes it.
type UpdateTimecardRequest struct {
	Entries    []EntryRequest `json:"entries"`
	TotalHours *float64       `json:"totalHours,omitempty"`
}

func (r UpdateTimecardRequest) Drafts() []domain.EntryDraft {
	drafts := make([]domain.EntryDraft, 0, len(r.Entries))
	for _, e := range r.Entries {
		drafts = append(drafts, e.Draft())
	}
	return drafts
}

type CurrentWeekResponse struct {
	Exists        bool   `json:"exists"`
	WeekStartDate string `json:"weekStartDate"`
}

type Employee struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Role      string `json:"role"`
}

func FromEmployee(e *domain.Employee) Employee {
	return Employee{
		ID:        e.ID,
		Name:      e.Name,
		FirstName: e.FirstName(),
		Email:     e.Email,
		Phone:     e.Phone,
		Notes:     e.Notes,
		Role:      string(e.Role),
	}
}

type EmployeeSummary struct {
	Employee  Employee   `json:"employee"`
	Timecards []Timecard `json:"timecards"`
}

func FromSummaries(summaries []service.EmployeeSummary) []EmployeeSummary {
	out := make([]EmployeeSummary, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, EmployeeSummary{
			Employee:  FromEmployee(s.Employee),
			Timecards: FromTimecards(s.Timecards),
		})
	}
	return out
}
