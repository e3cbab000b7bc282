package repository

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/alexanderramin/timecard/internal/db"
	"github.com/alexanderramin/timecard/internal/domain"
)

// BoltTimecardRepo implements TimecardRepo inside one bbolt transaction.
// Timecards are keyed by ID; the week index maps "<employee>|<week>" to the
// timecard ID and doubles as the per-employee listing index.
type BoltTimecardRepo struct {
	tx *bolt.Tx
}

type boltEntry struct {
	ID          string `json:"id"`
	Day         string `json:"day"`
	JobName     string `json:"job_name"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
}

type boltTimecard struct {
	ID          string      `json:"id"`
	EmployeeID  string      `json:"employee_id"`
	WeekStart   string      `json:"week_start"`
	Entries     []boltEntry `json:"entries"`
	Completed   bool        `json:"completed"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	Seq         int64       `json:"seq"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func weekIndexKey(employeeID, week string) string {
	return employeeID + "|" + week
}

func toBoltTimecard(tc *domain.Timecard) boltTimecard {
	rec := boltTimecard{
		ID:          tc.ID,
		EmployeeID:  tc.EmployeeID,
		WeekStart:   formatWeek(tc.WeekStart),
		Entries:     make([]boltEntry, 0, len(tc.Entries)),
		Completed:   tc.Completed,
		CompletedAt: tc.CompletedAt,
		Seq:         tc.Seq,
		CreatedAt:   tc.CreatedAt.UTC(),
		UpdatedAt:   tc.UpdatedAt.UTC(),
	}
	for _, e := range tc.Entries {
		rec.Entries = append(rec.Entries, boltEntry{
			ID: e.ID, Day: string(e.Day), JobName: e.JobName,
			StartTime: e.StartTime, EndTime: e.EndTime, Description: e.Description,
		})
	}
	return rec
}

func (rec boltTimecard) toDomain() (*domain.Timecard, error) {
	week, err := parseWeek(rec.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("parsing week_start: %w", err)
	}
	tc := &domain.Timecard{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		WeekStart:   week,
		Entries:     make([]domain.Entry, 0, len(rec.Entries)),
		Completed:   rec.Completed,
		CompletedAt: rec.CompletedAt,
		Seq:         rec.Seq,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
	for _, e := range rec.Entries {
		tc.Entries = append(tc.Entries, domain.Entry{
			ID: e.ID, Day: domain.Weekday(e.Day), JobName: e.JobName,
			StartTime: e.StartTime, EndTime: e.EndTime, Description: e.Description,
		})
	}
	tc.Recompute()
	return tc, nil
}

func (r *BoltTimecardRepo) buckets() (cards, weeks *bolt.Bucket, err error) {
	if cards, err = bucket(r.tx, db.BucketTimecards); err != nil {
		return nil, nil, err
	}
	if weeks, err = bucket(r.tx, db.BucketWeekIndex); err != nil {
		return nil, nil, err
	}
	return cards, weeks, nil
}

func (r *BoltTimecardRepo) Create(ctx context.Context, tc *domain.Timecard) error {
	cards, weeks, err := r.buckets()
	if err != nil {
		return err
	}
	week := formatWeek(tc.WeekStart)
	idxKey := []byte(weekIndexKey(tc.EmployeeID, week))
	if weeks.Get(idxKey) != nil {
		return fmt.Errorf("week %s: %w", week, domain.ErrDuplicateWeek)
	}
	if cards.Get([]byte(tc.ID)) != nil {
		return fmt.Errorf("timecard %s already exists", tc.ID)
	}

	seq, err := cards.NextSequence()
	if err != nil {
		return fmt.Errorf("allocating timecard seq: %w", err)
	}
	tc.Seq = int64(seq)

	if err := putJSON(cards, tc.ID, toBoltTimecard(tc)); err != nil {
		return fmt.Errorf("inserting timecard: %w", err)
	}
	if err := weeks.Put(idxKey, []byte(tc.ID)); err != nil {
		return fmt.Errorf("indexing timecard week: %w", err)
	}
	return nil
}

func (r *BoltTimecardRepo) GetByID(ctx context.Context, id string) (*domain.Timecard, error) {
	cards, _, err := r.buckets()
	if err != nil {
		return nil, err
	}
	var rec boltTimecard
	found, err := getJSON(cards, id, &rec)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("timecard: %w", ErrNotFound)
	}
	return rec.toDomain()
}

func (r *BoltTimecardRepo) GetByEmployeeWeek(ctx context.Context, employeeID string, weekStart time.Time) (*domain.Timecard, error) {
	_, weeks, err := r.buckets()
	if err != nil {
		return nil, err
	}
	id := weeks.Get([]byte(weekIndexKey(employeeID, formatWeek(weekStart))))
	if id == nil {
		return nil, fmt.Errorf("timecard: %w", ErrNotFound)
	}
	return r.GetByID(ctx, string(id))
}

func (r *BoltTimecardRepo) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]*domain.Timecard, error) {
	_, weeks, err := r.buckets()
	if err != nil {
		return nil, err
	}

	var cards []*domain.Timecard
	prefix := []byte(employeeID + "|")
	c := weeks.Cursor()
	for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
		tc, err := r.GetByID(ctx, string(v))
		if err != nil {
			return nil, fmt.Errorf("loading indexed timecard %s: %w", v, err)
		}
		cards = append(cards, tc)
	}

	sort.Slice(cards, func(i, j int) bool { return cards[i].Seq > cards[j].Seq })
	if limit > 0 && len(cards) > limit {
		cards = cards[:limit]
	}
	return cards, nil
}

func (r *BoltTimecardRepo) Update(ctx context.Context, tc *domain.Timecard) error {
	cards, _, err := r.buckets()
	if err != nil {
		return err
	}
	var existing boltTimecard
	found, err := getJSON(cards, tc.ID, &existing)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("timecard: %w", ErrNotFound)
	}

	rec := toBoltTimecard(tc)
	// Identity fields are fixed at creation.
	rec.EmployeeID = existing.EmployeeID
	rec.WeekStart = existing.WeekStart
	rec.Seq = existing.Seq
	rec.CreatedAt = existing.CreatedAt
	if err := putJSON(cards, tc.ID, rec); err != nil {
		return fmt.Errorf("updating timecard: %w", err)
	}
	return nil
}

func (r *BoltTimecardRepo) Delete(ctx context.Context, id string) error {
	cards, weeks, err := r.buckets()
	if err != nil {
		return err
	}
	var rec boltTimecard
	found, err := getJSON(cards, id, &rec)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("timecard: %w", ErrNotFound)
	}
	if err := weeks.Delete([]byte(weekIndexKey(rec.EmployeeID, rec.WeekStart))); err != nil {
		return fmt.Errorf("unindexing timecard week: %w", err)
	}
	if err := cards.Delete([]byte(id)); err != nil {
		return fmt.Errorf("deleting timecard: %w", err)
	}
	return nil
}
