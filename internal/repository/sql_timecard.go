package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/timecard/internal/db"
	"github.com/alexanderramin/timecard/internal/domain"
)

// SQLTimecardRepo implements TimecardRepo on SQLite or PostgreSQL. conn must
// already be rebound for its dialect (see db.Rebind).
type SQLTimecardRepo struct {
	db db.DBTX
}

// NewSQLTimecardRepo creates a new SQLTimecardRepo.
func NewSQLTimecardRepo(conn db.DBTX) *SQLTimecardRepo {
	return &SQLTimecardRepo{db: conn}
}

const timecardColumns = `id, employee_id, week_start, completed, completed_at, seq, created_at, updated_at`

func (r *SQLTimecardRepo) Create(ctx context.Context, tc *domain.Timecard) error {
	seq, err := r.nextSeq(ctx)
	if err != nil {
		return err
	}

	query := `INSERT INTO timecards (` + timecardColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		tc.ID,
		tc.EmployeeID,
		formatWeek(tc.WeekStart),
		boolToInt(tc.Completed),
		nullableTimeToString(tc.CompletedAt, time.RFC3339),
		seq,
		tc.CreatedAt.UTC().Format(time.RFC3339),
		tc.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("week %s: %w", formatWeek(tc.WeekStart), domain.ErrDuplicateWeek)
		}
		return fmt.Errorf("inserting timecard: %w", err)
	}
	tc.Seq = seq

	return r.insertEntries(ctx, tc.ID, tc.Entries)
}

// nextSeq allocates the next creation sequence value atomically.
func (r *SQLTimecardRepo) nextSeq(ctx context.Context) (int64, error) {
	var next int64
	query := `UPDATE timecard_sequence
		SET next_seq = next_seq + 1
		WHERE name = ?
		RETURNING next_seq - 1`
	if err := r.db.QueryRowContext(ctx, query, db.TimecardSequenceName).Scan(&next); err != nil {
		return 0, fmt.Errorf("allocating timecard seq: %w", err)
	}
	return next, nil
}

func (r *SQLTimecardRepo) GetByID(ctx context.Context, id string) (*domain.Timecard, error) {
	query := `SELECT ` + timecardColumns + ` FROM timecards WHERE id = ?`
	tc, err := r.scanTimecard(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadEntries(ctx, tc); err != nil {
		return nil, err
	}
	return tc, nil
}

func (r *SQLTimecardRepo) GetByEmployeeWeek(ctx context.Context, employeeID string, weekStart time.Time) (*domain.Timecard, error) {
	query := `SELECT ` + timecardColumns + ` FROM timecards WHERE employee_id = ? AND week_start = ?`
	tc, err := r.scanTimecard(r.db.QueryRowContext(ctx, query, employeeID, formatWeek(weekStart)))
	if err != nil {
		return nil, err
	}
	if err := r.loadEntries(ctx, tc); err != nil {
		return nil, err
	}
	return tc, nil
}

func (r *SQLTimecardRepo) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]*domain.Timecard, error) {
	query := `SELECT ` + timecardColumns + ` FROM timecards WHERE employee_id = ? ORDER BY seq DESC`
	args := []any{employeeID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing timecards: %w", err)
	}
	cards, err := r.scanTimecards(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	// Entries are loaded after the card cursor is closed; an in-memory
	// database only has one connection.
	for _, tc := range cards {
		if err := r.loadEntries(ctx, tc); err != nil {
			return nil, err
		}
	}
	return cards, nil
}

func (r *SQLTimecardRepo) Update(ctx context.Context, tc *domain.Timecard) error {
	query := `UPDATE timecards SET completed = ?, completed_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		boolToInt(tc.Completed),
		nullableTimeToString(tc.CompletedAt, time.RFC3339),
		tc.UpdatedAt.UTC().Format(time.RFC3339),
		tc.ID,
	)
	if err != nil {
		return fmt.Errorf("updating timecard: %w", err)
	}
	if err := requireAffected(res, "timecard"); err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM timecard_entries WHERE timecard_id = ?`, tc.ID); err != nil {
		return fmt.Errorf("clearing timecard entries: %w", err)
	}
	return r.insertEntries(ctx, tc.ID, tc.Entries)
}

func (r *SQLTimecardRepo) Delete(ctx context.Context, id string) error {
	// Entries go first so deletion does not depend on foreign-key cascades
	// being enabled on the connection.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM timecard_entries WHERE timecard_id = ?`, id); err != nil {
		return fmt.Errorf("deleting timecard entries: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM timecards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting timecard: %w", err)
	}
	return requireAffected(res, "timecard")
}

func (r *SQLTimecardRepo) insertEntries(ctx context.Context, timecardID string, entries []domain.Entry) error {
	query := `INSERT INTO timecard_entries (timecard_id, id, position, day, job_name, start_time, end_time, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for i, e := range entries {
		_, err := r.db.ExecContext(ctx, query,
			timecardID, e.ID, i, string(e.Day), e.JobName, e.StartTime, e.EndTime, e.Description,
		)
		if err != nil {
			return fmt.Errorf("inserting timecard entry %s: %w", e.ID, err)
		}
	}
	return nil
}

func (r *SQLTimecardRepo) loadEntries(ctx context.Context, tc *domain.Timecard) error {
	query := `SELECT id, day, job_name, start_time, end_time, description
		FROM timecard_entries WHERE timecard_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, tc.ID)
	if err != nil {
		return fmt.Errorf("listing timecard entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		var e domain.Entry
		var day string
		if err := rows.Scan(&e.ID, &day, &e.JobName, &e.StartTime, &e.EndTime, &e.Description); err != nil {
			return fmt.Errorf("scanning timecard entry: %w", err)
		}
		e.Day = domain.Weekday(day)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating timecard entries: %w", err)
	}

	tc.Entries = entries
	tc.Recompute()
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLTimecardRepo) scanTimecard(row *sql.Row) (*domain.Timecard, error) {
	tc, err := r.populateTimecard(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("timecard: %w", ErrNotFound)
		}
		return nil, err
	}
	return tc, nil
}

func (r *SQLTimecardRepo) scanTimecards(rows *sql.Rows) ([]*domain.Timecard, error) {
	var cards []*domain.Timecard
	for rows.Next() {
		tc, err := r.populateTimecard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating timecards: %w", err)
	}
	return cards, nil
}

// populateTimecard scans one row and parses its stored strings.
func (r *SQLTimecardRepo) populateTimecard(s scanner) (*domain.Timecard, error) {
	var tc domain.Timecard
	var weekStr, createdStr, updatedStr string
	var completed int
	var completedAt sql.NullString

	if err := s.Scan(&tc.ID, &tc.EmployeeID, &weekStr, &completed, &completedAt, &tc.Seq, &createdStr, &updatedStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning timecard: %w", err)
	}

	var parseErr error
	if tc.WeekStart, parseErr = parseWeek(weekStr); parseErr != nil {
		return nil, fmt.Errorf("parsing week_start: %w", parseErr)
	}
	if tc.CreatedAt, parseErr = time.Parse(time.RFC3339, createdStr); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if tc.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedStr); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	tc.Completed = intToBool(completed)
	tc.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
	tc.Entries = []domain.Entry{}
	return &tc, nil
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
