package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent, so
// Migrate is safe to call on each start.
func Migrate(db *sql.DB, dialect Dialect) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if isDuplicateColumn(err) {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := seedTimecardSequence(db, dialect); err != nil {
		return fmt.Errorf("seeding timecard sequence: %w", err)
	}
	return nil
}

func isDuplicateColumn(err error) bool {
	return strings.Contains(err.Error(), "duplicate column name")
}

// seedTimecardSequence makes sure the allocator row exists and starts past
// any seq already in use.
func seedTimecardSequence(db *sql.DB, dialect Dialect) error {
	query := RebindQuery(dialect, `INSERT INTO timecard_sequence (name, next_seq)
		SELECT ?, COALESCE(MAX(seq), 0) + 1 FROM timecards WHERE true
		ON CONFLICT (name) DO NOTHING`)
	_, err := db.Exec(query, TimecardSequenceName)
	return err
}

// TimecardSequenceName is the allocator key for timecard creation order.
const TimecardSequenceName = "timecards"

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		phone      TEXT NOT NULL DEFAULT '',
		notes      TEXT NOT NULL DEFAULT '',
		role       TEXT NOT NULL DEFAULT 'employee'
		           CHECK(role IN ('employee','manager')),
		created_at TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS ux_employees_email ON employees(email)`,

	`CREATE TABLE IF NOT EXISTS timecards (
		id           TEXT PRIMARY KEY,
		employee_id  TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		week_start   TEXT NOT NULL,
		completed    INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		seq          BIGINT NOT NULL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS ux_timecards_employee_week ON timecards(employee_id, week_start)`,
	`CREATE INDEX IF NOT EXISTS idx_timecards_employee_seq ON timecards(employee_id, seq)`,

	`CREATE TABLE IF NOT EXISTS timecard_entries (
		timecard_id TEXT NOT NULL REFERENCES timecards(id) ON DELETE CASCADE,
		id          TEXT NOT NULL,
		position    INTEGER NOT NULL,
		day         TEXT NOT NULL
		            CHECK(day IN ('Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday')),
		job_name    TEXT NOT NULL,
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (timecard_id, id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_timecard_entries_position ON timecard_entries(timecard_id, position)`,

	`CREATE TABLE IF NOT EXISTS timecard_sequence (
		name     TEXT PRIMARY KEY,
		next_seq BIGINT NOT NULL
	)`,
}
