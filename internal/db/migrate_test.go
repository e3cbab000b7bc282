package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time; it should succeed.
	err := Migrate(db, DialectSQLite)
	require.NoError(t, err)

	// Third time for good measure.
	err = Migrate(db, DialectSQLite)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM timecard_sequence`).Scan(&count))
	assert.Equal(t, 1, count, "sequence row should be seeded exactly once")
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"employees", "timecards", "timecard_entries", "timecard_sequence"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"ux_employees_email",
		"ux_timecards_employee_week",
		"idx_timecards_employee_seq",
		"idx_timecard_entries_position",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_SeedsSequencePastExistingRows(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO employees (id, name, email, role, created_at) VALUES ('e1', 'Ada', 'ada@example.com', 'employee', '2024-03-04T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO timecards (id, employee_id, week_start, seq, created_at, updated_at)
		VALUES ('t1', 'e1', '2024-03-04', 41, '2024-03-04T00:00:00Z', '2024-03-04T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM timecard_sequence`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db, DialectSQLite))

	var next int64
	require.NoError(t, db.QueryRow(`SELECT next_seq FROM timecard_sequence WHERE name = ?`, TimecardSequenceName).Scan(&next))
	assert.Equal(t, int64(42), next)
}

func TestMigrate_WeekUniqueness(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO employees (id, name, email, role, created_at) VALUES ('e1', 'Ada', 'ada@example.com', 'employee', '2024-03-04T00:00:00Z')`)
	require.NoError(t, err)
	insert := `INSERT INTO timecards (id, employee_id, week_start, seq, created_at, updated_at)
		VALUES (?, 'e1', '2024-03-04', ?, '2024-03-04T00:00:00Z', '2024-03-04T00:00:00Z')`
	_, err = db.Exec(insert, "t1", 1)
	require.NoError(t, err)
	_, err = db.Exec(insert, "t2", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE")
}
