package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/timecard/internal/db"
	"github.com/alexanderramin/timecard/internal/repository"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// NewTestSQLStore returns a Store over a fresh in-memory SQLite database.
func NewTestSQLStore(t *testing.T) repository.Store {
	t.Helper()
	return repository.NewSQLStore(NewTestDB(t), db.DialectSQLite, nil)
}

// NewFileSQLStore returns a Store over a file-backed SQLite database in a
// temp directory. Unlike :memory:, it supports concurrent connections.
func NewFileSQLStore(t *testing.T) repository.Store {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "timecard.db"))
	if err != nil {
		t.Fatalf("failed to create file database: %v", err)
	}
	store := repository.NewSQLStore(database, db.DialectSQLite, nil)
	t.Cleanup(func() { store.Close() })
	return store
}

// NewTestBoltStore returns a Store over a bbolt file in a temp directory.
func NewTestBoltStore(t *testing.T) repository.Store {
	t.Helper()
	bdb, err := db.OpenBolt(filepath.Join(t.TempDir(), "timecard.bolt"))
	if err != nil {
		t.Fatalf("failed to create bolt database: %v", err)
	}
	store := repository.NewBoltStore(bdb)
	t.Cleanup(func() { store.Close() })
	return store
}

// Stores returns one constructor per store backend, for tests that must
// hold on every backend.
func Stores() map[string]func(t *testing.T) repository.Store {
	return map[string]func(t *testing.T) repository.Store{
		"sqlite": NewTestSQLStore,
		"bolt":   NewTestBoltStore,
	}
}
