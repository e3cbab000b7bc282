package repository

import (
	"context"
	"database/sql"

	"github.com/alexanderramin/timecard/internal/db"
)

// SQLStore is a Store over database/sql. Transactions come from the
// package db UnitOfWork.
type SQLStore struct {
	db      *sql.DB
	dialect db.Dialect
	uow     db.UnitOfWork
}

// NewSQLStore wraps an open database. uow may be nil, in which case a
// db.SQLUnitOfWork for the same connection is used.
func NewSQLStore(database *sql.DB, dialect db.Dialect, uow db.UnitOfWork) *SQLStore {
	if uow == nil {
		uow = db.NewSQLUnitOfWork(database, dialect)
	}
	return &SQLStore{db: database, dialect: dialect, uow: uow}
}

// NewSQLRepos binds both repositories to conn, rebinding placeholders for
// the dialect.
func NewSQLRepos(dialect db.Dialect, conn db.DBTX) Repos {
	bound := db.Rebind(dialect, conn)
	return Repos{
		Timecards: NewSQLTimecardRepo(bound),
		Employees: NewSQLEmployeeRepo(bound),
	}
}

func (s *SQLStore) Read(ctx context.Context, fn func(ctx context.Context, r Repos) error) error {
	return fn(ctx, NewSQLRepos(s.dialect, s.db))
}

func (s *SQLStore) WithinTx(ctx context.Context, fn func(ctx context.Context, r Repos) error) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		// The UnitOfWork has already rebound tx.
		return fn(ctx, Repos{
			Timecards: NewSQLTimecardRepo(tx),
			Employees: NewSQLEmployeeRepo(tx),
		})
	})
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
