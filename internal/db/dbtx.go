package db

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

// DBTX is the common interface satisfied by both *sql.DB and *sql.Tx.
// Repository implementations depend on this interface instead of the
// concrete *sql.DB, enabling transactional composition.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Compile-time verification that *sql.DB and *sql.Tx satisfy DBTX.
var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// Rebind wraps conn so that queries written with '?' placeholders run on
// the given dialect. SQLite connections are returned unchanged.
func Rebind(d Dialect, conn DBTX) DBTX {
	if d != DialectPostgres {
		return conn
	}
	return &dollarBinder{DBTX: conn}
}

type dollarBinder struct {
	DBTX
}

func (b *dollarBinder) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return b.DBTX.ExecContext(ctx, RebindQuery(DialectPostgres, query), args...)
}

func (b *dollarBinder) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return b.DBTX.QueryContext(ctx, RebindQuery(DialectPostgres, query), args...)
}

func (b *dollarBinder) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return b.DBTX.QueryRowContext(ctx, RebindQuery(DialectPostgres, query), args...)
}

// RebindQuery rewrites '?' placeholders to $1, $2, ... for postgres.
// Question marks inside single-quoted literals are left alone.
func RebindQuery(d Dialect, query string) string {
	if d != DialectPostgres || !strings.Contains(query, "?") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
