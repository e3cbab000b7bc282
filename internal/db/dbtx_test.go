package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebindQuery(t *testing.T) {
	q := `SELECT * FROM t WHERE a = ? AND b = ? AND c = '?'`
	assert.Equal(t, `SELECT * FROM t WHERE a = $1 AND b = $2 AND c = '?'`, RebindQuery(DialectPostgres, q))
	assert.Equal(t, q, RebindQuery(DialectSQLite, q))
	assert.Equal(t, `SELECT 1`, RebindQuery(DialectPostgres, `SELECT 1`))
}
