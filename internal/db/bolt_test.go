package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func TestOpenBolt_CreatesBuckets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "timecard.bolt")
	bdb, err := OpenBolt(path)
	require.NoError(t, err)
	defer bdb.Close()

	err = bdb.View(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{BucketEmployees, BucketEmployeeEmails, BucketTimecards, BucketWeekIndex} {
			assert.NotNil(t, tx.Bucket(name), "bucket %s", name)
		}
		return nil
	})
	require.NoError(t, err)
}
