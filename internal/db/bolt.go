package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bucket names used by the bolt store.
var (
	BucketEmployees      = []byte("employees")
	BucketEmployeeEmails = []byte("employee_emails")
	BucketTimecards      = []byte("timecards")
	BucketWeekIndex      = []byte("timecard_weeks")
)

// OpenBolt opens (or creates) a bbolt file and makes sure every bucket the
// store needs exists.
func OpenBolt(path string) (*bolt.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating db directory: %w", err)
	}

	bdb, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt database: %w", err)
	}

	err = bdb.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{BucketEmployees, BucketEmployeeEmails, BucketTimecards, BucketWeekIndex} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("creating bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		bdb.Close()
		return nil, err
	}
	return bdb, nil
}
