package repository

import (
	"context"
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// BoltStore is a Store over a single bbolt file. Records are JSON values;
// bbolt serializes writers, so WithinTx is a single writer transaction.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore wraps a database opened with db.OpenBolt.
func NewBoltStore(bdb *bolt.DB) *BoltStore {
	return &BoltStore{db: bdb}
}

func (s *BoltStore) Read(ctx context.Context, fn func(ctx context.Context, r Repos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(tx *bolt.Tx) error {
		return fn(ctx, boltRepos(tx))
	})
}

func (s *BoltStore) WithinTx(ctx context.Context, fn func(ctx context.Context, r Repos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return fn(ctx, boltRepos(tx))
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func boltRepos(tx *bolt.Tx) Repos {
	return Repos{
		Timecards: &BoltTimecardRepo{tx: tx},
		Employees: &BoltEmployeeRepo{tx: tx},
	}
}

func bucket(tx *bolt.Tx, name []byte) (*bolt.Bucket, error) {
	b := tx.Bucket(name)
	if b == nil {
		return nil, fmt.Errorf("bucket %s missing; open the file with db.OpenBolt", name)
	}
	return b, nil
}

func putJSON(b *bolt.Bucket, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return b.Put([]byte(key), data)
}

func getJSON(b *bolt.Bucket, key string, v any) (bool, error) {
	data := b.Get([]byte(key))
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

var _ Store = (*BoltStore)(nil)
var _ Store = (*SQLStore)(nil)
