package config

import (
	"fmt"

	"github.com/alexanderramin/timecard/internal/db"
	"github.com/alexanderramin/timecard/internal/repository"
)

// OpenStore opens and migrates the configured store. The caller owns Close.
func OpenStore(cfg Config) (repository.Store, error) {
	path, err := cfg.DBPath()
	if err != nil {
		return nil, err
	}

	switch cfg.Store {
	case StoreSQLite:
		database, err := db.OpenDB(path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return repository.NewSQLStore(database, db.DialectSQLite, nil), nil
	case StorePostgres:
		database, err := db.OpenPostgres(path)
		if err != nil {
			return nil, fmt.Errorf("opening postgres store: %w", err)
		}
		return repository.NewSQLStore(database, db.DialectPostgres, nil), nil
	case StoreBolt:
		bdb, err := db.OpenBolt(path)
		if err != nil {
			return nil, fmt.Errorf("opening bolt store: %w", err)
		}
		return repository.NewBoltStore(bdb), nil
	}
	return nil, fmt.Errorf("unknown store %q", cfg.Store)
}
