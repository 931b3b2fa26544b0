package kvstore

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/hskdeck/internal/entity"
	"github.com/eslsoft/hskdeck/internal/infrastructure/config"
	"github.com/eslsoft/hskdeck/internal/infrastructure/database"
	"github.com/eslsoft/hskdeck/internal/repository"
)

// Driver names accepted by storage.driver.
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Open builds the key-value store selected by cfg.Storage.Driver. The returned cleanup
// releases any database handle and is never nil on success.
func Open(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (repository.KeyValueStore, func(), error) {
	switch cfg.Storage.Driver {
	case "", DriverFile:
		path := cfg.StoragePath()
		logger.WithField("path", path).Debug("using file storage")
		return NewFileStore(path, logger), func() {}, nil

	case DriverSQLite, "sqlite3":
		path := cfg.StoragePath()
		db, cleanup, err := database.NewSQLiteDB(path)
		if err != nil {
			return nil, nil, err
		}
		store, err := NewSQLiteStore(ctx, db)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		logger.WithField("path", path).Debug("using sqlite storage")
		return store, cleanup, nil

	case DriverPostgres, "postgresql":
		pool, cleanup, err := database.NewPostgresPool(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		store, err := NewPostgresStore(ctx, pool)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		logger.Debug("using postgres storage")
		return store, cleanup, nil

	case DriverMemory:
		logger.Warn("using in-memory storage, progress will not survive exit")
		return NewMemoryStore(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", entity.ErrUnknownStorage, cfg.Storage.Driver)
	}
}
