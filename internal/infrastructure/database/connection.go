package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/hskdeck/internal/infrastructure/config"
)

// NewPostgresPool creates a pgx connection pool for the postgres storage driver.
func NewPostgresPool(cfg *config.Config, logger logrus.FieldLogger) (*pgxpool.Pool, func(), error) {
	if cfg.Storage.DSN == "" {
		return nil, nil, fmt.Errorf("postgres storage requires storage.dsn")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.Storage.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("parse pool config: %w", err)
	}
	if cfg.Storage.MaxConns > 0 {
		poolCfg.MaxConns = cfg.Storage.MaxConns
	}

	if cfg.Log.Level == "trace" {
		poolCfg.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger: tracelog.LoggerFunc(func(_ context.Context, lvl tracelog.LogLevel, msg string, data map[string]any) {
				logger.WithField("pgx_level", lvl.String()).WithFields(logrus.Fields(data)).Trace(msg)
			}),
			LogLevel: tracelog.LogLevelTrace,
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping db: %w", err)
	}

	return pool, pool.Close, nil
}
