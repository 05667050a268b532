package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/fairwaylabs/golfdata/internal/config"
	"github.com/fairwaylabs/golfdata/internal/domain/player"
	"github.com/fairwaylabs/golfdata/internal/domain/result"
	"github.com/fairwaylabs/golfdata/internal/infrastructure/repository/memory"
	"github.com/fairwaylabs/golfdata/internal/infrastructure/repository/postgres"
)

// buildRepositories picks the storage backend. The memory driver serves local
// development and tests; it boots pre-seeded so the read endpoints have data.
func buildRepositories(cfg config.Config, logger *slog.Logger) (player.Repository, result.Repository, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		logger.Info("using in-memory storage", "driver", cfg.StorageDriver)
		return memory.NewPlayerRepository(memory.SeedPlayers()), memory.NewResultRepository(memory.SeedResults()), nil
	case config.StorageDriverPostgres:
		db, err := openPostgres(cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using postgres storage", "db", dbNameFromURL(cfg.DBURL))
		return postgres.NewPlayerRepository(db), postgres.NewResultRepository(db), nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func openPostgres(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	opts := []otelsql.Option{
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromURL(dbURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Open("postgres", dbURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
