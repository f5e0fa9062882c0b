// Package migrate applies the embedded postgres migrations and the
// clickhouse event table
package migrate

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"dreammap/internal/platform/logger"
	"dreammap/internal/platform/store"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedded embed.FS

// FS returns the postgres migration files
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}

// Postgres applies every pending migration and returns the new version
func Postgres(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer func() { _ = db.Close() }()

	p, err := goose.NewProvider(goose.DialectPostgres, db, FS())
	if err != nil {
		return 0, fmt.Errorf("goose provider: %w", err)
	}
	results, err := p.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}
	log := logger.Named("migrate")
	for _, r := range results {
		log.Info().Int64("version", r.Source.Version).Dur("took", r.Duration).Msg("migration applied")
	}
	return p.GetDBVersion(ctx)
}

// EventsTable is the clickhouse table receiving dream submission events
const EventsTable = "dream_events"

const eventsDDL = `CREATE TABLE IF NOT EXISTS ` + EventsTable + ` (
    id          String,
    category    LowCardinality(String),
    lat         Float64,
    lng         Float64,
    created_at  DateTime64(3, 'UTC')
) ENGINE = MergeTree
ORDER BY (category, created_at)`

// Clickhouse creates the event table when missing
func Clickhouse(ctx context.Context, ch store.Clickhouse) error {
	if ch == nil {
		return nil
	}
	return ch.Exec(ctx, eventsDDL)
}

// Run applies whatever backends s has enabled
func Run(ctx context.Context, s *store.Store) error {
	if pool := s.PGPool(); pool != nil {
		if _, err := Postgres(ctx, pool); err != nil {
			return err
		}
	}
	return Clickhouse(ctx, s.CH)
}
