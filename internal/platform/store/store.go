// Package store opens the optional storage backends behind small seams
package store

import (
	"context"
	"errors"
	"fmt"

	"dreammap/internal/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Store is the facade for optional backends; nil seams are disabled
type Store struct {
	Log logger.Logger

	// PG is the postgres seam
	PG TxRunner

	// CH is the clickhouse seam
	CH Clickhouse

	// RDS is the redis client
	RDS *redis.Client
}

// Row exposes the scan contract of a single row
type Row interface {
	Scan(dest ...any) error
}

// Rows is the iteration contract of a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag reports the outcome of a write
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the read and write surface repos use for sql
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner runs fn inside a transaction
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is the columnar event seam
type Clickhouse interface {
	Exec(ctx context.Context, sql string, args ...any) error
	Insert(ctx context.Context, table string, rows [][]any) error
	Ping(ctx context.Context) error
	Close() error
}

// Pinger reports readiness
type Pinger interface{ Ping(context.Context) error }

// Open constructs a Store with the enabled backends
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{Log: *logger.Nop()}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	if cfg.PG.Enabled {
		pgc, err := openPG(ctx, cfg, s)
		if err != nil {
			return nil, fmt.Errorf("pg: %w", err)
		}
		s.PG = pgc
	}

	if cfg.CH.Enabled {
		chc, err := openCH(ctx, cfg, s)
		if err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("ch: %w", err)
		}
		s.CH = chc
	}

	if cfg.RDS.Enabled {
		rds, err := openRedis(ctx, cfg, s)
		if err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("redis: %w", err)
		}
		s.RDS = rds
	}

	return s, nil
}

// PGPool returns the pgx pool behind PG, nil when postgres is disabled
func (s *Store) PGPool() *pgxpool.Pool {
	if p, ok := s.PG.(interface{ Pool() *pgxpool.Pool }); ok {
		return p.Pool()
	}
	return nil
}

// Guard pings every configured backend
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	if p, ok := s.PG.(Pinger); ok && s.PG != nil {
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("pg: %w", err))
		}
	}
	if s.CH != nil {
		if err := s.CH.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("ch: %w", err))
		}
	}
	if s.RDS != nil {
		if err := s.RDS.Ping(ctx).Err(); err != nil {
			errs = append(errs, fmt.Errorf("redis: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Close closes all initialized backends
func (s *Store) Close(_ context.Context) error {
	var errs []error
	if s.RDS != nil {
		if err := s.RDS.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.CH != nil {
		if err := s.CH.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if c, ok := s.PG.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
