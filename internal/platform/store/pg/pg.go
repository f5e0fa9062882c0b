// Package pg opens a pgx pool with optional query tracing
package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures the pool
type Config struct {
	URL      string
	MaxConns int32
	SlowMs   int
	AppName  string
}

// PG is a pool plus its tracer
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	SlowMs int
}

var newPool = pgxpool.NewWithConfig

// Open parses cfg and creates the pool; it does not ping
func Open(ctx context.Context, cfg Config, tracer QueryTracer) (*PG, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		pcfg.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
}

// Close closes the pool
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
