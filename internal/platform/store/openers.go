package store

import (
	"context"
	"fmt"
	"time"

	chx "dreammap/internal/platform/store/ch"
	"dreammap/internal/platform/store/pg"

	"github.com/redis/go-redis/v9"
)

const (
	backoffStart   = 150 * time.Millisecond
	backoffCeiling = 2 * time.Second
)

// pingRetry calls ping until it succeeds, ctx ends or attempts run out
func pingRetry(ctx context.Context, attempts int, timeout time.Duration, ping func(context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}
	var last error
	backoff := backoffStart
	for i := 0; i < attempts; i++ {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		last = ping(pctx)
		cancel()
		if last == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, backoffCeiling)
	}
	return fmt.Errorf("ping failed after %d attempts: %w", attempts, last)
}

// openPG opens the pool and publishes the adapter once a ping succeeds
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
		AppName:  cfg.AppName,
	}, tracer)
	if err != nil {
		return nil, err
	}

	timeout := cfg.PG.PingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if err := pingRetry(ctx, cfg.PG.ConnectRetries, timeout, p.Pool.Ping); err != nil {
		p.Close()
		return nil, err
	}
	s.Log.Info().Str("component", "store").Msg("postgres ready")
	return newPGAdapter(p), nil
}

func openCH(ctx context.Context, cfg Config, s *Store) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{URL: cfg.CH.URL, Role: cfg.AppName})
	if err != nil {
		return nil, err
	}
	if err := pingRetry(ctx, 5, 3*time.Second, c.Ping); err != nil {
		_ = c.Close()
		return nil, err
	}
	s.Log.Info().Str("component", "store").Msg("clickhouse ready")
	return c, nil
}

func openRedis(ctx context.Context, cfg Config, s *Store) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:       cfg.RDS.Addr,
		Password:   cfg.RDS.Password,
		DB:         cfg.RDS.DB,
		ClientName: cfg.AppName,
	})
	if err := pingRetry(ctx, 5, 3*time.Second, func(c context.Context) error {
		return rdb.Ping(c).Err()
	}); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	s.Log.Info().Str("component", "store").Str("addr", cfg.RDS.Addr).Msg("redis ready")
	return rdb, nil
}
