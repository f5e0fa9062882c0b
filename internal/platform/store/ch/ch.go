// Package ch wraps the clickhouse-go native client
package ch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Config configures the client. URL is a clickhouse:// DSN.
type Config struct {
	URL  string
	Role string
}

// CH is a clickhouse connection
type CH struct {
	conn driver.Conn
}

// Open parses the DSN and dials lazily; Ping verifies connectivity
func Open(_ context.Context, cfg Config) (*CH, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("clickhouse url is empty")
	}
	opts, err := clickhouse.ParseDSN(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	opts.ClientInfo = BuildClientInfo(cfg.Role, "")
	conn, err := clickhouse.Open(opts)
	if err != nil {
		return nil, err
	}
	return &CH{conn: conn}, nil
}

// Ping checks the server
func (c *CH) Ping(ctx context.Context) error { return c.conn.Ping(ctx) }

// Exec runs a statement without results
func (c *CH) Exec(ctx context.Context, sql string, args ...any) error {
	return c.conn.Exec(ctx, sql, args...)
}

// Insert appends rows to table in one batch; every row must match the
// table's column order
func (c *CH) Insert(ctx context.Context, table string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	batch, err := c.conn.PrepareBatch(ctx, "INSERT INTO "+table)
	if err != nil {
		return err
	}
	for i, r := range rows {
		if err := batch.Append(r...); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append row %d: %w", i, err)
		}
	}
	return batch.Send()
}

// Close closes the connection
func (c *CH) Close() error { return c.conn.Close() }
