// Package analytics mirrors accepted dreams into the clickhouse event table.
// Owner ids never leave postgres.
package analytics

import (
	"context"
	"time"

	"dreammap/internal/core/dream"
	perr "dreammap/internal/platform/errors"
	"dreammap/internal/platform/store"
	"dreammap/internal/platform/store/migrate"
)

// Publisher receives accepted dreams
type Publisher interface {
	Publish(ctx context.Context, recs ...dream.Record) error
}

// Nop drops everything
type Nop struct{}

// Publish implements Publisher
func (Nop) Publish(context.Context, ...dream.Record) error { return nil }

// Sink writes batches to clickhouse
type Sink struct {
	ch      store.Clickhouse
	table   string
	timeout time.Duration
}

// NewSink builds a sink over ch; a nil ch yields Nop
func NewSink(ch store.Clickhouse, timeout time.Duration) Publisher {
	if ch == nil {
		return Nop{}
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Sink{ch: ch, table: migrate.EventsTable, timeout: timeout}
}

// Row is the column order of the event table
func Row(r dream.Record) []any {
	return []any{r.ID, string(r.Category), r.Location.Lat, r.Location.Lng, r.Time().UTC()}
}

// Publish inserts recs as one batch
func (s *Sink) Publish(ctx context.Context, recs ...dream.Record) error {
	if len(recs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, Row(r))
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.ch.Insert(ctx, s.table, rows); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "publish %d dream events", len(rows))
	}
	return nil
}
