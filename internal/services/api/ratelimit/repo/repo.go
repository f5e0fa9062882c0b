// Package repo provides submission history backends for the limiter
package repo

import (
	"context"
	"time"

	"dreammap/internal/core/ratelimit"
	"dreammap/internal/modkit/repokit"
	perr "dreammap/internal/platform/errors"
	"dreammap/internal/platform/store"
)

// Repo is a history source that can also record new submissions
type Repo interface {
	ratelimit.History
	Record(ctx context.Context, identity string, at time.Time) error
}

type (
	// PG binds the history to postgres
	PG struct{}
	// queries reads the dreams table
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the postgres history
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const historySQL = `
SELECT "timestamp"
FROM dreams
WHERE user_id = $1 AND "timestamp" > $2
ORDER BY "timestamp" ASC`

// Timestamps lists the owner's submissions newer than since
func (r *queries) Timestamps(ctx context.Context, identity string, since time.Time) ([]time.Time, error) {
	ms, err := store.Many(ctx, r.q, func(row store.Row) (int64, error) {
		var v int64
		err := row.Scan(&v)
		return v, err
	}, historySQL, identity, since.UnixMilli())
	if err != nil {
		return nil, perr.FromPostgres(err, "ratelimit history")
	}
	out := make([]time.Time, len(ms))
	for i, v := range ms {
		out[i] = time.UnixMilli(v)
	}
	return out, nil
}

// Record is a no-op; the dream row itself is the history entry
func (r *queries) Record(context.Context, string, time.Time) error { return nil }
