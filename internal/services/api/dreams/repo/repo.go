// Package repo provides dream persistence
package repo

import (
	"context"

	"dreammap/internal/core/dream"
	"dreammap/internal/modkit/repokit"
	perr "dreammap/internal/platform/errors"
	"dreammap/internal/platform/store"
)

// Filter narrows List; a zero Category matches everything
type Filter struct {
	Category dream.Category
	Limit    int
}

// Repo is the persistence surface for dreams
type Repo interface {
	Insert(ctx context.Context, rec dream.Record) error
	List(ctx context.Context, f Filter) ([]dream.Record, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const insertSQL = `
INSERT INTO dreams (id, user_id, text, category, summary, interpretation, "timestamp", location_lat, location_lng)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// Insert stores one record
func (r *queries) Insert(ctx context.Context, rec dream.Record) error {
	err := store.ExecOne(ctx, r.q, insertSQL,
		rec.ID, rec.OwnerID, rec.Text, string(rec.Category), rec.Summary, rec.Interpretation,
		rec.Timestamp, rec.Location.Lat, rec.Location.Lng,
	)
	return perr.FromPostgres(err, "insert dream")
}

const listSQL = `
SELECT id, user_id, text, category, summary, interpretation, "timestamp", location_lat, location_lng
FROM dreams
WHERE ($1 = '' OR category = $1)
ORDER BY "timestamp" DESC, id
LIMIT $2`

// List returns the newest dreams first
func (r *queries) List(ctx context.Context, f Filter) ([]dream.Record, error) {
	out, err := store.Many(ctx, r.q, scanRecord, listSQL, string(f.Category), f.Limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list dreams")
	}
	return out, nil
}

func scanRecord(row store.Row) (dream.Record, error) {
	var (
		rec dream.Record
		cat string
	)
	err := row.Scan(&rec.ID, &rec.OwnerID, &rec.Text, &cat, &rec.Summary, &rec.Interpretation,
		&rec.Timestamp, &rec.Location.Lat, &rec.Location.Lng)
	rec.Category = dream.Category(cat)
	return rec, err
}
