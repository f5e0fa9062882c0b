package repo

import (
	"context"
	"time"

	"dreammap/internal/core/dream"
	"dreammap/internal/core/fuzz"
	"dreammap/internal/modkit/repokit"
	perr "dreammap/internal/platform/errors"
	"dreammap/internal/platform/store"
)

// SeedOwner owns the demo dreams
const SeedOwner = "seed"

// SeedSpread is the jitter applied to demo positions, in degrees
const SeedSpread = 0.05

type seedDream struct {
	id, text, summary, interpretation string
	category                          dream.Category
	lat, lng                          float64
	age                               time.Duration
}

var seeds = []seedDream{
	{
		id: "seed-1", category: dream.Surreal, lat: 35.6762, lng: 139.6503, age: 1_000_000 * time.Millisecond,
		text:           "I was flying over a neon city, but the buildings were made of glass and water.",
		summary:        "Flying over a glass and water neon city.",
		interpretation: "A desire for transparency and fluidity in your waking life.",
	},
	{
		id: "seed-2", category: dream.Nightmare, lat: 40.7128, lng: -74.0060, age: 5_000_000 * time.Millisecond,
		text:           "Something was chasing me through a dark forest. I couldn't run fast enough.",
		summary:        "Being chased in a dark forest.",
		interpretation: "Unresolved fears are pursuing you. Turn and face them.",
	},
	{
		id: "seed-3", category: dream.Romantic, lat: 51.5074, lng: -0.1278, age: 8_000_000 * time.Millisecond,
		text:           "I met my soulmate in a library that had infinite floors.",
		summary:        "Meeting a soulmate in an infinite library.",
		interpretation: "You seek a connection grounded in shared knowledge and eternity.",
	},
	{
		id: "seed-4", category: dream.Prophetic, lat: -33.8688, lng: 151.2093, age: 12_000_000 * time.Millisecond,
		text:           "I saw the end of the world, but it was peaceful. The sun turned blue.",
		summary:        "Peaceful apocalypse with a blue sun.",
		interpretation: "Change is coming. It is vast, but you are ready to accept it.",
	},
	{
		id: "seed-5", category: dream.Mundane, lat: 48.8566, lng: 2.3522, age: 200_000 * time.Millisecond,
		text:           "I was just doing my laundry, but the machine kept eating my socks.",
		summary:        "Washing machine eating socks.",
		interpretation: "Small frustrations are eating away at your time. Seek efficiency.",
	},
}

// Seed returns the demo dreams stamped relative to now with jittered
// positions; a nil fuzzer leaves positions exact
func Seed(now time.Time, f *fuzz.Fuzzer) []dream.Record {
	out := make([]dream.Record, 0, len(seeds))
	for _, s := range seeds {
		loc := dream.Location{Lat: s.lat, Lng: s.lng}
		if f != nil {
			loc = f.Jitter(loc, SeedSpread)
		}
		out = append(out, dream.Record{
			ID:             s.id,
			Text:           s.text,
			Category:       s.category,
			Summary:        s.summary,
			Interpretation: s.interpretation,
			Timestamp:      now.Add(-s.age).UnixMilli(),
			Location:       loc,
			OwnerID:        SeedOwner,
		})
	}
	return out
}

const seededSQL = `SELECT EXISTS (SELECT 1 FROM dreams WHERE id = $1)`

// SeedInto writes the records not yet present in one transaction and
// returns the ones it inserted; rerunning it is a no-op
func SeedInto(ctx context.Context, db repokit.TxRunner, recs []dream.Record) ([]dream.Record, error) {
	var written []dream.Record
	err := db.Tx(ctx, func(q store.RowQuerier) error {
		written = written[:0]
		r := PG{}.Bind(q)
		for _, rec := range recs {
			exists, err := store.Scalar[bool](ctx, q, seededSQL, rec.ID)
			if err != nil {
				return perr.FromPostgres(err, "check seed dream")
			}
			if exists {
				continue
			}
			if err := r.Insert(ctx, rec); err != nil {
				return err
			}
			written = append(written, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return written, nil
}
