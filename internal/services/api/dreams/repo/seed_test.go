package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"dreammap/internal/platform/store"
)

type fakeTag int64

func (t fakeTag) String() string      { return "INSERT" }
func (t fakeTag) RowsAffected() int64 { return int64(t) }

type boolRow bool

func (b boolRow) Scan(dest ...any) error {
	*(dest[0].(*bool)) = bool(b)
	return nil
}

// fakeDB runs every transaction inline against itself
type fakeDB struct {
	existing map[string]bool
	inserted []string
	failOn   string
	txs      int
}

func (f *fakeDB) Exec(_ context.Context, _ string, args ...any) (store.CommandTag, error) {
	id := args[0].(string)
	if id == f.failOn {
		return nil, errors.New("disk full")
	}
	f.inserted = append(f.inserted, id)
	return fakeTag(1), nil
}

func (f *fakeDB) Query(context.Context, string, ...any) (store.Rows, error) {
	return nil, errors.New("not used")
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, args ...any) store.Row {
	return boolRow(f.existing[args[0].(string)])
}

func (f *fakeDB) Tx(_ context.Context, fn func(q store.RowQuerier) error) error {
	f.txs++
	return fn(f)
}

func TestSeedIntoSkipsExisting(t *testing.T) {
	recs := Seed(time.UnixMilli(1_700_000_000_000), nil)
	db := &fakeDB{existing: map[string]bool{"seed-2": true}}

	written, err := SeedInto(context.Background(), db, recs)
	if err != nil {
		t.Fatal(err)
	}
	if db.txs != 1 {
		t.Fatalf("transactions %d want 1", db.txs)
	}
	if len(written) != 4 || len(db.inserted) != 4 {
		t.Fatalf("written %d inserted %v", len(written), db.inserted)
	}
	for _, id := range db.inserted {
		if id == "seed-2" {
			t.Fatal("existing seed inserted again")
		}
	}

	db = &fakeDB{existing: map[string]bool{"seed-1": true, "seed-2": true, "seed-3": true, "seed-4": true, "seed-5": true}}
	if written, err := SeedInto(context.Background(), db, recs); err != nil || len(written) != 0 {
		t.Fatalf("rerun wrote %d, err %v", len(written), err)
	}
}

func TestSeedIntoInsertFailure(t *testing.T) {
	recs := Seed(time.UnixMilli(1_700_000_000_000), nil)
	db := &fakeDB{failOn: "seed-3"}

	written, err := SeedInto(context.Background(), db, recs)
	if err == nil {
		t.Fatal("expected insert error")
	}
	if written != nil {
		t.Fatalf("failed transaction reported %d rows", len(written))
	}
}
