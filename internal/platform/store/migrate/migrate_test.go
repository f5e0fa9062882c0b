package migrate

import (
	"context"
	"io/fs"
	"strings"
	"testing"
)

func TestFS_ContainsGooseMigrations(t *testing.T) {
	entries, err := fs.ReadDir(FS(), ".")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) == 0 {
		t.Fatal("no migrations embedded")
	}
	b, err := fs.ReadFile(FS(), entries[0].Name())
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	for _, want := range []string{"-- +goose Up", "-- +goose Down", "CREATE TABLE IF NOT EXISTS dreams"} {
		if !strings.Contains(s, want) {
			t.Fatalf("migration missing %q", want)
		}
	}
}

func TestClickhouse_NilIsNoop(t *testing.T) {
	if err := Clickhouse(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
}
