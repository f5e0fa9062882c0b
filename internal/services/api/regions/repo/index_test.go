package repo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	perr "dreammap/internal/platform/errors"
)

const collection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "Squareland"},
     "geometry": {"type": "Polygon", "coordinates": [
       [[0,0],[10,0],[10,10],[0,10],[0,0]],
       [[4,4],[6,4],[6,6],[4,6],[4,4]]
     ]}},
    {"type": "Feature", "properties": {"ADMIN": "Eastland"},
     "geometry": {"type": "MultiPolygon", "coordinates": [
       [[[20,0],[30,0],[30,10],[20,10],[20,0]]],
       [[[40,0],[45,0],[45,5],[40,5],[40,0]]]
     ]}},
    {"type": "Feature", "properties": {"name": "  ", "name_long": "Pointland"},
     "geometry": {"type": "Point", "coordinates": [1, 1]}},
    {"type": "Feature", "properties": {"NAME": "Nullland"}, "geometry": null},
    {"type": "Feature", "properties": {"iso": "XX"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,0]]]}},
    {"type": "Feature", "properties": {"name": "Squareland"},
     "geometry": {"type": "Polygon", "coordinates": [[[90,0],[91,0],[91,1],[90,0]]]}}
  ]
}`

func writeFixture(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "countries.geo.json")
	if err := os.WriteFile(p, []byte(collection), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadFile(t *testing.T) {
	ix, err := Load(context.Background(), writeFixture(t), nil)
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Join(ix.Names(), ",")
	if got != "Squareland,Eastland,Pointland,Nullland" {
		t.Fatalf("names %s", got)
	}

	sq, ok := ix.Lookup("Squareland")
	if !ok || !sq.Contains(5, 5) {
		t.Fatal("first Squareland must win and contain its hole by default")
	}
	if sq.ContainsStrict(5, 5) {
		t.Fatal("strict containment subtracts the hole")
	}
	if ea, _ := ix.Lookup("eastland"); !ea.Contains(2, 42) {
		t.Fatal("case folded lookup or multipolygon member failed")
	}
	if pl, _ := ix.Lookup("Pointland"); pl.Valid() || pl.Contains(1, 1) {
		t.Fatal("point geometry must contain nothing")
	}
	if nl, ok := ix.Lookup("Nullland"); !ok || nl.Contains(0, 0) {
		t.Fatal("null geometry kept but empty")
	}
	if _, ok := ix.Lookup("Atlantis"); ok {
		t.Fatal("unknown region resolved")
	}
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()
	if _, err := Load(ctx, filepath.Join(t.TempDir(), "missing.json"), nil); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing file: %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	_ = os.WriteFile(bad, []byte(`{"type":"Topology"}`), 0o600)
	if _, err := Load(ctx, bad, nil); err == nil {
		t.Fatal("unsupported document accepted")
	}
}

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/countries.geo.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(collection))
	}))
	defer srv.Close()

	ix, err := Load(context.Background(), srv.URL+"/countries.geo.json", srv.Client())
	if err != nil {
		t.Fatal(err)
	}
	if ix.Len() != 4 {
		t.Fatalf("len %d", ix.Len())
	}

	_, err = Load(context.Background(), srv.URL+"/nope", srv.Client())
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want unavailable, got %v", err)
	}
}
