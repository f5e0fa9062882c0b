package service

import (
	"context"
	"errors"
	"testing"

	"dreammap/internal/core/dream"
	"dreammap/internal/core/geo"
	perr "dreammap/internal/platform/errors"
	kit "dreammap/internal/platform/testkit"
	"dreammap/internal/services/api/regions/repo"

	"github.com/paulmach/orb"
)

type source struct {
	recs  []dream.Record
	err   error
	limit int
}

func (s *source) Recent(_ context.Context, limit int) ([]dream.Record, error) {
	s.limit = limit
	return s.recs, s.err
}

func square(minLng, minLat, maxLng, maxLat float64) orb.Ring {
	return orb.Ring{{minLng, minLat}, {maxLng, minLat}, {maxLng, maxLat}, {minLng, maxLat}, {minLng, minLat}}
}

func index() *repo.Index {
	return repo.NewIndex(
		geo.NewBoundary("Squareland", orb.Polygon{square(0, 0, 10, 10), square(4, 4, 6, 6)}),
		geo.NewBoundary("Emptyland", orb.Polygon{square(50, 50, 60, 60)}),
		geo.NewBoundary("Eastland", orb.MultiPolygon{{square(20, 0, 30, 10)}}),
	)
}

func rec(id string, c dream.Category, lat, lng float64, text string) dream.Record {
	return dream.Record{ID: id, Category: c, Text: text, Location: dream.Location{Lat: lat, Lng: lng}}
}

func dreams() []dream.Record {
	return []dream.Record{
		rec("a", dream.Nightmare, 2, 2, "dark forest chase"),
		rec("b", dream.Nightmare, 5, 5, "forest again"),
		rec("c", dream.Romantic, 8, 8, "library love"),
		rec("d", dream.Adventure, 5, 25, "flying ocean"),
		rec("e", dream.Mundane, -40, -40, "nowhere"),
	}
}

func TestNewPanics(t *testing.T) {
	kit.MustPanic(t, func() { New(nil, &source{}, Options{}) })
	kit.MustPanic(t, func() { New(index(), nil, Options{}) })
}

func TestStats(t *testing.T) {
	src := &source{recs: dreams()}
	s := New(index(), src, Options{Trending: 2})

	st, err := s.Stats(context.Background(), "squareland")
	if err != nil {
		t.Fatal(err)
	}
	if st.CountryName != "Squareland" || st.TotalDreams != 3 || st.DominantTheme != dream.Nightmare {
		t.Fatalf("stats %+v", st)
	}
	if len(st.TrendingSymbols) != 2 || st.TrendingSymbols[0].Word != "#forest" || st.TrendingSymbols[0].Count != 2 {
		t.Fatalf("symbols %+v", st.TrendingSymbols)
	}
	if src.limit != 500 {
		t.Fatalf("window %d", src.limit)
	}

	empty, _ := s.Stats(context.Background(), "Emptyland")
	if empty.TotalDreams != 0 || empty.DominantTheme != dream.None || empty.MoodScore != 0 {
		t.Fatalf("empty %+v", empty)
	}

	_, err = s.Stats(context.Background(), "Atlantis")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestStatsHoles(t *testing.T) {
	s := New(index(), &source{recs: dreams()}, Options{Holes: true})
	st, _ := s.Stats(context.Background(), "Squareland")
	if st.TotalDreams != 2 {
		t.Fatalf("hole must exclude dream b, total %d", st.TotalDreams)
	}
}

func TestThemes(t *testing.T) {
	s := New(index(), &source{recs: dreams()}, Options{Workers: 2})
	got, err := s.Themes(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("themes %+v", got)
	}
	if got[0].Name != "Squareland" || got[0].DominantTheme != dream.Nightmare || got[0].TotalDreams != 3 || got[0].Color != "#FF4444" {
		t.Fatalf("first %+v", got[0])
	}
	if got[1].Name != "Eastland" || got[1].DominantTheme != dream.Adventure {
		t.Fatalf("second %+v", got[1])
	}
}

func TestSourceErrors(t *testing.T) {
	s := New(index(), &source{err: errors.New("db down")}, Options{})
	if _, err := s.Stats(context.Background(), "Squareland"); err == nil {
		t.Fatal("stats swallowed source error")
	}
	if _, err := s.Themes(context.Background()); err == nil {
		t.Fatal("themes swallowed source error")
	}
}

func TestThemesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New(index(), &source{recs: dreams()}, Options{})
	if _, err := s.Themes(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("want canceled, got %v", err)
	}
}
