// Package service computes regional dream statistics
package service

import (
	"context"

	"dreammap/internal/core/aggregate"
	"dreammap/internal/core/dream"
	"dreammap/internal/core/geo"
	perr "dreammap/internal/platform/errors"
	dreamsdomain "dreammap/internal/services/api/dreams/domain"
	"dreammap/internal/services/api/regions/domain"
	"dreammap/internal/services/api/regions/repo"

	"golang.org/x/sync/errgroup"
)

// Service defines the regions service contract
type Service interface {
	domain.ServicePort
}

// Options tunes aggregation
type Options struct {
	Trending int  // symbols per region
	Workers  int  // concurrent regions in Themes
	Window   int  // dreams considered, newest first
	Holes    bool // subtract polygon holes
}

// Svc implements the regions service
type Svc struct {
	Index  *repo.Index
	Source dreamsdomain.Source
	opt    Options
}

// New constructs a regions service
func New(ix *repo.Index, src dreamsdomain.Source, opt Options) *Svc {
	if ix == nil {
		panic("regions.Service requires a non nil Index")
	}
	if src == nil {
		panic("regions.Service requires a non nil dream Source")
	}
	if opt.Workers <= 0 {
		opt.Workers = 8
	}
	if opt.Window <= 0 || opt.Window > dreamsdomain.MaxListLimit {
		opt.Window = dreamsdomain.MaxListLimit
	}
	return &Svc{Index: ix, Source: src, opt: opt}
}

// strict evaluates holes
type strict struct{ geo.Boundary }

func (s strict) Contains(lat, lng float64) bool { return s.ContainsStrict(lat, lng) }

func (s *Svc) region(b geo.Boundary) aggregate.Region {
	if s.opt.Holes {
		return strict{b}
	}
	return b
}

// Names lists the loaded regions
func (s *Svc) Names() []string { return s.Index.Names() }

// Stats summarizes the newest dreams inside one region
func (s *Svc) Stats(ctx context.Context, name string) (aggregate.RegionStats, error) {
	b, ok := s.Index.Lookup(name)
	if !ok {
		return aggregate.RegionStats{}, perr.WithField(perr.NotFoundf("unknown region %q", name), "name")
	}
	recs, err := s.Source.Recent(ctx, s.opt.Window)
	if err != nil {
		return aggregate.RegionStats{}, perr.WithOp(err, "regions.stats")
	}
	return aggregate.ComputeRegionStats(b.Name, s.region(b), recs, s.opt.Trending), nil
}

// Themes returns the dominant theme of every region holding a dream, in
// index order
func (s *Svc) Themes(ctx context.Context) ([]domain.Theme, error) {
	recs, err := s.Source.Recent(ctx, s.opt.Window)
	if err != nil {
		return nil, perr.WithOp(err, "regions.themes")
	}
	colors := map[dream.Category]string{}
	for _, c := range dream.Catalog() {
		colors[c.Category] = c.Color
	}

	all := s.Index.All()
	hits := make([]domain.Theme, len(all))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opt.Workers)
	for i, b := range all {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			in := aggregate.Filter(s.region(b), recs)
			if len(in) == 0 {
				return nil
			}
			theme := aggregate.DominantTheme(in)
			hits[i] = domain.Theme{
				Name:          b.Name,
				DominantTheme: theme,
				TotalDreams:   len(in),
				Color:         colors[theme],
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]domain.Theme, 0, len(hits))
	for _, h := range hits {
		if h.TotalDreams > 0 {
			out = append(out, h)
		}
	}
	return out, nil
}
