// Package module wires regions into the API using modkit
package module

import (
	"context"
	"net/http"
	"time"

	"dreammap/internal/modkit"
	"dreammap/internal/modkit/httpkit"
	str "dreammap/internal/platform/strings"
	dreamsdomain "dreammap/internal/services/api/dreams/domain"
	rhttp "dreammap/internal/services/api/regions/http"
	rrepo "dreammap/internal/services/api/regions/repo"
	rsvc "dreammap/internal/services/api/regions/service"
)

// Module implements the regions module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	register func(httpkit.Router)

	svc rsvc.Service
}

// Ports declares the injected ports this module needs
type Ports struct {
	Source dreamsdomain.Source
	// Index overrides loading from CORE_REGIONS_GEOJSON
	Index *rrepo.Index
}

// New constructs the regions module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("regions"),
		modkit.WithPrefix("/regions"),
	}, opts...)...)

	cfg, ok := FromConfig(deps.Cfg).Clamped()
	if !ok {
		deps.Log.Warn().Int("window", cfg.Window).Msg("CORE_REGIONS_WINDOW above the dreams list limit, capped")
	}

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Source == nil {
		panic("regions module requires a dream Source port (from dreams)")
	}

	ix := injected.Index
	if ix == nil {
		ix = load(deps, cfg.GeoJSON)
	}

	svc := rsvc.New(ix, injected.Source, rsvc.Options{
		Trending: cfg.Trending,
		Workers:  cfg.Workers,
		Window:   cfg.Window,
		Holes:    cfg.Holes,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		svc:       svc,
	}
	m.ports = svc

	external := b.Register
	m.register = func(r httpkit.Router) {
		rhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// load never fails the process; a missing collection serves no regions
func load(deps modkit.Deps, src string) *rrepo.Index {
	if src == "" {
		deps.Log.Warn().Msg("CORE_REGIONS_GEOJSON unset, no regions loaded")
		return rrepo.NewIndex()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ix, err := rrepo.Load(ctx, src, &http.Client{Timeout: 30 * time.Second})
	if err != nil {
		deps.Log.Error().Err(err).Str("source", src).Msg("region boundaries unavailable")
		return rrepo.NewIndex()
	}
	deps.Log.Info().Int("regions", ix.Len()).Str("source", src).Msg("region boundaries loaded")
	return ix
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }
