// Package module wires dreams into the API using modkit
package module

import (
	"net/http"
	"time"

	"dreammap/internal/adapters/analytics"
	"dreammap/internal/adapters/geoip"
	"dreammap/internal/core/dream"
	"dreammap/internal/core/fuzz"
	"dreammap/internal/modkit"
	"dreammap/internal/modkit/httpkit"
	str "dreammap/internal/platform/strings"
	dhttp "dreammap/internal/services/api/dreams/http"
	drepo "dreammap/internal/services/api/dreams/repo"
	dsvc "dreammap/internal/services/api/dreams/service"
	rldomain "dreammap/internal/services/api/ratelimit/domain"
)

// Module implements the dreams module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool
	closers   []func() error

	register func(httpkit.Router)

	svc dsvc.Service
}

// Ports declares the injected ports this module needs
type Ports struct {
	Limiter rldomain.ServicePort
}

// New constructs the dreams module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("dreams"),
		modkit.WithPrefix("/dreams"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Limiter == nil {
		panic("dreams module requires Limiter port (from ratelimit)")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
	}

	var repo drepo.Repo
	if deps.PG != nil {
		repo = drepo.NewPG().Bind(deps.PG)
	} else {
		var seed []dream.Record
		if cfg.Seed {
			seed = drepo.Seed(time.Now(), fuzz.New(nil))
		}
		repo = drepo.NewMemory(seed...)
		deps.Log.Warn().Int("seeded", len(seed)).Msg("postgres disabled, dreams kept in memory")
	}

	var locator geoip.Locator = geoip.Nop{}
	if cfg.GeoIPDB != "" {
		r, err := geoip.Open(cfg.GeoIPDB)
		if err != nil {
			deps.Log.Warn().Err(err).Msg("geoip disabled")
		} else {
			locator = r
			m.closers = append(m.closers, r.Close)
		}
	}

	svc := dsvc.New(repo, injected.Limiter,
		dsvc.WithMaxRunes(cfg.MaxRunes),
		dsvc.WithLocator(locator),
		dsvc.WithEvents(analytics.NewSink(deps.CH, cfg.EventsTimeout)),
	)
	m.svc = svc
	m.ports = adaptDreamsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		dhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
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

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Close releases the geoip database when one is open
func (m *Module) Close() error {
	var first error
	for _, c := range m.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
