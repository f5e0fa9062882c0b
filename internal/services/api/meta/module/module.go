// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"context"
	"net/http"
	"time"

	"dreammap/internal/modkit"
	"dreammap/internal/modkit/httpkit"
	"dreammap/internal/platform/store"
	str "dreammap/internal/platform/strings"

	metahttp "dreammap/internal/services/api/meta/http"
)

// ServiceName is reported by health, version and service endpoints
const ServiceName = "dreammap-api"

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	name      string
	prefix    string
	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	register func(httpkit.Router)

	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		startedAt: time.Now(),
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   m.startedAt,
			Checks:      checks(deps),
			Order:       []string{"pg", "ch", "redis"},
			Timeout:     deps.Cfg.Prefix("CORE_API_").MayDuration("READY_TIMEOUT", 2*time.Second),
		})
		if external != nil {
			external(r)
		}
	}

	return m
}

func checks(deps modkit.Deps) map[string]metahttp.Pinger {
	out := map[string]metahttp.Pinger{}
	if p, ok := deps.PG.(store.Pinger); ok && deps.PG != nil {
		out["pg"] = p
	}
	if deps.CH != nil {
		out["ch"] = deps.CH
	}
	if deps.RDS != nil {
		out["redis"] = metahttp.PingFunc(func(ctx context.Context) error { return deps.RDS.Ping(ctx).Err() })
	}
	return out
}

// MountRoutes implements the modkit.Module interface
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

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
