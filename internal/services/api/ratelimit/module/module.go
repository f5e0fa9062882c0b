// Package module wires ratelimit into the API using modkit
package module

import (
	"net/http"

	"dreammap/internal/modkit"
	"dreammap/internal/modkit/httpkit"
	str "dreammap/internal/platform/strings"
	rlhttp "dreammap/internal/services/api/ratelimit/http"
	rlsvc "dreammap/internal/services/api/ratelimit/service"
)

// Module implements the ratelimit module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool
	backend   string

	register func(httpkit.Router)

	svc rlsvc.Service
}

// New constructs the ratelimit module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("ratelimit"), modkit.WithPrefix("/ratelimit")}, opts...)...)

	policy := rlsvc.PolicyFrom(deps)
	repo, backend := rlsvc.RepoFrom(deps, policy)
	svc := rlsvc.New(repo, policy, nil)

	deps.Log.Info().
		Str("backend", backend).
		Int("max_count", policy.MaxCount).
		Dur("window", policy.Window).
		Msg("ratelimit ready")

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		backend:   backend,
		svc:       svc,
	}
	m.ports = Ports{Limiter: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		rlhttp.Register(r, m.svc)
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

// Backend reports which history store is in use
func (m *Module) Backend() string { return m.backend }
