// Package module wires identity into the API using modkit
package module

import (
	"net/http"

	"dreammap/internal/modkit"
	"dreammap/internal/modkit/httpkit"
	str "dreammap/internal/platform/strings"
	idhttp "dreammap/internal/services/api/identity/http"
	idsvc "dreammap/internal/services/api/identity/service"
)

// Module implements the identity module
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)

	svc idsvc.Service
}

// New constructs the identity module
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("identity"), modkit.WithPrefix("/identity")}, opts...)...)

	m := &Module{name: b.Name, prefix: b.Prefix, mws: b.Mw, svc: idsvc.New()}

	external := b.Register
	m.register = func(r httpkit.Router) {
		idhttp.Register(r, m.svc)
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
		m.register(rr)
	})
}

// Ports returns the identity service
func (m *Module) Ports() any { return m.svc }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }
