package modkit

import (
	"net/http"

	phttp "dreammap/internal/platform/net/http"
)

// Built is the resolved option set modules read
type Built struct {
	Name      string
	Prefix    string
	Mw        []func(http.Handler) http.Handler
	Ports     any
	SwaggerOn bool

	// Register is nil unless a caller overrides route registration
	Register func(phttp.Router)
}

// Build applies opts in order
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		SwaggerOn: c.swaggerOn,
		Register:  c.register,
	}
}

// PortsAs returns the injected ports as T
func PortsAs[T any](b Built) (T, bool) {
	v, ok := b.Ports.(T)
	return v, ok
}
