package modkit

import (
	"net/http"

	phttp "dreammap/internal/platform/net/http"
)

// Option mutates build configuration for a module
type Option func(*buildCfg)

type buildCfg struct {
	name      string
	prefix    string
	mw        []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool
	register  func(phttp.Router)
}

// WithName sets the module name used in logs and the registry
func WithName(name string) Option {
	return func(c *buildCfg) { c.name = name }
}

// WithPrefix mounts a module under a path prefix
func WithPrefix(prefix string) Option {
	return func(c *buildCfg) { c.prefix = prefix }
}

// WithMiddlewares attaches per module middleware in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithPorts injects ports declared by another module
func WithPorts[T any](p T) Option {
	return func(c *buildCfg) { c.ports = p }
}

// WithSwagger toggles swagger docs for this module
func WithSwagger(enabled bool) Option {
	return func(c *buildCfg) { c.swaggerOn = enabled }
}

// WithRegister replaces the module's default route registration
func WithRegister(fn func(phttp.Router)) Option {
	return func(c *buildCfg) { c.register = fn }
}
