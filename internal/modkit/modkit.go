package modkit

import (
	phttp "dreammap/internal/platform/net/http"
)

// Module is the surface API modules expose to the composer
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns the module's port set for cross wiring
	Ports() any
	// Name returns the module name
	Name() string
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
