// Package module defines the minimal contract for a modkit module
package module

import (
	phttp "dreammap/internal/platform/net/http"
)

// Module mirrors modkit.Module; it lives here so port helpers avoid import
// cycles with modules that also export their own ports type
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
