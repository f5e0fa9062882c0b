package httpkit

import (
	"net/http"
	"strings"
)

// MountAPI mounts a scope under /api/{version} with the given middleware
//
//	httpkit.MountAPIV1(r, httpkit.CommonStack(opts), func(api httpkit.Router) {
//	  dreams.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, "/api/"+strings.Trim(version, "/"), mw, mount)
}

// MountAPIV1 is MountAPI for v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
