package httpkit

import "net/http"

// MountUnder mounts a subrouter at prefix with per module middleware
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	if prefix == "" || prefix == "/" {
		r.Group(func(g Router) {
			if len(mw) > 0 {
				g.Use(mw...)
			}
			mount(g)
		})
		return
	}
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}
