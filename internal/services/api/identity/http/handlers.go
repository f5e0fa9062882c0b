// Package http provides http transport for identity
package http

import (
	stdhttp "net/http"

	"dreammap/internal/modkit/httpkit"
	svc "dreammap/internal/services/api/identity/service"
)

// Register mounts identity endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	r.Post("/", httpkit.Handle(h.issue))
	r.Group(func(g httpkit.Router) {
		g.Use(httpkit.Dreamer(true))
		httpkit.Get(g, "/", h.resolve)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route POST /identity Identity issueIdentity
// @Summary Issue a fresh anonymous dreamer id
// @Tags Identity
// @Produce json
// @Success 201 {object} domain.Identity "created"
// @Router /identity [post]
func (h *handlers) issue(r *stdhttp.Request) httpkit.Response {
	id, err := h.svc.Issue(r.Context())
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.Created(id)
}

// swagger:route GET /identity Identity resolveIdentity
// @Summary Echo the caller's dreamer id
// @Tags Identity
// @Produce json
// @Param X-Dreamer-ID header string true "Dreamer id"
// @Success 200 {object} domain.Identity "ok"
// @Failure 401 {object} errors.Wire "missing dreamer id"
// @Router /identity [get]
func (h *handlers) resolve(r *stdhttp.Request) (any, error) {
	return h.svc.Resolve(r.Context())
}
