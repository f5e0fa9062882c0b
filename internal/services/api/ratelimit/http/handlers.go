// Package http provides http transport for ratelimit
package http

import (
	stdhttp "net/http"

	"dreammap/internal/modkit/httpkit"
	pnet "dreammap/internal/platform/net"
	"dreammap/internal/services/api/ratelimit/domain"
	svc "dreammap/internal/services/api/ratelimit/service"
)

// Register mounts ratelimit endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	r.Group(func(g httpkit.Router) {
		g.Use(httpkit.Dreamer(true))
		httpkit.Get(g, "/", h.status)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route GET /ratelimit RateLimit rateLimitStatus
// @Summary Submission quota for the calling dreamer
// @Tags RateLimit
// @Produce json
// @Param X-Dreamer-ID header string true "Dreamer id"
// @Success 200 {object} domain.Status "ok"
// @Failure 401 {object} errors.Wire "missing dreamer id"
// @Router /ratelimit [get]
func (h *handlers) status(r *stdhttp.Request) (any, error) {
	st, err := h.svc.Status(r.Context(), pnet.DreamerID(r.Context()))
	if err != nil {
		return nil, err
	}
	return domain.FromCore(st, h.svc.Policy()), nil
}
