// Package http provides http transport for dreams
package http

import (
	stdhttp "net/http"
	"strings"

	"dreammap/internal/core/dream"
	"dreammap/internal/modkit/httpkit"
	perr "dreammap/internal/platform/errors"
	pnet "dreammap/internal/platform/net"
	"dreammap/internal/platform/net/http/bind"
	"dreammap/internal/services/api/dreams/domain"
	svc "dreammap/internal/services/api/dreams/service"
)

// Register mounts dreams endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/categories", h.categories)

	// submissions are quota bound per dreamer
	r.Group(func(g httpkit.Router) {
		g.Use(httpkit.Dreamer(true))
		httpkit.CreateJSON[domain.SubmitInput](g, "/", h.submit)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route GET /dreams Dreams listDreams
// @Summary Newest dreams
// @Tags Dreams
// @Produce json
// @Param category query string false "Category filter"
// @Param limit query int false "Max rows (500)"
// @Success 200 {object} domain.DreamList "ok"
// @Failure 400 {object} errors.Wire "bad query"
// @Router /dreams [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	limit, err := bind.QueryInt(q, "limit", domain.DefaultListLimit)
	if err != nil {
		return nil, err
	}
	in := domain.ListInput{Limit: limit}
	if raw := strings.TrimSpace(q.Get("category")); raw != "" {
		c, ok := dream.Parse(raw)
		if !ok {
			return nil, perr.WithField(perr.InvalidArgf("unknown category %q", raw), "category")
		}
		in.Category = c
	}
	recs, err := h.svc.List(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return domain.DreamList{Dreams: recs, Count: len(recs)}, nil
}

// swagger:route GET /dreams/categories Dreams dreamCategories
// @Summary Category catalog
// @Tags Dreams
// @Produce json
// @Success 200 {array} dream.Info "ok"
// @Router /dreams/categories [get]
func (h *handlers) categories(*stdhttp.Request) (any, error) {
	return h.svc.Categories(), nil
}

// swagger:route POST /dreams Dreams submitDream
// @Summary Submit a dream
// @Tags Dreams
// @Accept json
// @Produce json
// @Param X-Dreamer-ID header string true "Dreamer id"
// @Param payload body domain.SubmitInput true "Dream"
// @Success 201 {object} domain.Submission "created"
// @Failure 400 {object} errors.Wire "invalid body"
// @Failure 401 {object} errors.Wire "missing dreamer id"
// @Failure 429 {object} errors.Wire "daily limit reached"
// @Router /dreams [post]
func (h *handlers) submit(r *stdhttp.Request, in domain.SubmitInput) (any, error) {
	return h.svc.Submit(r.Context(), pnet.DreamerID(r.Context()), in)
}
