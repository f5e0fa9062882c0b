// Package http provides http transport for regions
package http

import (
	stdhttp "net/http"

	"dreammap/internal/modkit/httpkit"
	"dreammap/internal/services/api/regions/domain"
	svc "dreammap/internal/services/api/regions/service"
)

// Register mounts regions endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.names)
	httpkit.Get(r, "/themes", h.themes)
	httpkit.Get(r, "/{name}/stats", h.stats)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /regions Regions listRegions
// @Summary Loaded region names
// @Tags Regions
// @Produce json
// @Success 200 {object} domain.RegionList "ok"
// @Router /regions [get]
func (h *handlers) names(*stdhttp.Request) (any, error) {
	names := h.svc.Names()
	return domain.RegionList{Regions: names, Count: len(names)}, nil
}

// swagger:route GET /regions/themes Regions regionThemes
// @Summary Dominant theme per region with dreams
// @Tags Regions
// @Produce json
// @Success 200 {array} domain.Theme "ok"
// @Router /regions/themes [get]
func (h *handlers) themes(r *stdhttp.Request) (any, error) {
	return h.svc.Themes(r.Context())
}

// swagger:route GET /regions/{name}/stats Regions regionStats
// @Summary Aggregate statistics for one region
// @Tags Regions
// @Produce json
// @Param name path string true "Region name"
// @Success 200 {object} aggregate.RegionStats "ok"
// @Failure 404 {object} errors.Wire "unknown region"
// @Router /regions/{name}/stats [get]
func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	// chi hands back the already decoded segment
	return h.svc.Stats(r.Context(), httpkit.URLParam(r, "name"))
}
