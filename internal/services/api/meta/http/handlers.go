// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"dreammap/internal/core/version"
	"dreammap/internal/modkit/httpkit"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// PingFunc adapts a function to Pinger
type PingFunc func(stdctx.Context) error

// Ping implements Pinger
func (f PingFunc) Ping(ctx stdctx.Context) error { return f(ctx) }

// Deps are the handler dependencies. A nil check is reported as skipped.
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Checks      map[string]Pinger
	Order       []string
	Timeout     time.Duration
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Timeout <= 0 {
		d.Timeout = 2 * time.Second
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"dreammap-api"`
	Started string `json:"started"  example:"2026-03-03T13:00:00Z"`
	Now     string `json:"now"      example:"2026-03-03T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-03-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"dreammap-api"`
	Started string `json:"started" example:"2026-03-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse ok
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Failure 503 type ReadyResponse a backend is down
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), h.deps.Timeout)
	defer cancel()

	var (
		checks  = make([]ReadyCheck, 0, len(h.deps.Order))
		overall = "ok"
	)
	for _, name := range h.deps.Order {
		c := ReadyCheck{Name: name, Status: "skipped"}
		if p := h.deps.Checks[name]; p != nil {
			c.Status = "ok"
			if err := p.Ping(ctx); err != nil {
				c.Status, c.Error = "fail", err.Error()
			}
		}
		switch {
		case c.Status == "fail":
			overall = "fail"
		case c.Status == "skipped" && overall == "ok":
			overall = "degraded"
		}
		checks = append(checks, c)
	}

	out := ReadyResponse{Status: overall, Checks: checks, Now: time.Now().UTC().Format(time.RFC3339)}
	if overall == "fail" {
		return httpkit.Response{Status: http.StatusServiceUnavailable, Body: out}, nil
	}
	return out, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}
