// Package service binds the rolling-window limiter to a history backend
package service

import (
	"context"
	"time"

	"dreammap/internal/core/ratelimit"
	"dreammap/internal/modkit"
	perr "dreammap/internal/platform/errors"
	"dreammap/internal/services/api/ratelimit/domain"
	"dreammap/internal/services/api/ratelimit/repo"
)

// Backend names accepted by CORE_RATELIMIT_BACKEND
const (
	BackendPG     = "pg"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Service defines the ratelimit service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the ratelimit service
type Svc struct {
	Repo    repo.Repo
	limiter *ratelimit.Limiter
}

// New constructs a service over r; a nil clock means time.Now
func New(r repo.Repo, p ratelimit.Policy, now func() time.Time) *Svc {
	if r == nil {
		panic("ratelimit.Service requires a non nil Repo")
	}
	return &Svc{Repo: r, limiter: ratelimit.New(p, r, now)}
}

// PolicyFrom reads CORE_RATELIMIT_MAX_COUNT and CORE_RATELIMIT_WINDOW
func PolicyFrom(deps modkit.Deps) ratelimit.Policy {
	c := deps.Cfg.Prefix("CORE_RATELIMIT_")
	def := ratelimit.DefaultPolicy()
	return ratelimit.Policy{
		MaxCount: c.MayInt("MAX_COUNT", def.MaxCount),
		Window:   c.MayDuration("WINDOW", def.Window),
	}.Normalize()
}

// RepoFrom picks the history backend. Without an explicit choice postgres
// wins over redis, and memory is the last resort.
func RepoFrom(deps modkit.Deps, p ratelimit.Policy) (repo.Repo, string) {
	def := BackendMemory
	switch {
	case deps.PG != nil:
		def = BackendPG
	case deps.RDS != nil:
		def = BackendRedis
	}
	backend := deps.Cfg.Prefix("CORE_RATELIMIT_").MayEnum("BACKEND", def, BackendPG, BackendRedis, BackendMemory)
	switch {
	case backend == BackendPG && deps.PG != nil:
		return repo.NewPG().Bind(deps.PG), BackendPG
	case backend == BackendRedis && deps.RDS != nil:
		return repo.NewRedis(deps.RDS, p.Window), BackendRedis
	}
	return repo.NewMemory(p.Window), BackendMemory
}

// Status evaluates identity
func (s *Svc) Status(ctx context.Context, identity string) (ratelimit.Status, error) {
	if identity == "" {
		return ratelimit.Status{}, perr.Unauthorizedf("missing dreamer id")
	}
	st, err := s.limiter.Status(ctx, identity)
	if err != nil {
		return ratelimit.Status{}, perr.WithOp(err, "ratelimit.status")
	}
	return st, nil
}

// Record notes a submission at the given instant
func (s *Svc) Record(ctx context.Context, identity string, at time.Time) error {
	return perr.WithOp(s.Repo.Record(ctx, identity, at), "ratelimit.record")
}

// Policy returns the effective policy
func (s *Svc) Policy() ratelimit.Policy { return s.limiter.Policy() }
