package module

import (
	"context"

	"dreammap/internal/core/dream"
	"dreammap/internal/services/api/dreams/domain"
	dsvc "dreammap/internal/services/api/dreams/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptDreamsPort struct{ svc dsvc.Service }

// Submit stores a dream for owner
func (a adaptDreamsPort) Submit(ctx context.Context, owner string, in domain.SubmitInput) (domain.Submission, error) {
	return a.svc.Submit(ctx, owner, in)
}

// List returns the newest dreams
func (a adaptDreamsPort) List(ctx context.Context, in domain.ListInput) ([]dream.Record, error) {
	return a.svc.List(ctx, in)
}

// Categories lists the category catalog
func (a adaptDreamsPort) Categories() []dream.Info { return a.svc.Categories() }

// Recent feeds regional aggregation
func (a adaptDreamsPort) Recent(ctx context.Context, limit int) ([]dream.Record, error) {
	return a.svc.Recent(ctx, limit)
}
