// Package domain holds the dreams contracts shared with other modules
package domain

import (
	"context"

	"dreammap/internal/core/dream"
)

// ServicePort is the dreams service surface
type ServicePort interface {
	Submit(ctx context.Context, owner string, in SubmitInput) (Submission, error)
	List(ctx context.Context, in ListInput) ([]dream.Record, error)
	Categories() []dream.Info
}

// Source feeds regional aggregation with the newest dreams
type Source interface {
	Recent(ctx context.Context, limit int) ([]dream.Record, error)
}
