// Package domain holds the regions contracts
package domain

import (
	"context"

	"dreammap/internal/core/aggregate"
	"dreammap/internal/core/dream"
)

// Theme colors one region on the map
type Theme struct {
	Name          string         `json:"name"`
	DominantTheme dream.Category `json:"dominant_theme"`
	TotalDreams   int            `json:"total_dreams"`
	Color         string         `json:"color"`
}

// RegionList is the GET /regions body
type RegionList struct {
	Regions []string `json:"regions"`
	Count   int      `json:"count"`
}

// ServicePort is the regions service surface
type ServicePort interface {
	Names() []string
	Stats(ctx context.Context, name string) (aggregate.RegionStats, error)
	Themes(ctx context.Context) ([]Theme, error)
}
