// Package domain holds the ratelimit contracts shared with other modules
package domain

import (
	"context"
	"time"

	"dreammap/internal/core/ratelimit"
	ptime "dreammap/internal/platform/time"
)

// Status is the wire form of a limiter decision
type Status struct {
	IsLimited     bool       `json:"is_limited"`
	CooldownUntil *time.Time `json:"cooldown_until,omitempty"`
	CooldownMs    *int64     `json:"cooldown_until_ms,omitempty"`
	Remaining     int        `json:"remaining"`
	MaxCount      int        `json:"max_count"`
	WindowSeconds int64      `json:"window_seconds"`
}

// FromCore projects a core decision under policy p
func FromCore(s ratelimit.Status, p ratelimit.Policy) Status {
	return Status{
		IsLimited:     s.IsLimited,
		CooldownUntil: s.CooldownUntil,
		CooldownMs:    ptime.MillisPtr(s.CooldownUntil),
		Remaining:     s.Remaining,
		MaxCount:      p.MaxCount,
		WindowSeconds: int64(p.Window / time.Second),
	}
}

// ServicePort is what the dreams module consumes
type ServicePort interface {
	// Status evaluates identity against the policy
	Status(ctx context.Context, identity string) (ratelimit.Status, error)
	// Record notes a successful submission at the given instant
	Record(ctx context.Context, identity string, at time.Time) error
	// Policy returns the effective policy
	Policy() ratelimit.Policy
}
