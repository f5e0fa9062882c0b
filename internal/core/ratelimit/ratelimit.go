// Package ratelimit decides submission eligibility with a rolling window
// over an identity's past submission times
package ratelimit

import (
	"context"
	"slices"
	"time"
)

// Defaults match the product rule of two dreams per rolling day
const (
	DefaultMaxCount = 2
	DefaultWindow   = 24 * time.Hour
)

// Policy caps submissions per trailing window
type Policy struct {
	MaxCount int
	Window   time.Duration
}

// DefaultPolicy returns the two-per-day policy
func DefaultPolicy() Policy { return Policy{MaxCount: DefaultMaxCount, Window: DefaultWindow} }

// Normalize fills zero fields with defaults
func (p Policy) Normalize() Policy {
	if p.MaxCount <= 0 {
		p.MaxCount = DefaultMaxCount
	}
	if p.Window <= 0 {
		p.Window = DefaultWindow
	}
	return p
}

// Status is derived per query. CooldownUntil is nil unless IsLimited.
type Status struct {
	IsLimited     bool       `json:"is_limited"`
	CooldownUntil *time.Time `json:"cooldown_until"`
	Remaining     int        `json:"remaining"`
}

// Evaluate applies p to history as seen at now. Entries at or before
// now-Window are outside the window. When the identity is at or over the
// cap, the cooldown ends when the oldest in-window entry ages out.
func Evaluate(now time.Time, history []time.Time, p Policy) Status {
	p = p.Normalize()
	cutoff := now.Add(-p.Window)

	recent := make([]time.Time, 0, len(history))
	for _, ts := range history {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}
	slices.SortFunc(recent, func(a, b time.Time) int { return a.Compare(b) })

	if len(recent) >= p.MaxCount {
		until := recent[0].Add(p.Window)
		return Status{IsLimited: true, CooldownUntil: &until}
	}
	return Status{Remaining: p.MaxCount - len(recent)}
}

// History returns the submission times recorded for one identity. Entries
// older than since may be omitted.
type History interface {
	Timestamps(ctx context.Context, identity string, since time.Time) ([]time.Time, error)
}

// HistoryFunc adapts a function to History
type HistoryFunc func(ctx context.Context, identity string, since time.Time) ([]time.Time, error)

// Timestamps implements History
func (f HistoryFunc) Timestamps(ctx context.Context, identity string, since time.Time) ([]time.Time, error) {
	return f(ctx, identity, since)
}

// Limiter binds a policy to a clock and a history source
type Limiter struct {
	policy  Policy
	now     func() time.Time
	history History
}

// New builds a Limiter; a nil clock means time.Now
func New(p Policy, history History, now func() time.Time) *Limiter {
	if history == nil {
		panic("ratelimit.New: nil history")
	}
	if now == nil {
		now = time.Now
	}
	return &Limiter{policy: p.Normalize(), now: now, history: history}
}

// Policy returns the effective policy
func (l *Limiter) Policy() Policy { return l.policy }

// Status fetches the identity's recent history and evaluates it
func (l *Limiter) Status(ctx context.Context, identity string) (Status, error) {
	now := l.now()
	ts, err := l.history.Timestamps(ctx, identity, now.Add(-l.policy.Window))
	if err != nil {
		return Status{}, err
	}
	return Evaluate(now, ts, l.policy), nil
}
