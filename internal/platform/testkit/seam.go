package testkit

import (
	"sync"
	"testing"
	"time"
)

var seamMu sync.Mutex

// Swap replaces *target for the duration of the test
func Swap[T any](t testing.TB, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// Serial holds a global lock for the rest of the test so tests that swap
// package level seams do not interleave
func Serial(t testing.TB) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}

// Clock is a manual clock for code that takes a func() time.Time
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts a clock at t
func NewClock(t time.Time) *Clock { return &Clock{now: t} }

// Now returns the current manual time
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Set moves the clock to t
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}
