package testkit

import (
	"testing"
	"time"
)

func TestMustPanic(t *testing.T) {
	t.Parallel()
	MustPanic(t, func() { panic("boom") })
}

func TestMustNotPanic(t *testing.T) {
	t.Parallel()
	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	t.Parallel()
	MustContain(t, "alpha beta gamma", "beta")
	MustNotContain(t, "alpha beta gamma", "delta")
}

func TestClock(t *testing.T) {
	t.Parallel()
	start := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	c := NewClock(start)
	c.Advance(90 * time.Minute)
	if got := c.Now(); !got.Equal(start.Add(90 * time.Minute)) {
		t.Fatalf("Now() = %v", got)
	}
	c.Set(start)
	if !c.Now().Equal(start) {
		t.Fatalf("Set did not take effect")
	}
}
