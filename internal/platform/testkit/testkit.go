// Package testkit provides small test helpers shared across packages
package testkit

import (
	"strings"
	"testing"
)

// MustPanic fails unless fn panics
func MustPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustNotPanic fails if fn panics
func MustNotPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain fails unless haystack contains needle; long haystacks are
// shortened in the failure message
func MustContain(t testing.TB, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		return
	}
	shown := haystack
	if len(shown) > 2048 {
		shown = shown[:2048] + "...(truncated)"
	}
	t.Fatalf("expected output to contain %q\n\ngot:\n%s", needle, shown)
}

// MustNotContain fails if haystack contains needle
func MustNotContain(t testing.TB, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		t.Fatalf("expected output not to contain %q", needle)
	}
}
