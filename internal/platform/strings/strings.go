// Package strings holds small string helpers used by module wiring and adapters
package strings

import std "strings"

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// FirstNonEmpty returns the first argument with non whitespace content,
// trimmed, or "" if there is none
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if t := std.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}

// MustString returns s if it has non whitespace content, otherwise panics
// naming what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a route root like "/dreams": one leading slash, no
// trailing slash. Panics when nothing is left.
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}
