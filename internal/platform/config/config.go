// Package config reads application settings from environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"dreammap/internal/platform/logger"
)

// Conf is a namespaced view over the environment, e.g. New().Prefix("CORE_API_")
type Conf struct {
	prefix string
	lookup func(string) (string, bool)
}

// New returns a root Conf reading os.Getenv
func New() Conf { return Conf{lookup: os.LookupEnv} }

// FromMap returns a Conf over a fixed map; used by tests and tooling
func FromMap(m map[string]string) Conf {
	return Conf{lookup: func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}}
}

// Prefix returns a child view with p appended to the prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p, lookup: c.lookup} }

// Name returns the fully qualified variable name for key
func (c Conf) Name(key string) string { return c.prefix + key }

func (c Conf) get(key string) string {
	look := c.lookup
	if look == nil {
		look = os.LookupEnv
	}
	v, _ := look(c.Name(key))
	return strings.TrimSpace(v)
}

// MustString panics when key is missing or blank
func (c Conf) MustString(key string) string {
	v := c.get(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.Name(key)).Msg("missing required env")
	}
	return v
}

// MustInt panics when key is missing or not an int
func (c Conf) MustInt(key string) int {
	s := c.MustString(key)
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.Name(key)).Str("value", s).Msg("invalid int value")
	}
	return v
}

// MustPort returns a listen address like ":4000" after checking 1..65535
func (c Conf) MustPort(key string) string {
	s := c.MustString(key)
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		logger.Get().Panic().Str("key", c.Name(key)).Str("value", s).Msg("invalid TCP port; expected 1..65535")
	}
	return ":" + s
}

// MayString returns the value or def
func (c Conf) MayString(key, def string) string {
	if v := c.get(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def; invalid values log and fall back
func (c Conf) MayInt(key string, def int) int {
	s := c.get(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Name(key)).Str("value", s).Int("default", def).Msg("invalid int; using default")
		return def
	}
	return v
}

// MayFloat64 returns the value or def; invalid values log and fall back
func (c Conf) MayFloat64(key string, def float64) float64 {
	s := c.get(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		logger.Get().Warn().Str("key", c.Name(key)).Str("value", s).Float64("default", def).Msg("invalid float64; using default")
		return def
	}
	return v
}

// MayBool returns the value or def; invalid values log and fall back
func (c Conf) MayBool(key string, def bool) bool {
	s := c.get(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Name(key)).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
		return def
	}
	return v
}

// MayDuration returns the value or def; invalid values log and fall back
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s := c.get(key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Name(key)).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
		return def
	}
	return d
}

// MayCSV splits a comma separated value, dropping blanks; def when empty
func (c Conf) MayCSV(key string, def []string) []string {
	s := c.get(key)
	if s == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the lower-cased value if it is one of allowed, def when
// empty, and panics otherwise
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(a)
		}
	}
	logger.Get().Panic().Str("key", c.Name(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
