// Package raw is the bootstrap env reader used by the logger. It must not
// import the logger.
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a prefixed view over the environment
type Conf struct{ prefix string }

// New returns a root view
func New() Conf { return Conf{} }

// Prefix returns a child view, e.g. New().Prefix("LOG_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) value(key string) string { return strings.TrimSpace(os.Getenv(c.prefix + key)) }

// Get returns the trimmed value or def
func (c Conf) Get(key, def string) string {
	if v := c.value(key); v != "" {
		return v
	}
	return def
}

// GetBool accepts 1/true/yes/on (any case); anything else set is false
func (c Conf) GetBool(key string, def bool) bool {
	switch v := strings.ToLower(c.value(key)); v {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// GetInt returns a non-negative integer or def
func (c Conf) GetInt(key string, def int) int {
	n, err := strconv.Atoi(c.value(key))
	if err != nil || n < 0 {
		return def
	}
	return n
}
