package module

import (
	"time"

	"dreammap/internal/platform/config"
	"dreammap/internal/services/api/dreams/domain"
)

// Options controls submission behavior
type Options struct {
	MaxRunes      int           // sanitized text bound
	GeoIPDB       string        // mmdb path; empty disables ip lookup
	EventsTimeout time.Duration // clickhouse publish deadline
	Seed          bool          // seed the memory store with demo dreams
}

// FromConfig reads CORE_DREAMS_* and CORE_GEOIP_* values
func FromConfig(cfg config.Conf) Options {
	dc := cfg.Prefix("CORE_DREAMS_")
	return Options{
		MaxRunes:      dc.MayInt("MAX_RUNES", domain.DefaultMaxRunes),
		GeoIPDB:       cfg.Prefix("CORE_GEOIP_").MayString("DB", ""),
		EventsTimeout: dc.MayDuration("EVENTS_TIMEOUT", 2*time.Second),
		Seed:          dc.MayBool("SEED", true),
	}
}
