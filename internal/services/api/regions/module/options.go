package module

import (
	"dreammap/internal/core/symbols"
	"dreammap/internal/platform/config"
	dreamsdomain "dreammap/internal/services/api/dreams/domain"
)

// Options controls boundary loading and aggregation
type Options struct {
	GeoJSON  string // file path or http(s) url; empty loads nothing
	Trending int
	Workers  int
	Window   int // newest dreams aggregated; capped at the dreams list limit
	Holes    bool
}

// FromConfig reads CORE_REGIONS_* values
func FromConfig(cfg config.Conf) Options {
	rc := cfg.Prefix("CORE_REGIONS_")
	return Options{
		GeoJSON:  rc.MayString("GEOJSON", ""),
		Trending: rc.MayInt("TRENDING", symbols.DefaultLimit),
		Workers:  rc.MayInt("WORKERS", 8),
		Window:   rc.MayInt("WINDOW", dreamsdomain.MaxListLimit),
		Holes:    rc.MayBool("HOLES", false),
	}
}

// Clamped caps Window at the dreams list limit; ok is false when the
// configured value had to be lowered
func (o Options) Clamped() (Options, bool) {
	if o.Window > dreamsdomain.MaxListLimit {
		o.Window = dreamsdomain.MaxListLimit
		return o, false
	}
	return o, true
}
