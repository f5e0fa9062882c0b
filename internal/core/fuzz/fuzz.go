// Package fuzz perturbs coordinates before they are stored. The true
// location never leaves this package.
package fuzz

import (
	"math"
	"math/rand/v2"

	"dreammap/internal/core/dream"
)

// Offset bounds in degrees, applied independently to each axis
const (
	MinOffset = 0.09
	MaxOffset = 0.45
)

// Rand is the randomness needed here; *rand.Rand satisfies it
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Fuzzer moves points by a random offset and hands out random locations
type Fuzzer struct {
	rnd Rand
}

// New returns a Fuzzer; nil uses the process-wide generator
func New(r Rand) *Fuzzer {
	if r == nil {
		r = globalRand{}
	}
	return &Fuzzer{rnd: r}
}

// Seeded returns a Fuzzer with a deterministic PCG stream. Unlike New(nil)
// it must not be shared between goroutines.
func Seeded(seed1, seed2 uint64) *Fuzzer {
	return New(rand.New(rand.NewPCG(seed1, seed2)))
}

// Apply shifts lat and lng each by [MinOffset, MaxOffset) degrees with a
// random sign. Latitude is clamped to the poles, longitude wraps.
func (f *Fuzzer) Apply(lat, lng float64) dream.Location {
	return dream.Location{
		Lat: ClampLat(lat + f.offset()),
		Lng: WrapLng(lng + f.offset()),
	}
}

// Jitter shifts each axis by up to ±spread degrees
func (f *Fuzzer) Jitter(loc dream.Location, spread float64) dream.Location {
	return dream.Location{
		Lat: ClampLat(loc.Lat + (f.rnd.Float64()*2-1)*spread),
		Lng: WrapLng(loc.Lng + (f.rnd.Float64()*2-1)*spread),
	}
}

// Random picks a location with lat in [-70, 70) and lng in [-180, 180)
func (f *Fuzzer) Random() dream.Location {
	return dream.Location{
		Lat: f.rnd.Float64()*140 - 70,
		Lng: f.rnd.Float64()*360 - 180,
	}
}

func (f *Fuzzer) offset() float64 {
	d := f.rnd.Float64()*(MaxOffset-MinOffset) + MinOffset
	if f.rnd.Float64() < 0.5 {
		return -d
	}
	return d
}

// ClampLat bounds lat to [-90, 90]
func ClampLat(lat float64) float64 { return math.Max(-90, math.Min(90, lat)) }

// WrapLng folds lng into [-180, 180]
func WrapLng(lng float64) float64 {
	if lng >= -180 && lng <= 180 {
		return lng
	}
	w := math.Mod(lng+180, 360)
	if w < 0 {
		w += 360
	}
	return w - 180
}
