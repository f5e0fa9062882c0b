// Package aggregate summarizes the dreams that fall inside a region
package aggregate

import (
	"math"

	"dreammap/internal/core/dream"
	"dreammap/internal/core/geo"
	"dreammap/internal/core/symbols"
)

// RegionStats is recomputed on every call and never stored
type RegionStats struct {
	CountryName     string           `json:"country_name"`
	TotalDreams     int              `json:"total_dreams"`
	DominantTheme   dream.Category   `json:"dominant_theme"`
	MoodScore       int              `json:"mood_score"`
	TrendingSymbols []symbols.Symbol `json:"trending_symbols"`
}

// Region is anything that can answer a containment question
type Region interface {
	Contains(lat, lng float64) bool
}

var _ Region = geo.Boundary{}

// Filter returns the records located inside r, in input order
func Filter(r Region, all []dream.Record) []dream.Record {
	var out []dream.Record
	for _, d := range all {
		if r.Contains(d.Location.Lat, d.Location.Lng) {
			out = append(out, d)
		}
	}
	return out
}

// ComputeRegionStats filters all to the boundary and summarizes the subset.
// limit caps the trending symbols; zero or less means symbols.DefaultLimit.
func ComputeRegionStats(countryName string, b Region, all []dream.Record, limit int) RegionStats {
	return Summarize(countryName, Filter(b, all), limit)
}

// Summarize computes stats over records already known to be in the region
func Summarize(countryName string, inRegion []dream.Record, limit int) RegionStats {
	if len(inRegion) == 0 {
		return Empty(countryName)
	}
	if limit <= 0 {
		limit = symbols.DefaultLimit
	}
	words := symbols.NewCounter()
	for _, d := range inRegion {
		words.Add(d.Text)
	}
	return RegionStats{
		CountryName:     countryName,
		TotalDreams:     len(inRegion),
		DominantTheme:   DominantTheme(inRegion),
		MoodScore:       MoodScore(inRegion),
		TrendingSymbols: words.Top(limit),
	}
}

// Empty is the zero-dream summary
func Empty(countryName string) RegionStats {
	return RegionStats{
		CountryName:     countryName,
		DominantTheme:   dream.None,
		TrendingSymbols: []symbols.Symbol{},
	}
}

// DominantTheme returns the most frequent category. Ties go to the category
// declared first. Records with unknown categories are not counted; when no
// record has a known category the result is dream.None.
func DominantTheme(records []dream.Record) dream.Category {
	var tally [dream.Count]int
	for _, d := range records {
		if i := d.Category.Index(); i >= 0 {
			tally[i]++
		}
	}
	best, bestCount := dream.None, 0
	for i, c := range dream.All() {
		if tally[i] > bestCount {
			best, bestCount = c, tally[i]
		}
	}
	return best
}

// MoodScore is the mean category sentiment scaled to [-100, 100] and rounded
// half away from zero. An empty slice scores 0.
func MoodScore(records []dream.Record) int {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, d := range records {
		sum += d.Category.Sentiment()
	}
	score := int(math.Round(sum / float64(len(records)) * 100))
	return max(-100, min(100, score))
}
