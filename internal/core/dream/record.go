package dream

import "time"

// Location is a latitude/longitude pair in degrees
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Record is a submitted, classified and fuzzed dream. Records are never
// mutated after creation; Location is already perturbed.
type Record struct {
	ID             string   `json:"id"`
	Text           string   `json:"text"`
	Category       Category `json:"category"`
	Summary        string   `json:"summary"`
	Interpretation string   `json:"interpretation"`
	Timestamp      int64    `json:"timestamp"`
	Location       Location `json:"location"`
	OwnerID        string   `json:"-"`
}

// Time returns the submission instant
func (r Record) Time() time.Time { return time.UnixMilli(r.Timestamp) }
