package geo

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature is one decoded GeoJSON feature. Err is set when the geometry could
// not be decoded; Geometry is nil in that case.
type Feature struct {
	Properties geojson.Properties
	Geometry   orb.Geometry
	Err        error
}

type rawFeature struct {
	Type       string             `json:"type"`
	Properties geojson.Properties `json:"properties"`
	Geometry   json.RawMessage    `json:"geometry"`
}

type rawDocument struct {
	Type     string            `json:"type"`
	Features []json.RawMessage `json:"features"`
	rawFeature
}

// DecodeFeatures reads a FeatureCollection (or a single Feature). Features
// are decoded one by one so a broken geometry only affects its own entry.
// An error is returned only when the document itself is unreadable.
func DecodeFeatures(r io.Reader) ([]Feature, error) {
	var doc rawDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("geo: decode document: %w", err)
	}
	switch doc.Type {
	case "FeatureCollection":
		out := make([]Feature, 0, len(doc.Features))
		for i, raw := range doc.Features {
			var rf rawFeature
			if err := json.Unmarshal(raw, &rf); err != nil {
				out = append(out, Feature{Err: fmt.Errorf("geo: feature %d: %w", i, err)})
				continue
			}
			out = append(out, decodeFeature(rf))
		}
		return out, nil
	case "Feature":
		return []Feature{decodeFeature(doc.rawFeature)}, nil
	default:
		return nil, fmt.Errorf("geo: unsupported document type %q", doc.Type)
	}
}

func decodeFeature(rf rawFeature) Feature {
	f := Feature{Properties: rf.Properties}
	if f.Properties == nil {
		f.Properties = geojson.Properties{}
	}
	if len(rf.Geometry) == 0 || string(rf.Geometry) == "null" {
		f.Err = fmt.Errorf("geo: missing geometry")
		return f
	}
	g, err := geojson.UnmarshalGeometry(rf.Geometry)
	if err != nil {
		f.Err = fmt.Errorf("geo: geometry: %w", err)
		return f
	}
	f.Geometry = g.Geometry()
	return f
}
