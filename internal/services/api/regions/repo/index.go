// Package repo loads named country boundaries from GeoJSON
package repo

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"

	"dreammap/internal/core/geo"
	perr "dreammap/internal/platform/errors"
	"dreammap/internal/platform/logger"
)

// WorldGeoJSONURL is the public countries collection the map client draws
const WorldGeoJSONURL = "https://raw.githubusercontent.com/johan/world.geo.json/master/countries.geo.json"

// NameKeys are the feature properties tried, in order, for a region name
var NameKeys = []string{"name", "NAME", "ADMIN", "name_long"}

// Index is an immutable, ordered set of boundaries keyed by name
type Index struct {
	list   []geo.Boundary
	byName map[string]int
	folded map[string]int
}

// NewIndex keys boundaries by name; later duplicates are dropped
func NewIndex(bs ...geo.Boundary) *Index {
	ix := &Index{byName: map[string]int{}, folded: map[string]int{}}
	for _, b := range bs {
		if b.Name == "" {
			continue
		}
		if _, dup := ix.byName[b.Name]; dup {
			continue
		}
		ix.byName[b.Name] = len(ix.list)
		if _, ok := ix.folded[strings.ToLower(b.Name)]; !ok {
			ix.folded[strings.ToLower(b.Name)] = len(ix.list)
		}
		ix.list = append(ix.list, b)
	}
	return ix
}

// Len reports the number of regions
func (ix *Index) Len() int { return len(ix.list) }

// All returns the boundaries in load order
func (ix *Index) All() []geo.Boundary { return ix.list }

// Names returns region names in load order
func (ix *Index) Names() []string {
	out := make([]string, len(ix.list))
	for i, b := range ix.list {
		out[i] = b.Name
	}
	return out
}

// Lookup matches name exactly first, then case-insensitively
func (ix *Index) Lookup(name string) (geo.Boundary, bool) {
	name = strings.TrimSpace(name)
	if i, ok := ix.byName[name]; ok {
		return ix.list[i], true
	}
	if i, ok := ix.folded[strings.ToLower(name)]; ok {
		return ix.list[i], true
	}
	return geo.Boundary{}, false
}

// FromFeatures names each feature via NameKeys. Unnamed features are skipped;
// features with broken geometry are kept so they show up in listings but
// contain nothing.
func FromFeatures(fs []geo.Feature) *Index {
	log := logger.Named("regions")
	bs := make([]geo.Boundary, 0, len(fs))
	for i, f := range fs {
		name := FeatureName(f)
		if name == "" {
			log.Warn().Int("feature", i).Msg("unnamed feature skipped")
			continue
		}
		if f.Err != nil {
			log.Warn().Err(f.Err).Str("region", name).Msg("region geometry unusable")
		}
		b := geo.NewBoundary(name, f.Geometry)
		if f.Err == nil && !b.Valid() {
			log.Warn().Str("region", name).Msg("region geometry is not a polygon")
		}
		bs = append(bs, b)
	}
	return NewIndex(bs...)
}

// FeatureName returns the first non blank NameKeys property
func FeatureName(f geo.Feature) string {
	for _, k := range NameKeys {
		if v, ok := f.Properties[k].(string); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}

// Load reads a FeatureCollection from a file path or an http(s) url
func Load(ctx context.Context, src string, client *http.Client) (*Index, error) {
	rc, err := open(ctx, src, client)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	fs, err := geo.DecodeFeatures(rc)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "decode %s", src)
	}
	return FromFeatures(fs), nil
}

func open(ctx context.Context, src string, client *http.Client) (io.ReadCloser, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		f, err := os.Open(src)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "open boundaries %s", src)
		}
		return f, nil
	}
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "boundaries url %s", src)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "fetch boundaries %s", src)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, perr.Newf(perr.ErrorCodeUnavailable, "fetch boundaries %s: %s", src, resp.Status)
	}
	return resp.Body, nil
}
