// Package geo answers point-in-region questions against named Polygon and
// MultiPolygon boundaries. Coordinates follow GeoJSON order ([lng, lat]).
package geo

import "github.com/paulmach/orb"

// Boundary is a named region geometry. Only orb.Polygon and orb.MultiPolygon
// are understood; any other geometry (or none) contains nothing.
type Boundary struct {
	Name     string
	Geometry orb.Geometry

	// outer ring bounds, one per polygon, filled by NewBoundary
	bounds []orb.Bound
}

// NewBoundary builds a boundary and caches the outer ring bounding boxes
// used to reject far away points early
func NewBoundary(name string, g orb.Geometry) Boundary {
	b := Boundary{Name: name, Geometry: g}
	polys := polygons(g)
	if len(polys) == 0 {
		return b
	}
	b.bounds = make([]orb.Bound, len(polys))
	for i, p := range polys {
		if len(p) == 0 {
			b.bounds[i] = orb.Bound{Min: orb.Point{1, 1}, Max: orb.Point{-1, -1}}
			continue
		}
		b.bounds[i] = p[0].Bound()
	}
	return b
}

// Contains reports whether (lat, lng) lies inside the outer ring of any of
// the boundary's polygons. Holes are not subtracted.
func (b Boundary) Contains(lat, lng float64) bool {
	return b.contains(orb.Point{lng, lat}, false)
}

// ContainsStrict is Contains with hole rings subtracting (even-odd across
// all rings of a polygon)
func (b Boundary) ContainsStrict(lat, lng float64) bool {
	return b.contains(orb.Point{lng, lat}, true)
}

// Valid reports whether the geometry is a type Contains can evaluate
func (b Boundary) Valid() bool { return polygons(b.Geometry) != nil }

func (b Boundary) contains(pt orb.Point, holes bool) bool {
	polys := polygons(b.Geometry)
	for i, p := range polys {
		if len(b.bounds) == len(polys) && !b.bounds[i].Contains(pt) {
			continue
		}
		if inPolygon(pt, p, holes) {
			return true
		}
	}
	return false
}

// polygons flattens the supported geometry types; nil for anything else
func polygons(g orb.Geometry) []orb.Polygon {
	switch v := g.(type) {
	case orb.Polygon:
		return []orb.Polygon{v}
	case *orb.Polygon:
		if v == nil {
			return nil
		}
		return []orb.Polygon{*v}
	case orb.MultiPolygon:
		if v == nil {
			return []orb.Polygon{}
		}
		return v
	case *orb.MultiPolygon:
		if v == nil {
			return nil
		}
		return *v
	default:
		return nil
	}
}
