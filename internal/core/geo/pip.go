package geo

import "github.com/paulmach/orb"

// inPolygon tests the outer ring; with holes set, a point inside any later
// ring is excluded
func inPolygon(pt orb.Point, p orb.Polygon, holes bool) bool {
	if len(p) == 0 || !inRing(pt, p[0]) {
		return false
	}
	if !holes {
		return true
	}
	for _, hole := range p[1:] {
		if inRing(pt, hole) {
			return false
		}
	}
	return true
}

// inRing is the classic even-odd ray cast. The closing edge from the last
// vertex back to the first is implicit; exact float comparisons, no epsilon.
func inRing(pt orb.Point, ring orb.Ring) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	x, y := pt[0], pt[1]
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}
