package lakenames

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// boundsPadding widens every indexed rectangle and every query rectangle.
// R-tree rectangles that only touch do not intersect, and rtreego rejects
// zero-length sides, so both sides of a query need some slack.
const boundsPadding = 1e-9

// boundToRect converts an orb bound to an R-tree rectangle
// padded by boundsPadding on every side.
func boundToRect(b orb.Bound) rtreego.Rect {
	// Southwest corner
	point := rtreego.Point{b.Min[0] - boundsPadding, b.Min[1] - boundsPadding}

	// Width, height
	lengths := []float64{
		b.Max[0] - b.Min[0] + 2*boundsPadding,
		b.Max[1] - b.Min[1] + 2*boundsPadding,
	}

	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// pointToRect returns the query rectangle for a single location.
func pointToRect(pt orb.Point) rtreego.Rect {
	return rtreego.Point{pt[0], pt[1]}.ToRect(boundsPadding)
}

// intersects reports whether pt lies inside or on the boundary of geom.
// Only Polygon and MultiPolygon are supported; anything else never matches.
func intersects(geom orb.Geometry, pt orb.Point) bool {
	switch g := geom.(type) {
	case orb.Polygon:
		return polygonIntersects(g, pt)
	case orb.MultiPolygon:
		for _, p := range g {
			if polygonIntersects(p, pt) {
				return true
			}
		}
	}
	return false
}

// polygonIntersects is planar.PolygonContains with hole boundaries counted
// as part of the polygon.
func polygonIntersects(p orb.Polygon, pt orb.Point) bool {
	if len(p) == 0 || !planar.RingContains(p[0], pt) {
		return false
	}

	for _, hole := range p[1:] {
		if planar.RingContains(hole, pt) && !onRing(hole, pt) {
			return false
		}
	}
	return true
}

// onRing reports whether pt lies exactly on one of the ring's edges.
func onRing(r orb.Ring, pt orb.Point) bool {
	n := len(r)
	if n == 0 {
		return false
	}
	// The closing edge is checked as well in case the ring is not closed.
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		if onSegment(r[j], r[i], pt) {
			return true
		}
	}
	return false
}

func onSegment(a, b, pt orb.Point) bool {
	cross := (b[0]-a[0])*(pt[1]-a[1]) - (b[1]-a[1])*(pt[0]-a[0])
	if cross != 0 {
		return false
	}
	return pt[0] >= min(a[0], b[0]) && pt[0] <= max(a[0], b[0]) &&
		pt[1] >= min(a[1], b[1]) && pt[1] <= max(a[1], b[1])
}

// indexable reports whether geom is a non-empty polygonal geometry.
func indexable(geom orb.Geometry) error {
	switch g := geom.(type) {
	case nil:
		return &ErrInvalidGeometry{Reason: "geometry is null"}
	case orb.Polygon:
		if len(g) == 0 || len(g[0]) == 0 {
			return &ErrInvalidGeometry{Type: g.GeoJSONType(), Reason: "empty exterior ring"}
		}
	case orb.MultiPolygon:
		for _, p := range g {
			if len(p) > 0 && len(p[0]) > 0 {
				return nil
			}
		}
		return &ErrInvalidGeometry{Type: g.GeoJSONType(), Reason: "no non-empty polygon"}
	default:
		return &ErrInvalidGeometry{Type: g.GeoJSONType(), Reason: "not a polygon"}
	}
	return nil
}
