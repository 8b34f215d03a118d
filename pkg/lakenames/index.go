package lakenames

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// GeometryIndex provides fast candidate lookups over a fixed set of polygons.
//
// The index stores the bounding rectangle of every polygon in an R-tree and
// answers "which polygons might contain this point" queries in O(log N)
// instead of a linear scan. Results are a conservative superset: a polygon
// whose bound contains the point is always returned, even when the point
// falls outside the polygon itself. Use Intersects to filter candidates.
//
// Example:
//
//	idx := lakenames.NewGeometryIndex(geoms)
//	for _, i := range idx.Query(orb.Point{10.5, 59.5}) {
//	    if idx.Intersects(i, pt) {
//	        // pt is inside geoms[i]
//	    }
//	}
type GeometryIndex struct {
	geoms []orb.Geometry
	rtree *rtreego.Rtree
}

// indexEntry is the R-tree item for one polygon.
type indexEntry struct {
	pos  int
	rect rtreego.Rect
}

// Bounds method for rtreego.Spatial interface.
func (e *indexEntry) Bounds() rtreego.Rect {
	return e.rect
}

// NewGeometryIndex builds an index over geoms. Positions in geoms are the
// identities returned by Query; the slice must not be modified afterwards.
//
// Every element should be a Polygon or MultiPolygon. Other geometries are
// kept in place so positions stay stable, but never match a query.
func NewGeometryIndex(geoms []orb.Geometry) *GeometryIndex {
	// Create R-tree (2D, min=25 children, max=50 children)
	rtree := rtreego.NewTree(2, 25, 50)

	for i, g := range geoms {
		if indexable(g) != nil {
			continue
		}
		rtree.Insert(&indexEntry{pos: i, rect: boundToRect(g.Bound())})
	}

	return &GeometryIndex{
		geoms: geoms,
		rtree: rtree,
	}
}

// Query returns the positions of polygons whose bounds contain pt,
// sorted ascending.
func (idx *GeometryIndex) Query(pt orb.Point) []int {
	spatials := idx.rtree.SearchIntersect(pointToRect(pt))
	if len(spatials) == 0 {
		return nil
	}

	result := make([]int, 0, len(spatials))
	for _, spatial := range spatials {
		entry, ok := spatial.(*indexEntry)
		if !ok {
			continue
		}
		result = append(result, entry.pos)
	}

	sort.Ints(result)
	return result
}

// Geometry returns the polygon at position i.
func (idx *GeometryIndex) Geometry(i int) (orb.Geometry, bool) {
	if i < 0 || i >= len(idx.geoms) {
		return nil, false
	}
	return idx.geoms[i], true
}

// Intersects reports whether pt lies inside or on the boundary of the
// polygon at position i. Out of range positions never intersect.
func (idx *GeometryIndex) Intersects(i int, pt orb.Point) bool {
	g, ok := idx.Geometry(i)
	if !ok {
		return false
	}
	return intersects(g, pt)
}

// Len returns the number of geometries in the index.
func (idx *GeometryIndex) Len() int {
	return len(idx.geoms)
}

// Bounds returns the union of all indexable geometry bounds.
func (idx *GeometryIndex) Bounds() orb.Bound {
	var (
		bounds orb.Bound
		seen   bool
	)
	for _, g := range idx.geoms {
		if indexable(g) != nil {
			continue
		}
		if !seen {
			bounds = g.Bound()
			seen = true
			continue
		}
		bounds = bounds.Union(g.Bound())
	}
	return bounds
}
