package lakenames

import (
	"github.com/paulmach/orb"
)

// Association maps polygon positions to the points that intersect them.
type Association struct {
	lists [][]Point
	stats AssociationStats
}

// AssociationStats counts what happened while associating points.
type AssociationStats struct {
	PointsProcessed      int `yaml:"points_processed" json:"points_processed"`
	PointsSkipped        int `yaml:"points_skipped" json:"points_skipped"`
	PointsWithCandidates int `yaml:"points_with_candidates" json:"points_with_candidates"`
	PointsAssociated     int `yaml:"points_associated" json:"points_associated"`
	CandidatesDiscarded  int `yaml:"candidates_discarded" json:"candidates_discarded"`
	PolygonsAssociated   int `yaml:"polygons_associated" json:"polygons_associated"`
}

// AssociateOptions configures Associate.
type AssociateOptions struct {
	// Progress is called every Every points and once at the end.
	Progress func(done, total int)
	Every    int

	// OnSkip is called for each point whose coordinates are rejected.
	OnSkip func(i int, p Point, err error)
}

// Associate finds, for every point with valid coordinates, all polygons of
// idx that it intersects. Points are visited in order, so each polygon's list
// is in input order. A point is listed at most once per polygon.
func Associate(idx *GeometryIndex, points []Point) *Association {
	return AssociateWithOptions(idx, points, AssociateOptions{})
}

// AssociateWithOptions is Associate with progress and skip callbacks.
func AssociateWithOptions(idx *GeometryIndex, points []Point, opts AssociateOptions) *Association {
	a := &Association{lists: make([][]Point, idx.Len())}
	total := len(points)

	for i, p := range points {
		if opts.Progress != nil && opts.Every > 0 && i > 0 && i%opts.Every == 0 {
			opts.Progress(i, total)
		}

		pt, err := p.Location()
		if err != nil {
			a.stats.PointsSkipped++
			if opts.OnSkip != nil {
				opts.OnSkip(i, p, err)
			}
			continue
		}
		a.stats.PointsProcessed++

		if a.add(idx, p, pt) {
			a.stats.PointsAssociated++
		}
	}

	if opts.Progress != nil {
		opts.Progress(total, total)
	}

	for _, list := range a.lists {
		if len(list) > 0 {
			a.stats.PolygonsAssociated++
		}
	}
	return a
}

// add appends p to every polygon it intersects and reports whether there
// was at least one.
func (a *Association) add(idx *GeometryIndex, p Point, pt orb.Point) bool {
	candidates := idx.Query(pt)
	if len(candidates) == 0 {
		return false
	}
	a.stats.PointsWithCandidates++

	// Query returns sorted, unique positions, so p is listed at most once
	// per polygon.
	matched := false
	for _, pos := range candidates {
		// Guards an index larger than the association it feeds.
		if pos < 0 || pos >= len(a.lists) {
			a.stats.CandidatesDiscarded++
			continue
		}
		if !idx.Intersects(pos, pt) {
			continue
		}
		a.lists[pos] = append(a.lists[pos], p)
		matched = true
	}
	return matched
}

// Points returns the points associated with the polygon at position pos.
func (a *Association) Points(pos int) []Point {
	if pos < 0 || pos >= len(a.lists) {
		return nil
	}
	return a.lists[pos]
}

// Len returns the number of polygon positions, associated or not.
func (a *Association) Len() int {
	return len(a.lists)
}

// Stats returns the association counters.
func (a *Association) Stats() AssociationStats {
	return a.stats
}
