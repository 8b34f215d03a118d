package lakenames

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestIntersects(t *testing.T) {
	withHole := orb.Polygon{
		orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
		orb.Ring{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}},
	}
	multi := orb.MultiPolygon{
		square(0, 0, 1, 1),
		square(5, 5, 6, 6),
	}

	tests := []struct {
		name  string
		geom  orb.Geometry
		point orb.Point
		want  bool
	}{
		{"interior", withHole, orb.Point{2, 2}, true},
		{"inside hole", withHole, orb.Point{5, 5}, false},
		{"on hole boundary", withHole, orb.Point{4, 5}, true},
		{"on hole corner", withHole, orb.Point{6, 6}, true},
		{"on exterior boundary", withHole, orb.Point{10, 5}, true},
		{"outside", withHole, orb.Point{11, 5}, false},
		{"multi first part", multi, orb.Point{0.5, 0.5}, true},
		{"multi second part", multi, orb.Point{5.5, 5.5}, true},
		{"multi gap", multi, orb.Point{3, 3}, false},
		{"line never matches", orb.LineString{{0, 0}, {1, 1}}, orb.Point{0.5, 0.5}, false},
		{"nil geometry", nil, orb.Point{0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := intersects(tt.geom, tt.point); got != tt.want {
				t.Errorf("intersects(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestIndexable(t *testing.T) {
	tests := []struct {
		name    string
		geom    orb.Geometry
		wantErr bool
	}{
		{"polygon", square(0, 0, 1, 1), false},
		{"multipolygon", orb.MultiPolygon{square(0, 0, 1, 1)}, false},
		{"nil", nil, true},
		{"empty polygon", orb.Polygon{}, true},
		{"empty multipolygon", orb.MultiPolygon{orb.Polygon{}}, true},
		{"point", orb.Point{1, 1}, true},
		{"linestring", orb.LineString{{0, 0}, {1, 1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := indexable(tt.geom)
			if (err != nil) != tt.wantErr {
				t.Errorf("indexable() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
