package lakenames

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name   string
		props  map[string]any
		winner Point
		want   map[string]any
	}{
		{
			name:   "new name on empty properties",
			props:  map[string]any{},
			winner: Point{"name": "Lillsjön", "lat": 59.5, "lon": 10.5},
			want:   map[string]any{"name": "Lillsjön"},
		},
		{
			name:   "nil properties",
			props:  nil,
			winner: Point{"name": "Lillsjön"},
			want:   map[string]any{"name": "Lillsjön"},
		},
		{
			name:   "old name kept as alt_name",
			props:  map[string]any{"name": "OldName", "natural": "water"},
			winner: Point{"name": "NewName"},
			want: map[string]any{
				"name":     "NewName",
				"alt_name": []any{"OldName"},
				"natural":  "water",
			},
		},
		{
			name:   "alt_name deduplicated",
			props:  map[string]any{"name": "OldName", "alt_name": []any{"OldName", "Other"}},
			winner: Point{"name": "NewName"},
			want: map[string]any{
				"name":     "NewName",
				"alt_name": []any{"OldName", "Other"},
			},
		},
		{
			name:   "scalar alt_name normalized",
			props:  map[string]any{"name": "OldName", "alt_name": "Other"},
			winner: Point{"name": "NewName"},
			want: map[string]any{
				"name":     "NewName",
				"alt_name": []any{"Other", "OldName"},
			},
		},
		{
			name:   "null alt_name normalized",
			props:  map[string]any{"name": "OldName", "alt_name": nil},
			winner: Point{"name": "NewName"},
			want: map[string]any{
				"name":     "NewName",
				"alt_name": []any{"OldName"},
			},
		},
		{
			name:   "same name adds no alt_name",
			props:  map[string]any{"name": "Vänern"},
			winner: Point{"name": "Vänern"},
			want:   map[string]any{"name": "Vänern"},
		},
		{
			name:   "empty existing name adds no alt_name",
			props:  map[string]any{"name": ""},
			winner: Point{"name": "Vänern"},
			want:   map[string]any{"name": "Vänern"},
		},
		{
			name:   "metadata copied",
			props:  map[string]any{"wikidata": "Qold", "wikipedia": "sv:Old"},
			winner: Point{"name": "Vänern", "wikidata": "Q173596", "wikipedia": nil, "description": "Sveriges största sjö"},
			want: map[string]any{
				"name":        "Vänern",
				"wikidata":    "Q173596",
				"wikipedia":   "sv:Old",
				"description": "Sveriges största sjö",
			},
		},
		{
			name:   "unusable name leaves name alone",
			props:  map[string]any{"name": "Keep"},
			winner: Point{"name": 17.0, "wikidata": "Q9"},
			want:   map[string]any{"name": "Keep", "wikidata": "Q9"},
		},
		{
			name:   "empty winner name leaves name alone",
			props:  map[string]any{"name": "Keep"},
			winner: Point{"name": ""},
			want:   map[string]any{"name": "Keep"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Merge(tt.props, tt.winner)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeChanged(t *testing.T) {
	props := map[string]any{"name": "Keep"}
	if _, changed := Merge(props, Point{"lat": 1.0}); changed {
		t.Error("Merge with nothing to copy should report no change")
	}

	var nilProps map[string]any
	out, changed := Merge(nilProps, Point{"description": nil})
	if changed || out != nil {
		t.Errorf("Merge(nil, nothing) = %v, %v; want nil, false", out, changed)
	}

	if _, changed := Merge(props, Point{"name": "New"}); !changed {
		t.Error("Merge with a new name should report a change")
	}
}

func TestMergeRepeatedIsStable(t *testing.T) {
	props := map[string]any{"name": "OldName"}
	winner := Point{"name": "NewName"}

	props, _ = Merge(props, winner)
	props, _ = Merge(props, winner)

	want := map[string]any{"name": "NewName", "alt_name": []any{"OldName"}}
	if diff := cmp.Diff(want, props); diff != "" {
		t.Errorf("Merge twice mismatch (-want +got):\n%s", diff)
	}
}
