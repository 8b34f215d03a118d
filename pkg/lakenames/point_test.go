package lakenames

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestPointLocation(t *testing.T) {
	tests := []struct {
		name    string
		point   Point
		want    orb.Point
		wantErr error
	}{
		{"floats", Point{"lat": 59.5, "lon": 10.5}, orb.Point{10.5, 59.5}, nil},
		{"json numbers", Point{"lat": json.Number("59.5"), "lon": json.Number("10")}, orb.Point{10, 59.5}, nil},
		{"numeric strings", Point{"lat": " 59.5", "lon": "10.5 "}, orb.Point{10.5, 59.5}, nil},
		{"missing lat", Point{"lon": 10.5}, orb.Point{}, ErrMissingCoordinate},
		{"null lon", Point{"lat": 59.5, "lon": nil}, orb.Point{}, ErrMissingCoordinate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.point.Location()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Location() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Location() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Location() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointLocationInvalid(t *testing.T) {
	invalid := []Point{
		{"lat": "north", "lon": 10.5},
		{"lat": true, "lon": 10.5},
		{"lat": 59.5, "lon": []any{10.5}},
		{"lat": 59.5, "lon": map[string]any{"x": 1}},
		{"lat": math.NaN(), "lon": 10.5},
		{"lat": 59.5, "lon": math.Inf(1)},
		{"lat": "NaN", "lon": 10.5},
	}

	for _, p := range invalid {
		_, err := p.Location()
		var coordErr *ErrInvalidCoordinate
		if !errors.As(err, &coordErr) {
			t.Errorf("Location(%v) error = %v, want *ErrInvalidCoordinate", p, err)
		}
	}
}

func TestPointAccessors(t *testing.T) {
	p := Point{"name": "Vänern", "wikidata": "Q173596", "description": nil}

	if name, ok := p.Name(); !ok || name != "Vänern" {
		t.Errorf("Name() = %q, %v", name, ok)
	}
	if !p.HasWikidata() {
		t.Error("HasWikidata() = false, want true")
	}
	if _, ok := p.Value("description"); ok {
		t.Error("Value(description) should be absent for null")
	}
	if p.String() != "Vänern" {
		t.Errorf("String() = %q", p.String())
	}

	unnamed := Point{"name": 7.0, "wikidata": false}
	if _, ok := unnamed.Name(); ok {
		t.Error("numeric name should not be a string")
	}
	if unnamed.HasWikidata() {
		t.Error("false wikidata should not count")
	}
	if unnamed.String() != "<unnamed>" {
		t.Errorf("String() = %q", unnamed.String())
	}
}
