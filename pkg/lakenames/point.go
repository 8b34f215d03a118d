package lakenames

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/spf13/cast"
)

// Point is one named location from the point source.
//
// The record is kept as decoded so unknown members survive, but only name,
// lat, lon, wikidata, wikipedia and description are interpreted.
type Point map[string]any

// Point record keys.
const (
	KeyName        = "name"
	KeyLat         = "lat"
	KeyLon         = "lon"
	KeyWikidata    = "wikidata"
	KeyWikipedia   = "wikipedia"
	KeyDescription = "description"
	KeyAltName     = "alt_name"
)

// MetadataKeys are copied from the winning point onto the polygon.
var MetadataKeys = []string{KeyWikidata, KeyWikipedia, KeyDescription}

// Name returns the point's name and whether it is a string.
func (p Point) Name() (string, bool) {
	name, ok := p[KeyName].(string)
	return name, ok
}

// Value returns the member for key and whether it is present and non-null.
func (p Point) Value(key string) (any, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// HasWikidata reports whether the point carries a non-empty wikidata identifier.
func (p Point) HasWikidata() bool {
	v, _ := p.Value(KeyWikidata)
	return truthy(v)
}

// Location returns the point as an orb.Point in lon, lat order.
//
// Numbers and numeric strings are accepted. Missing members return
// ErrMissingCoordinate; anything else that is not a finite number returns
// *ErrInvalidCoordinate.
func (p Point) Location() (orb.Point, error) {
	lon, err := p.coordinate(KeyLon)
	if err != nil {
		return orb.Point{}, err
	}
	lat, err := p.coordinate(KeyLat)
	if err != nil {
		return orb.Point{}, err
	}
	return orb.Point{lon, lat}, nil
}

func (p Point) coordinate(key string) (float64, error) {
	raw, ok := p.Value(key)
	if !ok {
		return 0, fmt.Errorf("%s: %w", key, ErrMissingCoordinate)
	}

	switch v := raw.(type) {
	case bool, map[string]any, []any:
		return 0, &ErrInvalidCoordinate{Field: key, Value: raw}
	case string:
		raw = strings.TrimSpace(v)
	}

	f, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &ErrInvalidCoordinate{Field: key, Value: raw}
	}
	return f, nil
}

// String returns a short label for log messages.
func (p Point) String() string {
	if name, ok := p.Name(); ok {
		return name
	}
	return "<unnamed>"
}

// truthy follows JSON truthiness: null, false, 0, "" and empty
// containers are false.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	return true
}
