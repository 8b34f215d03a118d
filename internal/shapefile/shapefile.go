// Package shapefile loads ESRI shapefile polygon layers as feature
// collections.
package shapefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/beetlebugorg/lakenames/pkg/lakenames"
)

// IsShapefile reports whether location names a .shp file.
func IsShapefile(location string) bool {
	return strings.EqualFold(filepath.Ext(location), ".shp")
}

// attributeTable returns the .dbf sibling of path.
func attributeTable(path string) (string, error) {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	for _, ext := range []string{".dbf", ".DBF"} {
		if _, err := os.Stat(base + ext); err == nil {
			return base + ext, nil
		}
	}
	return "", fmt.Errorf("attribute table for %s: %w", path, os.ErrNotExist)
}

// Read loads the shapefile at path. Polygon, PolygonZ and PolygonM shapes
// become Polygon or MultiPolygon features; other shapes get a null geometry
// so positions still match the attribute table. Attribute names are lower
// cased and empty values are left out. The .dbf sibling must exist.
func Read(path string) (*lakenames.FeatureCollection, error) {
	if _, err := attributeTable(path); err != nil {
		return nil, err
	}

	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shapefile %s: %w", path, err)
	}
	defer r.Close()

	fields := r.Fields()

	var features []*lakenames.Feature
	for r.Next() {
		row, shape := r.Shape()

		var geom orb.Geometry
		switch s := shape.(type) {
		case *shp.Polygon:
			geom = polygonGeometry(s.Parts, s.Points)
		case *shp.PolygonZ:
			geom = polygonGeometry(s.Parts, s.Points)
		case *shp.PolygonM:
			geom = polygonGeometry(s.Parts, s.Points)
		}

		props := make(map[string]any, len(fields))
		for i, f := range fields {
			value := strings.TrimSpace(r.ReadAttribute(row, i))
			if value == "" {
				continue
			}
			props[strings.ToLower(f.String())] = attributeValue(f, value)
		}

		feature, err := lakenames.NewFeature(geom, props)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", row, err)
		}
		features = append(features, feature)
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("read shapefile %s: %w", path, err)
	}

	return lakenames.NewFeatureCollection(features), nil
}

// attributeValue keeps numeric fields as exact JSON numbers.
func attributeValue(f shp.Field, value string) any {
	switch f.Fieldtype {
	case 'N', 'F':
		if _, err := strconv.ParseFloat(value, 64); err == nil {
			return json.Number(value)
		}
	}
	return value
}

// polygonGeometry splits the flat point list into rings and groups them
// into polygons. Shapefile outer rings run clockwise and holes counter
// clockwise; each hole is attached to the first outer ring containing it.
func polygonGeometry(parts []int32, points []shp.Point) orb.Geometry {
	var (
		polys []orb.Polygon
		holes []orb.Ring
	)

	for i := range parts {
		start := int(parts[i])
		end := len(points)
		if i+1 < len(parts) {
			end = int(parts[i+1])
		}
		if start < 0 || end > len(points) || end-start < 3 {
			continue
		}

		ring := make(orb.Ring, 0, end-start)
		for _, pt := range points[start:end] {
			ring = append(ring, orb.Point{pt.X, pt.Y})
		}

		if ring.Orientation() == orb.CW {
			polys = append(polys, orb.Polygon{ring})
		} else {
			holes = append(holes, ring)
		}
	}

	for _, hole := range holes {
		attached := false
		for j := range polys {
			if planar.RingContains(polys[j][0], hole[0]) {
				polys[j] = append(polys[j], hole)
				attached = true
				break
			}
		}
		// Writers that ignore winding order produce counter clockwise outers.
		if !attached {
			polys = append(polys, orb.Polygon{hole})
		}
	}

	switch len(polys) {
	case 0:
		return nil
	case 1:
		return polys[0]
	default:
		return orb.MultiPolygon(polys)
	}
}
