package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/lakenames/pkg/lakenames"
)

func loadPolygons(path string) (*lakenames.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Check if file exists
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("polygon file not found: %s", path)
		}
		return nil, err
	}

	fc, err := lakenames.ReadFeatureCollection(data)
	if err != nil {
		if errors.Is(err, lakenames.ErrMissingFeatures) {
			return nil, fmt.Errorf("%s is not a FeatureCollection: %w", path, err)
		}
		return nil, err
	}

	// Bad geometries are not fatal; report them
	for i, f := range fc.Features {
		var geomErr *lakenames.ErrInvalidGeometry
		if errors.As(f.GeometryErr(), &geomErr) && f.HasGeometry() {
			log.Printf("Warning: feature %d not indexed: %v", i, geomErr)
		}
	}

	return fc, nil
}

func main() {
	fc, err := loadPolygons("scandinavian_waters_polygons_epsg4326.geojson")
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}
	fmt.Printf("Features: %d\n", len(fc.Features))

	// Points with bad coordinates are skipped by the pipeline
	p := lakenames.Point{"name": "Lillsjön", "lat": "north", "lon": 10.5}
	if _, err := p.Location(); err != nil {
		var coordErr *lakenames.ErrInvalidCoordinate
		if errors.As(err, &coordErr) {
			log.Printf("Expected error: %s = %v", coordErr.Field, coordErr.Value)
		}
	}

	// Try a non-existent file
	if _, err := loadPolygons("NONEXISTENT.geojson"); err != nil {
		log.Printf("Expected error: %v", err)
	}
}
