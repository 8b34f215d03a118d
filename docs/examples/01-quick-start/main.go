package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/lakenames/pkg/lakenames"
)

func main() {
	// Load the named points
	data, err := os.ReadFile("scandinavian_lake_names.json")
	if err != nil {
		log.Fatal(err)
	}
	points, err := lakenames.ReadPoints(data)
	if err != nil {
		log.Fatal(err)
	}

	// Load the water polygons
	data, err = os.ReadFile("scandinavian_waters_polygons_epsg4326.geojson")
	if err != nil {
		log.Fatal(err)
	}
	fc, err := lakenames.ReadFeatureCollection(data)
	if err != nil {
		log.Fatal(err)
	}

	// Name the polygons
	p := lakenames.NewPipeline(lakenames.DefaultConfig(), lakenames.DefaultOptions())
	stats := p.Run(points, fc)

	fmt.Printf("Points: %d (%d associated)\n", stats.PointsLoaded, stats.PointsAssociated)
	fmt.Printf("Polygons: %d indexed, %d named\n", stats.FeaturesIndexed, stats.PolygonsUpdated)

	out, err := fc.MarshalIndent()
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("scandinavian_waters_names.geojson", out, 0o644); err != nil {
		log.Fatal(err)
	}
}
