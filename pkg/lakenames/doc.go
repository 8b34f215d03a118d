// Package lakenames assigns canonical names to water polygons from a set of
// named point locations.
//
// Many candidate labels can fall inside a single lake polygon: alternate
// spellings, names of bays and sub-basins, administrative points. The package
// picks one winner per polygon, copies its name and metadata onto the
// polygon's properties and keeps the previous name as an alternate.
//
// # Basic Usage
//
//	points, err := lakenames.ReadPoints(pointData)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fc, err := lakenames.ReadFeatureCollection(polygonData)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p := lakenames.NewPipeline(lakenames.DefaultConfig(), lakenames.Options{})
//	stats := p.Run(points, fc)
//	fmt.Printf("updated %d of %d polygons\n", stats.PolygonsUpdated, stats.FeaturesIndexed)
//
//	out, err := fc.MarshalIndent()
//
// # Pipeline Stages
//
// Run is a thin driver over four stages that can also be used directly:
//
//	idx := lakenames.NewGeometryIndex(geoms)           // 1. R-tree over polygon bounds
//	assoc := lakenames.Associate(idx, points)          // 2. polygon -> intersecting points
//	winner, how := resolver.Resolve(assoc.Points(i))   // 3. priority rule, then scoring
//	props, changed := lakenames.Merge(props, winner)   // 4. copy name and metadata
//
// # Name Selection
//
// A point whose name is in the priority set (Vänern, Vättern, Mälaren,
// Hjälmaren by default) and that has a wikidata identifier always wins.
// Otherwise every candidate is scored: words meaning "lake" add 10, words
// naming bays, channels or directional parts subtract 50, a wikidata
// identifier adds 5 and each character of the name subtracts 0.01. The
// highest score wins and ties go to the earliest point.
package lakenames
