package main

import (
	"fmt"

	"github.com/beetlebugorg/lakenames/pkg/lakenames"
)

func main() {
	resolver := lakenames.NewResolver(lakenames.DefaultConfig())

	// Candidates found inside one polygon, in source order
	candidates := []lakenames.Point{
		{"name": "Stora Lillsjön", "lat": 59.5, "lon": 10.5},
		{"name": "Lillsjön", "lat": 59.51, "lon": 10.52, "wikidata": "Q1"},
		{"name": "Norra viken", "lat": 59.55, "lon": 10.6},
	}

	for _, c := range candidates {
		fmt.Printf("  %-16s %7.2f\n", c, resolver.Scorer().Score(c))
	}

	winner, how := resolver.Resolve(candidates)
	fmt.Printf("Winner: %s (%s)\n", winner, how)

	// Merge the winner into existing polygon properties
	props, changed := lakenames.Merge(map[string]any{"name": "Sjön"}, winner)
	fmt.Printf("Changed: %v name=%v alt_name=%v\n", changed, props["name"], props["alt_name"])
}
