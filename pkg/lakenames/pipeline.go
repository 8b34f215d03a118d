package lakenames

import (
	"log/slog"
	"time"

	"github.com/paulmach/orb"
)

// Stats summarizes one pipeline run.
type Stats struct {
	PointsLoaded int `yaml:"points_loaded" json:"points_loaded"`

	AssociationStats `yaml:",inline"`

	FeaturesTotal           int `yaml:"features_total" json:"features_total"`
	FeaturesIndexed         int `yaml:"features_indexed" json:"features_indexed"`
	FeaturesNullGeometry    int `yaml:"features_null_geometry" json:"features_null_geometry"`
	FeaturesInvalidGeometry int `yaml:"features_invalid_geometry" json:"features_invalid_geometry"`

	PolygonsUpdated      int `yaml:"polygons_updated" json:"polygons_updated"`
	PolygonsNoCandidates int `yaml:"polygons_no_candidates" json:"polygons_no_candidates"`
	PolygonsNoWinner     int `yaml:"polygons_no_winner" json:"polygons_no_winner"`
	PriorityWins         int `yaml:"priority_wins" json:"priority_wins"`

	IndexDuration     time.Duration `yaml:"index_duration" json:"index_duration"`
	AssociateDuration time.Duration `yaml:"associate_duration" json:"associate_duration"`
	UpdateDuration    time.Duration `yaml:"update_duration" json:"update_duration"`
}

// Pipeline names polygons of a feature collection from a point list.
//
// A Pipeline holds only immutable configuration and can be reused; each Run
// builds its own index and association.
type Pipeline struct {
	resolver *Resolver
	opts     Options
	debug    map[string]struct{}
}

// NewPipeline creates a pipeline from cfg.
func NewPipeline(cfg Config, opts Options) *Pipeline {
	opts = opts.withDefaults()
	debug := make(map[string]struct{}, len(opts.DebugNames))
	for _, name := range opts.DebugNames {
		debug[name] = struct{}{}
	}
	return &Pipeline{
		resolver: NewResolver(cfg),
		opts:     opts,
		debug:    debug,
	}
}

// Resolver returns the pipeline's resolver.
func (p *Pipeline) Resolver() *Resolver {
	return p.resolver
}

// Run associates points with the polygons of fc and updates the properties
// of every polygon that gets a winner. Features without a usable geometry
// are left alone and counted.
func (p *Pipeline) Run(points []Point, fc *FeatureCollection) Stats {
	log := p.opts.Logger
	stats := Stats{PointsLoaded: len(points)}
	if fc == nil {
		return stats
	}
	stats.FeaturesTotal = len(fc.Features)

	// Positions in geoms and features line up; they are the polygon identity.
	geoms := make([]orb.Geometry, 0, len(fc.Features))
	features := make([]*Feature, 0, len(fc.Features))
	for i, f := range fc.Features {
		if err := f.GeometryErr(); err != nil {
			if f.HasGeometry() {
				stats.FeaturesInvalidGeometry++
				log.Debug("dropping feature", "feature", i, "error", err)
			} else {
				stats.FeaturesNullGeometry++
			}
			continue
		}
		geoms = append(geoms, f.Geometry())
		features = append(features, f)
	}
	stats.FeaturesIndexed = len(geoms)
	log.Info("loaded polygons",
		"features", stats.FeaturesTotal,
		"indexed", stats.FeaturesIndexed,
		"null_geometry", stats.FeaturesNullGeometry,
		"invalid_geometry", stats.FeaturesInvalidGeometry)

	start := time.Now()
	idx := NewGeometryIndex(geoms)
	stats.IndexDuration = time.Since(start)
	log.Info("index built", "polygons", idx.Len(), "duration", stats.IndexDuration)

	start = time.Now()
	assoc := AssociateWithOptions(idx, points, AssociateOptions{
		Progress: p.opts.Progress,
		Every:    p.opts.ProgressEvery,
		OnSkip: func(i int, pt Point, err error) {
			log.Debug("skipping point", "point", i, "name", pt.String(), "error", err)
		},
	})
	stats.AssociationStats = assoc.Stats()
	stats.AssociateDuration = time.Since(start)
	log.Info("points associated",
		"processed", stats.PointsProcessed,
		"skipped", stats.PointsSkipped,
		"with_candidates", stats.PointsWithCandidates,
		"associated", stats.PointsAssociated,
		"polygons", stats.PolygonsAssociated,
		"duration", stats.AssociateDuration)

	start = time.Now()
	for pos, f := range features {
		candidates := assoc.Points(pos)
		if len(candidates) == 0 {
			stats.PolygonsNoCandidates++
			continue
		}

		winner, how := p.resolver.Resolve(candidates)
		if p.debugging(candidates) {
			p.logCandidates(pos, f, candidates, winner, how)
		}

		switch how {
		case ResolutionNone:
			stats.PolygonsNoWinner++
			continue
		case ResolutionPriority:
			stats.PriorityWins++
		}

		f.Properties, _ = Merge(f.Properties, winner)
		stats.PolygonsUpdated++
	}
	stats.UpdateDuration = time.Since(start)

	log.Info("properties updated",
		"updated", stats.PolygonsUpdated,
		"priority", stats.PriorityWins,
		"no_candidates", stats.PolygonsNoCandidates,
		"no_winner", stats.PolygonsNoWinner,
		"duration", stats.UpdateDuration)

	return stats
}

func (p *Pipeline) debugging(candidates []Point) bool {
	if len(p.debug) == 0 {
		return false
	}
	for _, c := range candidates {
		if name, ok := c.Name(); ok {
			if _, hit := p.debug[name]; hit {
				return true
			}
		}
	}
	return false
}

func (p *Pipeline) logCandidates(pos int, f *Feature, candidates []Point, winner Point, how Resolution) {
	log := p.opts.Logger
	current, _ := f.Property(KeyName)
	log.Debug("polygon candidates", "polygon", pos, "name", current, "count", len(candidates))
	for _, c := range candidates {
		log.Debug("candidate",
			"polygon", pos,
			"name", c.String(),
			"score", p.resolver.Scorer().Score(c),
			"priority", p.resolver.IsPriority(c),
			"wikidata", c[KeyWikidata])
	}
	if winner != nil {
		log.Debug("chosen", "polygon", pos, "name", winner.String(), "by", how.String())
	} else {
		log.Debug("no point chosen", "polygon", pos)
	}
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("points_loaded", s.PointsLoaded),
		slog.Int("points_processed", s.PointsProcessed),
		slog.Int("points_associated", s.PointsAssociated),
		slog.Int("features_total", s.FeaturesTotal),
		slog.Int("features_indexed", s.FeaturesIndexed),
		slog.Int("polygons_updated", s.PolygonsUpdated),
	)
}
