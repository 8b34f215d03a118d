// Package metrics exports run counters in the Prometheus textfile format so
// a node exporter textfile collector can pick up batch results.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/beetlebugorg/lakenames/pkg/lakenames"
)

// Metrics holds the gauges of one run on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	Points              *prometheus.GaugeVec
	Features            *prometheus.GaugeVec
	Polygons            *prometheus.GaugeVec
	CandidatesDiscarded prometheus.Gauge
	StageDuration       *prometheus.GaugeVec
	OutputBytes         prometheus.Gauge
	LastRun             prometheus.Gauge
}

// New creates and registers the gauges.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Points: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lakenames_points",
			Help: "Named points by state in the last run",
		}, []string{"state"}),
		Features: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lakenames_features",
			Help: "Polygon source features by state in the last run",
		}, []string{"state"}),
		Polygons: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lakenames_polygons",
			Help: "Indexed polygons by outcome in the last run",
		}, []string{"outcome"}),
		CandidatesDiscarded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lakenames_candidates_discarded",
			Help: "Index candidates discarded as out of range in the last run",
		}),
		StageDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lakenames_stage_duration_seconds",
			Help: "Duration of each pipeline stage in the last run",
		}, []string{"stage"}),
		OutputBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lakenames_output_bytes",
			Help: "Size of the written collection",
		}),
		LastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lakenames_last_run_timestamp_seconds",
			Help: "Unix time the last run finished",
		}),
	}

	m.registry.MustRegister(
		m.Points,
		m.Features,
		m.Polygons,
		m.CandidatesDiscarded,
		m.StageDuration,
		m.OutputBytes,
		m.LastRun,
	)
	return m
}

// Observe sets every gauge from stats.
func (m *Metrics) Observe(stats lakenames.Stats, outputBytes int, finished time.Time) {
	m.Points.WithLabelValues("loaded").Set(float64(stats.PointsLoaded))
	m.Points.WithLabelValues("processed").Set(float64(stats.PointsProcessed))
	m.Points.WithLabelValues("skipped").Set(float64(stats.PointsSkipped))
	m.Points.WithLabelValues("with_candidates").Set(float64(stats.PointsWithCandidates))
	m.Points.WithLabelValues("associated").Set(float64(stats.PointsAssociated))

	m.Features.WithLabelValues("total").Set(float64(stats.FeaturesTotal))
	m.Features.WithLabelValues("indexed").Set(float64(stats.FeaturesIndexed))
	m.Features.WithLabelValues("null_geometry").Set(float64(stats.FeaturesNullGeometry))
	m.Features.WithLabelValues("invalid_geometry").Set(float64(stats.FeaturesInvalidGeometry))

	m.Polygons.WithLabelValues("associated").Set(float64(stats.PolygonsAssociated))
	m.Polygons.WithLabelValues("updated").Set(float64(stats.PolygonsUpdated))
	m.Polygons.WithLabelValues("no_candidates").Set(float64(stats.PolygonsNoCandidates))
	m.Polygons.WithLabelValues("no_winner").Set(float64(stats.PolygonsNoWinner))
	m.Polygons.WithLabelValues("priority").Set(float64(stats.PriorityWins))

	m.CandidatesDiscarded.Set(float64(stats.CandidatesDiscarded))

	m.StageDuration.WithLabelValues("index").Set(stats.IndexDuration.Seconds())
	m.StageDuration.WithLabelValues("associate").Set(stats.AssociateDuration.Seconds())
	m.StageDuration.WithLabelValues("update").Set(stats.UpdateDuration.Seconds())

	m.OutputBytes.Set(float64(outputBytes))
	m.LastRun.Set(float64(finished.Unix()))
}

// Registry returns the registry holding the gauges.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the gauges to path. The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
