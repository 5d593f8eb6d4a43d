package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, gauges, and histograms for the
// heatmap pipeline.
type Metrics struct {
	RowsLoaded    prometheus.Counter
	RowsDropped   prometheus.Counter
	PointsPlotted prometheus.Gauge
	RunFailures   prometheus.Counter

	PipelineDuration prometheus.Histogram
	ArtifactBytes    prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RowsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crime_heatmap",
			Name:      "rows_loaded_total",
			Help:      "Total rows read from the input table.",
		}),
		RowsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crime_heatmap",
			Name:      "rows_dropped_total",
			Help:      "Total rows excluded during coordinate filtering.",
		}),
		PointsPlotted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "crime_heatmap",
			Name:      "points_plotted",
			Help:      "Points in the most recently built overlay.",
		}),
		RunFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crime_heatmap",
			Name:      "run_failures_total",
			Help:      "Total pipeline runs that ended in an error.",
		}),
		PipelineDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "crime_heatmap",
			Name:      "pipeline_duration_seconds",
			Help:      "Duration of a complete load-validate-build-render run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		ArtifactBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "crime_heatmap",
			Name:      "artifact_bytes",
			Help:      "Size of the exported HTML artifact in bytes.",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
		}),
	}

	prometheus.MustRegister(
		m.RowsLoaded,
		m.RowsDropped,
		m.PointsPlotted,
		m.RunFailures,
		m.PipelineDuration,
		m.ArtifactBytes,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RowsLoaded:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "crime_heatmap", Name: "rows_loaded_total"}),
		RowsDropped:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "crime_heatmap", Name: "rows_dropped_total"}),
		PointsPlotted:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "crime_heatmap", Name: "points_plotted"}),
		RunFailures:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "crime_heatmap", Name: "run_failures_total"}),
		PipelineDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "crime_heatmap", Name: "pipeline_duration_seconds"}),
		ArtifactBytes:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "crime_heatmap", Name: "artifact_bytes"}),
	}
}
