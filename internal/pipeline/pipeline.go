// Package pipeline orchestrates the load-validate-build-render run that
// turns an incident CSV into an interactive heat map artifact.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/couchcryptid/crime-heatmap/internal/domain"
	"github.com/couchcryptid/crime-heatmap/internal/observability"
)

// Loader reads a tabular resource into a record set.
type Loader interface {
	Load(path string) (domain.RecordSet, error)
}

// Renderer composes an overlay spec into an exportable artifact.
type Renderer interface {
	Render(spec domain.OverlaySpec) (domain.Artifact, error)
}

// Exporter writes an artifact to its destination.
type Exporter interface {
	Export(artifact domain.Artifact, dest string) error
}

// Pipeline runs the four stages in order, failing fast on the first error.
// Each invocation owns its record set, overlay spec, and artifact end to end;
// there is no shared mutable state between runs.
type Pipeline struct {
	loader   Loader
	renderer Renderer
	exporter Exporter
	logger   *slog.Logger
	metrics  *observability.Metrics

	zoom   int
	radius float64
}

// New creates a Pipeline with the given stages and observability.
func New(l Loader, r Renderer, e Exporter, logger *slog.Logger, metrics *observability.Metrics, zoom int, radius float64) *Pipeline {
	return &Pipeline{
		loader:   l,
		renderer: r,
		exporter: e,
		logger:   logger,
		metrics:  metrics,
		zoom:     zoom,
		radius:   radius,
	}
}

// Run executes one load-validate-build-render-export cycle. Every error
// propagates to the caller; no stage recovers locally and no output is
// written on failure.
func (p *Pipeline) Run(ctx context.Context, input, output string) error {
	start := time.Now()

	spec, err := p.buildSpec(input)
	if err != nil {
		p.metrics.RunFailures.Inc()
		return err
	}

	if err := ctx.Err(); err != nil {
		p.metrics.RunFailures.Inc()
		return err
	}

	artifact, err := p.renderer.Render(spec)
	if err != nil {
		p.metrics.RunFailures.Inc()
		return err
	}

	if err := p.exporter.Export(artifact, output); err != nil {
		p.metrics.RunFailures.Inc()
		return err
	}

	p.metrics.ArtifactBytes.Observe(float64(len(artifact.Body)))
	p.metrics.PipelineDuration.Observe(time.Since(start).Seconds())

	p.logger.Info("heatmap written",
		"input", input,
		"output", output,
		"points", len(spec.Points),
		"dropped_rows", spec.Dropped,
		"center_lat", spec.Center.Lat,
		"center_lon", spec.Center.Lon,
		"duration", time.Since(start),
	)

	return nil
}

// buildSpec runs the load, validate, and build stages.
func (p *Pipeline) buildSpec(input string) (domain.OverlaySpec, error) {
	records, err := p.loader.Load(input)
	if err != nil {
		return domain.OverlaySpec{}, err
	}
	p.metrics.RowsLoaded.Add(float64(len(records.Rows)))

	// Structural validation runs before extraction so a missing column
	// surfaces as an actionable error, not a silently empty overlay.
	if err := domain.ValidateSchema(records); err != nil {
		return domain.OverlaySpec{}, err
	}

	spec, err := domain.BuildOverlay(records, p.zoom, p.radius)
	if err != nil {
		return domain.OverlaySpec{}, err
	}

	p.metrics.RowsDropped.Add(float64(spec.Dropped))
	p.metrics.PointsPlotted.Set(float64(len(spec.Points)))

	if spec.Dropped > 0 {
		p.logger.Warn("rows dropped during coordinate filtering",
			"dropped", spec.Dropped, "kept", len(spec.Points))
	}

	return spec, nil
}
