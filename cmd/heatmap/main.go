// Command heatmap renders an incident CSV as a density-weighted heat overlay
// on an interactive Leaflet map, written to a self-contained HTML file.
//
// Usage:
//
//	go run ./cmd/heatmap -input crime_data.csv -output crime_heatmap.html
//
// Both paths have conventional defaults; see internal/config for the
// environment variables behind them.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/couchcryptid/crime-heatmap/internal/adapter/csvfile"
	"github.com/couchcryptid/crime-heatmap/internal/adapter/htmlmap"
	"github.com/couchcryptid/crime-heatmap/internal/config"
	"github.com/couchcryptid/crime-heatmap/internal/observability"
	"github.com/couchcryptid/crime-heatmap/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	input := flag.String("input", cfg.InputPath, "path to the incident CSV")
	output := flag.String("output", cfg.OutputPath, "path for the HTML artifact")
	radius := flag.Float64("radius", cfg.Radius, "visual radius of each heat point")
	flag.Parse()

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	loader := csvfile.NewLoader(logger)
	renderer := htmlmap.NewRenderer(logger)

	p := pipeline.New(loader, renderer, renderer, logger, metrics, cfg.Zoom, *radius)

	if err := p.Run(context.Background(), *input, *output); err != nil {
		logger.Error("heatmap generation failed", "error", err)
		os.Exit(1)
	}
}
