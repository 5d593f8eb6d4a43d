package config

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults for the conventional input and output filenames. Kept here, not in
// the pipeline packages, so the components themselves stay free of hidden
// defaults.
const (
	DefaultInputPath  = "crime_data.csv"
	DefaultOutputPath = "crime_heatmap.html"
	DefaultZoom       = 12
	DefaultRadius     = 15
)

// Config holds all tool settings, populated from environment variables.
// Command-line flags may override the path and radius fields after Load.
type Config struct {
	InputPath  string
	OutputPath string

	// Zoom is the fixed initial zoom level of the base map. It is a
	// configuration constant, never derived from the data spread.
	Zoom int

	// Radius controls the visual spread of each heat point. Passed through
	// to the renderer unvalidated; non-positive values are not clamped.
	Radius float64

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	zoom, err := parseIntEnv("HEATMAP_ZOOM", DefaultZoom)
	if err != nil {
		return nil, err
	}

	radius, err := parseFloatEnv("HEATMAP_RADIUS", DefaultRadius)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		InputPath:  envOrDefault("HEATMAP_INPUT", DefaultInputPath),
		OutputPath: envOrDefault("HEATMAP_OUTPUT", DefaultOutputPath),
		Zoom:       zoom,
		Radius:     radius,
		LogLevel:   envOrDefault("LOG_LEVEL", "info"),
		LogFormat:  envOrDefault("LOG_FORMAT", "text"),
	}

	if cfg.InputPath == "" {
		return nil, fmt.Errorf("HEATMAP_INPUT must not be empty")
	}
	if cfg.OutputPath == "" {
		return nil, fmt.Errorf("HEATMAP_OUTPUT must not be empty")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return n, nil
}

func parseFloatEnv(key string, fallback float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return v, nil
}
