// Package htmlmap renders a density overlay specification into a
// self-contained interactive HTML map built on Leaflet and leaflet.heat.
package htmlmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"time"

	"github.com/couchcryptid/crime-heatmap/internal/domain"
)

// Renderer composes the Leaflet base map and the heat layer into a single
// HTML document. Rendering buffers entirely in memory; nothing touches disk
// until Export, so a failed run never leaves a partial artifact behind.
type Renderer struct {
	logger *slog.Logger
	tmpl   *template.Template
}

// NewRenderer creates an HTML map renderer.
func NewRenderer(logger *slog.Logger) *Renderer {
	return &Renderer{
		logger: logger,
		tmpl:   template.Must(template.New("map").Parse(mapTemplate)),
	}
}

// mapConfig is the map-initialization payload embedded in the artifact's
// script block. Field order is fixed by the struct, keeping renders of the
// same spec byte-identical.
type mapConfig struct {
	Center [2]float64   `json:"center"`
	Zoom   int          `json:"zoom"`
	Points [][3]float64 `json:"points"` // [lat, lon, weight] triples for leaflet.heat
	Radius float64      `json:"radius"`
}

type templateData struct {
	Title       string
	GeneratedAt string
	ConfigJS    template.JS
}

// Render produces the HTML artifact for the given overlay spec. The spec is
// trusted to be well-formed (non-empty points, valid center); the only
// failure modes are marshaling and template execution faults.
func (r *Renderer) Render(spec domain.OverlaySpec) (domain.Artifact, error) {
	cfg, err := marshalTemplateJS(mapConfig{
		Center: [2]float64{spec.Center.Lat, spec.Center.Lon},
		Zoom:   spec.Zoom,
		Points: heatTriples(spec.Points),
		Radius: spec.Radius,
	})
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("render map: marshal config: %w", err)
	}

	var buf bytes.Buffer
	err = r.tmpl.Execute(&buf, templateData{
		Title:       "Crime Density Map",
		GeneratedAt: clock.Now().UTC().Format(time.RFC3339),
		ConfigJS:    cfg,
	})
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("render map: %w", err)
	}

	r.logger.Debug("map rendered", "points", len(spec.Points), "bytes", buf.Len())

	return domain.Artifact{Body: buf.Bytes()}, nil
}

// Export writes the artifact to dest in one shot, overwriting any existing
// file. Write failures come back as wrapped I/O errors.
func (r *Renderer) Export(artifact domain.Artifact, dest string) error {
	if err := os.WriteFile(dest, artifact.Body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	r.logger.Info("map exported", "path", dest, "bytes", len(artifact.Body))
	return nil
}

// heatTriples converts points to the [lat, lon, weight] triples leaflet.heat
// consumes.
func heatTriples(points []domain.Point) [][3]float64 {
	triples := make([][3]float64, len(points))
	for i, p := range points {
		triples[i] = [3]float64{p.Lat, p.Lon, p.Weight}
	}
	return triples
}

// marshalTemplateJS encodes the value as JSON and tags it as safe JavaScript
// for html/template, so the script block receives raw JSON instead of the
// escaper's space-padded re-encoding.
func marshalTemplateJS(value any) (template.JS, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return template.JS(""), err
	}
	return template.JS(payload), nil
}

// mapTemplate is the self-contained artifact document. Leaflet and the
// leaflet.heat plugin load from CDN; everything else is inline.
const mapTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="generated" content="{{.GeneratedAt}}">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<script src="https://unpkg.com/leaflet.heat@0.2.0/dist/leaflet-heat.js"></script>
<style>
html, body, #map { height: 100%; margin: 0; }
</style>
</head>
<body>
<div id="map"></div>
<script>
var cfg = {{.ConfigJS}};
var map = L.map("map").setView(cfg.center, cfg.zoom);
L.tileLayer("https://tile.openstreetmap.org/{z}/{x}/{y}.png", {
  maxZoom: 19,
  attribution: "&copy; OpenStreetMap contributors"
}).addTo(map);
L.heatLayer(cfg.points, { radius: cfg.radius }).addTo(map);
</script>
</body>
</html>
`
