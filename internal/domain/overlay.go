package domain

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// defaultWeight is the heat contribution of a row without a usable weight column.
const defaultWeight = 1

// Point is a WGS-84 coordinate with a heat-layer weight.
type Point struct {
	Lat    float64
	Lon    float64
	Weight float64
}

// OverlaySpec describes a density overlay on a base map: the initial view
// (center and zoom), the weighted points feeding the heat layer, and the
// visual radius of each point. Built once per pipeline run and not mutated
// afterwards.
type OverlaySpec struct {
	Center Point
	Zoom   int
	Radius float64
	Points []Point

	// Dropped counts the rows excluded during coordinate filtering.
	// Diagnostic only; dropped rows are not an error.
	Dropped int
}

// BuildOverlay filters the record set's coordinate columns and constructs the
// overlay specification. Rows with missing, empty, non-numeric, non-finite,
// or out-of-range coordinates are dropped silently. Zoom and radius pass
// through unchanged; radius is deliberately not validated or clamped, so a
// non-positive radius reaches the renderer as-is.
//
// Returns an error wrapping ErrEmptyDataset when no row survives filtering.
func BuildOverlay(rs RecordSet, zoom int, radius float64) (OverlaySpec, error) {
	points := make([]Point, 0, len(rs.Rows))
	dropped := 0

	for _, row := range rs.Rows {
		lat, okLat := parseCoordinate(row.Fields[FieldLatitude], 90)
		lon, okLon := parseCoordinate(row.Fields[FieldLongitude], 180)
		if !okLat || !okLon {
			dropped++
			continue
		}
		points = append(points, Point{
			Lat:    lat,
			Lon:    lon,
			Weight: parseWeight(row.Fields[FieldWeight]),
		})
	}

	if len(points) == 0 {
		return OverlaySpec{}, fmt.Errorf("build overlay: %d rows, none usable: %w", len(rs.Rows), ErrEmptyDataset)
	}

	return OverlaySpec{
		Center:  medianCenter(points),
		Zoom:    zoom,
		Radius:  radius,
		Points:  points,
		Dropped: dropped,
	}, nil
}

// parseCoordinate parses a coordinate field, enforcing |v| <= bound.
// Returns false for anything that should drop the row.
func parseCoordinate(s string, bound float64) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v < -bound || v > bound {
		return 0, false
	}
	return v, true
}

// parseWeight parses an optional weight field, falling back to the default
// weight for missing, malformed, non-finite, or non-positive values.
func parseWeight(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultWeight
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return defaultWeight
	}
	return v
}

// medianCenter returns the element-wise median of the points' coordinates.
// The median is taken independently per axis, so the center need not coincide
// with any input point. Weights do not influence centering.
func medianCenter(points []Point) Point {
	lats := make([]float64, len(points))
	lons := make([]float64, len(points))
	for i, p := range points {
		lats[i] = p.Lat
		lons[i] = p.Lon
	}
	return Point{
		Lat:    median(lats),
		Lon:    median(lons),
		Weight: defaultWeight,
	}
}

// median computes the standard statistical median, averaging the two middle
// values on even counts. The input slice is sorted in place.
func median(values []float64) float64 {
	sort.Float64s(values)
	n := len(values)
	if n%2 == 1 {
		return values[n/2]
	}
	return (values[n/2-1] + values[n/2]) / 2
}
