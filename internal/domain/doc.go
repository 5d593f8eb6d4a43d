// Package domain models tabular incident report data and the density-overlay
// computation that turns it into a renderable heat map specification.
//
// # Input Conventions
//
// Incident data arrives as a CSV table with a header row. Only two columns
// are required, matched case-sensitively:
//
//	latitude   decimal degrees, -90..90
//	longitude  decimal degrees, -180..180
//
// All other columns are ignored, with one exception: an optional "weight"
// column scales a row's contribution to the heat layer. Weights must be
// finite and positive; anything else falls back to the default weight of 1.
//
// # Row Filtering
//
// Coordinate hygiene is enforced by omission, not by failure. A row is
// silently excluded from the overlay when either coordinate is absent, empty,
// not parseable as a number, non-finite (NaN/Inf), or outside geographic
// range. The count of excluded rows is carried on the resulting
// [OverlaySpec] as a diagnostic. Only a dataset with zero usable rows is an
// error ([ErrEmptyDataset]), because the map center is undefined without at
// least one point.
//
// # Map Centering
//
// The initial view centers on the per-axis median of the valid coordinates
// rather than the mean. Incident data routinely contains outlier clusters
// (mis-geocoded rows at (0,0), precinct placeholder coordinates) and the
// median keeps the initial view anchored on the bulk of the data. Even-count
// medians interpolate between the two middle values, matching the standard
// statistical definition.
package domain
