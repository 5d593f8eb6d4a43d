package domain

// Column names recognized in the input header.
const (
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
	FieldWeight    = "weight"
)

// requiredFields are the columns every input must carry, in report order.
var requiredFields = []string{FieldLatitude, FieldLongitude}

// ValidateSchema checks that the record set's header covers the required
// geospatial columns, returning a *SchemaError naming every missing column.
// It inspects structure only, never row values: a header can pass validation
// while every row is still dropped during coordinate extraction. Callers
// should run it before BuildOverlay so a missing column surfaces as an
// actionable error instead of a silently empty overlay.
func ValidateSchema(rs RecordSet) error {
	var missing []string
	for _, f := range requiredFields {
		if !rs.HasField(f) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}
