package domain

// Record is one row of the source table, with field values keyed by header
// name. Line is the 1-based line number in the source file, kept for
// diagnostics.
type Record struct {
	Line   int
	Fields map[string]string
}

// RecordSet is the in-memory form of a loaded tabular resource. The header
// defines the field set shared by every row. It is built once by the loader
// and not mutated afterwards.
type RecordSet struct {
	Header []string
	Rows   []Record
}

// HasField reports whether the header contains the given column name
// (case-sensitive, exact match).
func (rs RecordSet) HasField(name string) bool {
	for _, h := range rs.Header {
		if h == name {
			return true
		}
	}
	return false
}
