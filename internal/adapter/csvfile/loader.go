// Package csvfile loads tabular incident data from CSV files on disk.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/couchcryptid/crime-heatmap/internal/domain"
)

// Loader reads a CSV resource into a domain.RecordSet.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a CSV file loader.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads and parses the CSV file at path. The first row is the header;
// every following row becomes a Record keyed by header name. Short rows keep
// the fields they have; extra cells beyond the header are ignored.
//
// Error kinds: a missing file wraps domain.ErrNotFound, a CSV parse failure
// or empty file wraps domain.ErrBadFormat, and any other read fault is
// returned as a wrapped I/O error.
func (l *Loader) Load(path string) (domain.RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.RecordSet{}, fmt.Errorf("open %s: %w: %w", path, domain.ErrNotFound, err)
		}
		return domain.RecordSet{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Incident exports commonly have ragged rows; field-count checks happen
	// per-row below instead of failing the whole file.
	r.FieldsPerRecord = -1

	all, err := r.ReadAll()
	if err != nil {
		return domain.RecordSet{}, fmt.Errorf("parse %s: %w: %w", path, domain.ErrBadFormat, err)
	}
	if len(all) == 0 {
		return domain.RecordSet{}, fmt.Errorf("parse %s: missing header row: %w", path, domain.ErrBadFormat)
	}

	header := make([]string, len(all[0]))
	for i, h := range all[0] {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]domain.Record, 0, len(all)-1)
	for i, row := range all[1:] {
		fields := make(map[string]string, len(header))
		for j, h := range header {
			if j < len(row) {
				fields[h] = strings.TrimSpace(row[j])
			}
		}
		rows = append(rows, domain.Record{Line: i + 2, Fields: fields})
	}

	l.logger.Debug("csv loaded", "path", path, "columns", len(header), "rows", len(rows))

	return domain.RecordSet{Header: header, Rows: rows}, nil
}
