package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates the input resource does not exist.
	ErrNotFound = errors.New("input resource not found")

	// ErrBadFormat indicates the input could not be parsed into a table.
	ErrBadFormat = errors.New("malformed tabular input")

	// ErrEmptyDataset indicates no rows with usable coordinates survived
	// filtering, so the map center is undefined.
	ErrEmptyDataset = errors.New("no rows with usable coordinates")
)

// SchemaError reports required columns absent from the input header.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("input is missing required columns: %s", strings.Join(e.Missing, ", "))
}
