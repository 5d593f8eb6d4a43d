package csvfile_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/crime-heatmap/internal/adapter/csvfile"
	"github.com/couchcryptid/crime-heatmap/internal/domain"
)

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "incidents.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func newLoader() *csvfile.Loader {
	return csvfile.NewLoader(slog.Default())
}

func TestLoad_WellFormedCSV(t *testing.T) {
	path := writeFixture(t, "id,latitude,longitude\n1,40.0,-73.0\n2,42.0,-71.0\n")

	rs, err := newLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "latitude", "longitude"}, rs.Header)
	require.Len(t, rs.Rows, 2)
	assert.Equal(t, 2, rs.Rows[0].Line)
	assert.Equal(t, "40.0", rs.Rows[0].Fields["latitude"])
	assert.Equal(t, 3, rs.Rows[1].Line)
	assert.Equal(t, "-71.0", rs.Rows[1].Fields["longitude"])
}

func TestLoad_TrimsWhitespace(t *testing.T) {
	path := writeFixture(t, " latitude , longitude \n 40.0 , -73.0 \n")

	rs, err := newLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"latitude", "longitude"}, rs.Header)
	assert.Equal(t, "40.0", rs.Rows[0].Fields["latitude"])
}

func TestLoad_ShortRowsKeepTheirFields(t *testing.T) {
	path := writeFixture(t, "latitude,longitude,category\n40.0,-73.0\n")

	rs, err := newLoader().Load(path)
	require.NoError(t, err)

	require.Len(t, rs.Rows, 1)
	assert.Equal(t, "40.0", rs.Rows[0].Fields["latitude"])
	assert.Equal(t, "-73.0", rs.Rows[0].Fields["longitude"])
	_, ok := rs.Rows[0].Fields["category"]
	assert.False(t, ok)
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := writeFixture(t, "latitude,longitude\n")

	rs, err := newLoader().Load(path)
	require.NoError(t, err)
	assert.Empty(t, rs.Rows)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.csv")

	_, err := newLoader().Load(path)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_MalformedCSV(t *testing.T) {
	// Unterminated quote is a structural parse failure, not a data problem.
	path := writeFixture(t, "latitude,longitude\n\"40.0,-73.0\n")

	_, err := newLoader().Load(path)
	require.ErrorIs(t, err, domain.ErrBadFormat)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFixture(t, "")

	_, err := newLoader().Load(path)
	require.ErrorIs(t, err, domain.ErrBadFormat)
}

func TestLoad_DoesNotMutateSource(t *testing.T) {
	contents := "latitude,longitude\n40.0,-73.0\n"
	path := writeFixture(t, contents)

	_, err := newLoader().Load(path)
	require.NoError(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, contents, string(after))
}
