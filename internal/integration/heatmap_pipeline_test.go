// Package integration exercises the full pipeline with real components
// against files on disk, no mocks.
package integration

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/crime-heatmap/internal/adapter/csvfile"
	"github.com/couchcryptid/crime-heatmap/internal/adapter/htmlmap"
	"github.com/couchcryptid/crime-heatmap/internal/domain"
	"github.com/couchcryptid/crime-heatmap/internal/observability"
	"github.com/couchcryptid/crime-heatmap/internal/pipeline"
)

func newRealPipeline(t *testing.T) *pipeline.Pipeline {
	t.Helper()
	logger := slog.Default()
	renderer := htmlmap.NewRenderer(logger)
	loader := csvfile.NewLoader(logger)
	return pipeline.New(loader, renderer, renderer, logger, observability.NewMetricsForTesting(), 12, 15)
}

func TestPipeline_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "crime_data.csv")
	output := filepath.Join(dir, "crime_heatmap.html")

	csvData := "id,category,latitude,longitude\n" +
		"1,theft,40.0,-73.0\n" +
		"2,assault,42.0,-71.0\n" +
		"3,theft,,-70.0\n" + // dropped: empty latitude
		"4,fraud,not-a-number,-69.0\n" // dropped: non-numeric
	require.NoError(t, os.WriteFile(input, []byte(csvData), 0o600))

	p := newRealPipeline(t)
	require.NoError(t, p.Run(context.Background(), input, output))

	body, err := os.ReadFile(output)
	require.NoError(t, err)

	html := string(body)
	assert.Contains(t, html, `"center":[41,-72]`)
	assert.Contains(t, html, `"points":[[40,-73,1],[42,-71,1]]`)
	assert.Contains(t, html, `"zoom":12`)
	assert.Contains(t, html, `"radius":15`)
}

func TestPipeline_EndToEnd_ByteIdenticalWithFrozenClock(t *testing.T) {
	htmlmap.SetClock(clockwork.NewFakeClockAt(
		time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC),
	))
	t.Cleanup(func() { htmlmap.SetClock(nil) })

	dir := t.TempDir()
	input := filepath.Join(dir, "crime_data.csv")
	require.NoError(t, os.WriteFile(input,
		[]byte("latitude,longitude\n41.88,-87.63\n41.90,-87.65\n"), 0o600))

	p := newRealPipeline(t)

	out1 := filepath.Join(dir, "first.html")
	out2 := filepath.Join(dir, "second.html")
	require.NoError(t, p.Run(context.Background(), input, out1))
	require.NoError(t, p.Run(context.Background(), input, out2))

	first, err := os.ReadFile(out1)
	require.NoError(t, err)
	second, err := os.ReadFile(out2)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPipeline_MissingInput_WritesNoOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "nope.csv")
	output := filepath.Join(dir, "crime_heatmap.html")

	p := newRealPipeline(t)
	err := p.Run(context.Background(), input, output)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPipeline_MissingColumn_WritesNoOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "crime_data.csv")
	output := filepath.Join(dir, "crime_heatmap.html")
	require.NoError(t, os.WriteFile(input, []byte("id,latitude\n1,40.0\n"), 0o600))

	p := newRealPipeline(t)
	err := p.Run(context.Background(), input, output)

	var schemaErr *domain.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"longitude"}, schemaErr.Missing)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPipeline_FailureDoesNotClobberExistingOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "crime_data.csv")
	output := filepath.Join(dir, "crime_heatmap.html")

	require.NoError(t, os.WriteFile(output, []byte("previous artifact"), 0o644))
	// Every row unusable: builder fails before anything renders.
	require.NoError(t, os.WriteFile(input, []byte("latitude,longitude\n,\n"), 0o600))

	p := newRealPipeline(t)
	err := p.Run(context.Background(), input, output)
	require.ErrorIs(t, err, domain.ErrEmptyDataset)

	body, readErr := os.ReadFile(output)
	require.NoError(t, readErr)
	assert.Equal(t, "previous artifact", string(body))
}
