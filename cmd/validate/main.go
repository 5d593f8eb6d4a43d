// Command validate dry-runs the heatmap pipeline against a CSV without
// rendering anything: it loads the file, checks the schema, runs coordinate
// filtering, and reports what a real run would plot. Useful for vetting a new
// data export before generating maps from it.
//
// Usage:
//
//	go run ./cmd/validate -input crime_data.csv
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/crime-heatmap/internal/adapter/csvfile"
	"github.com/couchcryptid/crime-heatmap/internal/config"
	"github.com/couchcryptid/crime-heatmap/internal/domain"
)

func main() {
	input := flag.String("input", config.DefaultInputPath, "path to the incident CSV")
	flag.Parse()

	if code := run(*input); code != 0 {
		os.Exit(code)
	}
}

func run(input string) int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	loader := csvfile.NewLoader(logger)

	records, err := loader.Load(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		return 1
	}
	fmt.Printf("loaded %s: %d columns, %d rows\n", input, len(records.Header), len(records.Rows))

	if err := domain.ValidateSchema(records); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		return 1
	}
	fmt.Println("schema: ok")

	spec, err := domain.BuildOverlay(records, config.DefaultZoom, config.DefaultRadius)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		return 1
	}

	fmt.Printf("usable points: %d\n", len(spec.Points))
	fmt.Printf("dropped rows:  %d\n", spec.Dropped)
	fmt.Printf("center:        (%.6f, %.6f)\n", spec.Center.Lat, spec.Center.Lon)

	if spec.Dropped > 0 {
		reportDrops(records)
	}
	return 0
}

// reportDrops lists the first few unusable rows with their line numbers so
// the export can be fixed at the source.
func reportDrops(records domain.RecordSet) {
	const maxShown = 10
	shown := 0

	fmt.Println("\nunusable rows:")
	for _, row := range records.Rows {
		single := domain.RecordSet{Header: records.Header, Rows: []domain.Record{row}}
		if _, err := domain.BuildOverlay(single, config.DefaultZoom, config.DefaultRadius); err == nil {
			continue
		}
		fmt.Printf("  line %d: latitude=%q longitude=%q\n",
			row.Line, row.Fields[domain.FieldLatitude], row.Fields[domain.FieldLongitude])
		shown++
		if shown == maxShown {
			fmt.Println("  ...")
			break
		}
	}
}
