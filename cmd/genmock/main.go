// Command genmock generates a synthetic incident CSV for demos and test
// fixtures. Points are sampled around a configurable center with a seeded
// generator, so a given seed always produces the same file. A fraction of
// rows get deliberately unusable coordinates to exercise the builder's
// silent-drop filtering.
//
// Usage:
//
//	go run ./cmd/genmock -out crime_data.csv -rows 500 -seed 42
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
)

var categories = []string{"burglary", "assault", "theft", "vandalism", "robbery", "fraud"}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "crime_data.csv", "output CSV path")
	rows := flag.Int("rows", 500, "number of data rows to generate")
	centerLat := flag.Float64("center-lat", 41.8781, "latitude of the incident cluster center")
	centerLon := flag.Float64("center-lon", -87.6298, "longitude of the incident cluster center")
	spread := flag.Float64("spread", 0.08, "standard deviation of the cluster in degrees")
	badFrac := flag.Float64("bad-frac", 0.05, "fraction of rows with unusable coordinates")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if *rows <= 0 {
		return fmt.Errorf("-rows must be positive, got %d", *rows)
	}

	rng := rand.New(rand.NewSource(*seed))

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "category", "latitude", "longitude", "weight"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bad := 0
	for i := 0; i < *rows; i++ {
		row := makeRow(rng, i, *centerLat, *centerLon, *spread)
		if rng.Float64() < *badFrac {
			row = spoilCoordinates(rng, row)
			bad++
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", *out, err)
	}

	log.Printf("wrote %s: %d rows (%d with unusable coordinates)", *out, *rows, bad)
	return nil
}

// makeRow samples one incident row around the cluster center.
func makeRow(rng *rand.Rand, i int, lat, lon, spread float64) []string {
	weight := ""
	// Roughly a third of rows carry an explicit weight.
	if rng.Float64() < 0.33 {
		weight = strconv.Itoa(1 + rng.Intn(4))
	}
	return []string{
		fmt.Sprintf("inc-%05d", i+1),
		categories[rng.Intn(len(categories))],
		formatCoord(lat + rng.NormFloat64()*spread),
		formatCoord(lon + rng.NormFloat64()*spread),
		weight,
	}
}

// spoilCoordinates replaces a row's coordinates with one of the malformed
// shapes the builder must drop: blank, non-numeric, or out of range.
func spoilCoordinates(rng *rand.Rand, row []string) []string {
	switch rng.Intn(3) {
	case 0:
		row[2], row[3] = "", ""
	case 1:
		row[2] = "unknown"
	default:
		row[2], row[3] = "912.0", "-400.0"
	}
	return row
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
