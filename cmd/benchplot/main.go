// benchplot renders the search-benchmark report charts.
//
// It reads the search_times.csv written by the benchmark runner and produces
// two PNGs in the output directory: search_time_compare.png (per-algorithm
// lookup time vs array size, log-log, with a legend) and hash_collisions.png
// (hash table collisions vs array size, log-x). Running it again overwrites
// both files. With -view it additionally opens a window showing the charts.
//
// Defaults reproduce the canonical report: input search_times.csv in the
// working directory, output alongside it, 1280x960 at 200 DPI.
package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/AlSakharoB/lab2-search/src/charts"
	"github.com/AlSakharoB/lab2-search/src/logging"
	"github.com/AlSakharoB/lab2-search/src/timings"
)

func main() {
	var (
		input    string
		outDir   string
		width    int
		height   int
		dpi      float64
		caption  bool
		logLevel string
		view     bool
	)
	flag.StringVar(&input, "input", "search_times.csv", "Path to the benchmark CSV")
	flag.StringVar(&outDir, "outdir", ".", "Directory to write the chart PNGs")
	flag.IntVar(&width, "width", 1280, "Chart width in pixels")
	flag.IntVar(&height, "height", 960, "Chart height in pixels")
	flag.Float64Var(&dpi, "dpi", 200, "Raster resolution in dots per inch")
	flag.BoolVar(&caption, "caption", true, "Stamp the source filename onto each chart")
	flag.StringVar(&logLevel, "loglevel", "info", "Log level: debug, info, warn, error")
	flag.BoolVar(&view, "view", false, "Open a window showing the rendered charts")
	flag.Parse()

	logging.SetLevel(logLevel)

	opts := charts.Options{
		Width:     width,
		Height:    height,
		DPI:       dpi,
		Caption:   caption,
		InputName: filepath.Base(input),
	}

	tbl, err := run(input, outDir, opts)
	if err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}

	if view {
		if err := showViewer(tbl, opts); err != nil {
			logging.Errorf("viewer: %v", err)
			os.Exit(1)
		}
	}
}

// run loads the CSV and writes both charts. It returns the loaded table so
// the optional viewer can re-render without reparsing the file.
func run(input, outDir string, opts charts.Options) (*timings.Table, error) {
	start := time.Now()
	tbl, err := timings.Load(input)
	if err != nil {
		return nil, err
	}
	logging.Infof("loaded %s: %d rows, %d columns", input, tbl.Len(), len(tbl.Columns()))
	if err := charts.WriteCharts(tbl, outDir, opts); err != nil {
		return nil, err
	}
	logging.TimeTrack(start, "report")
	return tbl, nil
}
