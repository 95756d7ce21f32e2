// Package charts renders the two benchmark report images from a timings
// table: the log-log comparison of the search algorithms, and the log-x
// hash-collision curve. Rendering is headless; each function returns a
// decoded image so callers can write it to disk or show it in a window.
package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/AlSakharoB/lab2-search/src/timings"
)

// Options controls the rendered chart geometry and annotations.
type Options struct {
	Width  int
	Height int
	DPI    float64
	// Caption draws "source: <InputName> (<rows> rows)" at the bottom-left.
	Caption   bool
	InputName string
}

// DefaultOptions matches a 6.4x4.8 inch figure at 200 dots per inch.
func DefaultOptions() Options {
	return Options{Width: 1280, Height: 960, DPI: 200, Caption: true}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.DPI <= 0 {
		o.DPI = d.DPI
	}
	return o
}

// SeriesLabel returns the display name of a timing column: the text before
// its first underscore ("linear_us" -> "linear").
func SeriesLabel(column string) string {
	if i := strings.Index(column, "_"); i >= 0 {
		return column[:i]
	}
	return column
}

func lineStyle(i int) chart.Style {
	return chart.Style{
		StrokeColor: chart.GetDefaultColor(i),
		StrokeWidth: 2.0,
	}
}

func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor: chart.ColorLightGray,
		StrokeWidth: 1.0,
	}
}

// padSeries widens a single-point series to two x values so go-chart has a
// non-zero x delta to render. The pad point repeats the y value one decade
// to the right, which keeps log axes valid.
func padSeries(xs, ys []float64) ([]float64, []float64) {
	if len(xs) != 1 {
		return xs, ys
	}
	return []float64{xs[0], xs[0] * 10}, []float64{ys[0], ys[0]}
}

// RenderSearchCompare draws the five per-algorithm timing series against
// array size on log-log axes with a legend.
func RenderSearchCompare(tbl *timings.Table, opts Options) (image.Image, error) {
	opts = opts.normalized()
	ch, err := buildCompareChart(tbl, opts)
	if err != nil {
		return nil, err
	}
	return renderToImage(ch, tbl, opts)
}

func buildCompareChart(tbl *timings.Table, opts Options) (*chart.Chart, error) {
	if tbl.Len() == 0 {
		return nil, fmt.Errorf("no data rows to plot")
	}
	sizes, err := tbl.IntColumn(timings.SizeColumn)
	if err != nil {
		return nil, err
	}

	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	for _, v := range sizes {
		if v < minX {
			minX = v
		}
		if v > maxX {
			maxX = v
		}
	}
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	series := make([]chart.Series, 0, len(timings.SearchColumns))
	for i, col := range timings.SearchColumns {
		ys, err := tbl.Column(col)
		if err != nil {
			return nil, err
		}
		for _, v := range ys {
			if math.IsNaN(v) {
				continue
			}
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
		xs, ysPadded := padSeries(sizes, ys)
		series = append(series, chart.ContinuousSeries{
			Name:    SeriesLabel(col),
			XValues: xs,
			YValues: ysPadded,
			Style:   lineStyle(i),
		})
	}

	xLo, xHi := logAxisBounds(minX, maxX)
	yLo, yHi := logAxisBounds(minY, maxY)

	ch := chart.Chart{
		Title:      "Search algorithm comparison",
		Width:      opts.Width,
		Height:     opts.Height,
		DPI:        opts.DPI,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:           "Array size",
			Range:          &chart.LogarithmicRange{Min: xLo, Max: xHi},
			Ticks:          logTicks(xLo, xHi),
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           "Search time, µs",
			Range:          &chart.LogarithmicRange{Min: yLo, Max: yHi},
			Ticks:          logTicks(yLo, yHi),
			GridMajorStyle: gridStyle(),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return &ch, nil
}

// RenderCollisions draws the hash collision count against array size on a
// log-x axis with a linear y axis anchored at zero.
func RenderCollisions(tbl *timings.Table, opts Options) (image.Image, error) {
	opts = opts.normalized()
	ch, err := buildCollisionsChart(tbl, opts)
	if err != nil {
		return nil, err
	}
	return renderToImage(ch, tbl, opts)
}

func buildCollisionsChart(tbl *timings.Table, opts Options) (*chart.Chart, error) {
	if tbl.Len() == 0 {
		return nil, fmt.Errorf("no data rows to plot")
	}
	sizes, err := tbl.IntColumn(timings.SizeColumn)
	if err != nil {
		return nil, err
	}
	collisions, err := tbl.IntColumn(timings.CollisionsColumn)
	if err != nil {
		return nil, err
	}

	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	for _, v := range sizes {
		if v < minX {
			minX = v
		}
		if v > maxX {
			maxX = v
		}
	}
	maxY := 0.0
	for _, v := range collisions {
		if v > maxY {
			maxY = v
		}
	}
	if maxY <= 0 {
		maxY = 1
	}
	_, yHi := niceAxisBounds(0, maxY)

	xLo, xHi := logAxisBounds(minX, maxX)
	xs, ys := padSeries(sizes, collisions)

	ch := chart.Chart{
		Title:      "Hash function collisions",
		Width:      opts.Width,
		Height:     opts.Height,
		DPI:        opts.DPI,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:           "Array size",
			Range:          &chart.LogarithmicRange{Min: xLo, Max: xHi},
			Ticks:          logTicks(xLo, xHi),
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           "Collisions",
			Range:          &chart.ContinuousRange{Min: 0, Max: yHi},
			Ticks:          niceTicks(0, yHi, 6),
			GridMajorStyle: gridStyle(),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    timings.CollisionsColumn,
				XValues: xs,
				YValues: ys,
				Style:   lineStyle(0),
			},
		},
	}
	return &ch, nil
}

func renderToImage(ch *chart.Chart, tbl *timings.Table, opts Options) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", ch.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", ch.Title, err)
	}
	if opts.Caption && opts.InputName != "" {
		img = drawCaption(img, fmt.Sprintf("source: %s (%d rows)", opts.InputName, tbl.Len()))
	}
	return img, nil
}
