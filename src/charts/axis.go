package charts

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// logAxisBounds clamps [min,max] outward to the nearest powers of ten so the
// axis starts and ends on a decade boundary. The span is widened to at least
// one decade so go-chart always has a non-zero range to translate into.
func logAxisBounds(min, max float64) (float64, float64) {
	if min <= 0 || math.IsNaN(min) || min == math.MaxFloat64 {
		min = 1
	}
	if math.IsNaN(max) || max < min {
		max = min
	}
	lo := math.Pow(10, math.Floor(math.Log10(min)))
	hi := math.Pow(10, math.Ceil(math.Log10(max)))
	if hi <= lo {
		hi = lo * 10
	}
	return lo, hi
}

// logTicks returns one tick per decade between bounds produced by logAxisBounds.
func logTicks(lo, hi float64) []chart.Tick {
	start := int(math.Round(math.Log10(lo)))
	end := int(math.Round(math.Log10(hi)))
	ticks := make([]chart.Tick, 0, end-start+1)
	for e := start; e <= end; e++ {
		v := math.Pow(10, float64(e))
		ticks = append(ticks, chart.Tick{Value: v, Label: formatLogTick(v)})
	}
	return ticks
}

func formatLogTick(v float64) string {
	av := math.Abs(v)
	if av >= 1 && av < 1_000_000 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%g", v)
}

// niceAxisBounds expands [min,max] by a small margin and rounds to "nice"
// numbers for readability on a linear axis.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	if pad <= 0 {
		pad = 1
	}
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// niceTicks generates up to n tick marks between [min, max] using nice increments.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	mag := math.Pow(10, math.Floor(math.Log10((max-min)/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil((max - min) / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	ticks := []chart.Tick{}
	for v := start; v <= end+bestStep/2; v += bestStep {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
