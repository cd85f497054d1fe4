package plot

import (
	"math"

	drawille "github.com/chriskim06/drawille-go"

	"kelvin/internal/app/viewport"
)

// updateChart re-renders the braille canvas from the windowed series. Two
// dim rail lines pin the canvas scale to the viewport's y range, so the
// drawn lines sit where the ranges say they should.
func (m *Model) updateChart() {
	entries := m.window.Entries()
	view := m.window.ViewRange()
	mode := m.session.Mode()

	if len(entries) == 0 || view.X.Width() <= 0 {
		m.ui.chart = ""

		return
	}

	n := m.ui.canvas.NumDataPoints

	data := make([][]float64, 0, len(entries)+2)
	colors := make([]drawille.Color, 0, len(entries)+2)

	data = append(data, flatLine(n, view.Y.Min), flatLine(n, view.Y.Max))
	colors = append(colors, railColor, railColor)

	for i, entry := range entries {
		if !entry.Visible {
			continue
		}

		sampled := sampleSeries(entry.X, entry.Y, view, mode, n)
		if sampled == nil {
			continue
		}

		data = append(data, sampled)
		colors = append(colors, chartColor(entry.Color, i))
	}

	m.ui.canvas.LineColors = colors
	m.ui.canvas.Fill(data)
	m.ui.chart = m.ui.canvas.String()
}

// flatLine builds a constant series used as a scale rail
func flatLine(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// sampleSeries resamples one series into n columns across the x window,
// clamped to the y range. Columns without a sample hold the previous value.
// Returns nil when nothing in the window is drawable.
func sampleSeries(xs, ys []float64, view viewport.View, mode viewport.ScaleMode, n int) []float64 {
	limit := len(xs)
	if len(ys) < limit {
		limit = len(ys)
	}

	if limit == 0 || n <= 0 {
		return nil
	}

	width := view.X.Width()
	out := make([]float64, n)

	k := 0
	found := false

	for j := 0; j < n; j++ {
		target := view.X.Min + (float64(j)+0.5)*width/float64(n)

		for k+1 < limit && math.Abs(xs[k+1]-target) <= math.Abs(xs[k]-target) {
			k++
		}

		v := math.NaN()
		if xs[k] >= view.X.Min && xs[k] <= view.X.Max {
			v = displayValue(ys[k], mode)
		}

		if !math.IsNaN(v) {
			found = true
		}

		out[j] = clamp(v, view.Y)
	}

	if !found {
		return nil
	}

	fillGaps(out)

	return out
}

// displayValue maps a raw sample to chart coordinates for the scale mode
func displayValue(v float64, mode viewport.ScaleMode) float64 {
	if mode != viewport.Logarithmic {
		return v
	}

	if v <= 0 {
		return math.NaN()
	}

	return math.Log10(v)
}

// clamp pins a value into the y range, NaN passed through
func clamp(v float64, r viewport.Range) float64 {
	if math.IsNaN(v) {
		return v
	}

	if v < r.Min {
		return r.Min
	}

	if v > r.Max {
		return r.Max
	}

	return v
}

// fillGaps replaces NaN columns with the nearest value to their left, and
// leading NaN columns with the first real value
func fillGaps(out []float64) {
	first := math.NaN()

	for _, v := range out {
		if !math.IsNaN(v) {
			first = v
			break
		}
	}

	prev := first

	for i, v := range out {
		if math.IsNaN(v) {
			out[i] = prev
			continue
		}

		prev = v
	}
}
