// Package viewport computes the visible ranges of the chart: auto-ranged Y
// bounds over the visible X window, full-extent view-all ranges, rolling of a
// fixed-width window to follow appended data, and [0,1] normalization.
package viewport

import (
	"math"
	"time"
)

// ScaleMode selects how Y values map onto the chart
type ScaleMode int

// Scale modes
const (
	Linear ScaleMode = iota
	Normalized
	Logarithmic
)

// String returns the scale mode name
func (m ScaleMode) String() string {
	switch m {
	case Normalized:
		return "normalized"
	case Logarithmic:
		return "log"
	default:
		return "linear"
	}
}

// ParseScaleMode maps a scale name onto its mode, defaulting to Linear
func ParseScaleMode(name string) ScaleMode {
	switch name {
	case "normalized":
		return Normalized
	case "log":
		return Logarithmic
	default:
		return Linear
	}
}

// Range is a closed numeric interval
type Range struct {
	Min float64
	Max float64
}

// Width returns the extent of the range
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// Shift translates both edges by delta, preserving the width
func (r Range) Shift(delta float64) Range {
	return Range{Min: r.Min + delta, Max: r.Max + delta}
}

// View is the currently displayed window of the chart
type View struct {
	X Range
	Y Range
}

// Series is the minimal shape the engine ranges over. X and Y are parallel
// sample arrays; invisible series never influence any range.
type Series struct {
	X       []float64
	Y       []float64
	Visible bool
}

// RollMinInterval is the default debounce between two roll shifts
const RollMinInterval = time.Second

// AutoRangeY computes new Y bounds from the data visible in view's X window.
// A series qualifies only if part of its X-visible slice already lies inside
// the old Y range; this keeps an off-screen series with extreme values from
// hijacking the range. The bounds then span the entire X-visible slices of
// the qualifying series, NaN samples ignored. Returns false when nothing
// qualifies, in which case the caller keeps the previous Y range.
func AutoRangeY(view View, series []Series, mode ScaleMode) (Range, bool) {
	var slices [][]float64

	for _, s := range series {
		if !s.Visible || len(s.Y) == 0 {
			continue
		}

		slice := windowedY(s, view.X)
		if touchesRange(slice, view.Y) {
			slices = append(slices, slice)
		}
	}

	return rangeOverSlices(slices, mode)
}

// AutoRangeYInitial ranges over the full Y data of every visible series,
// with no old-range qualification. Used right after a (re)load, when there
// is no meaningful previous Y range to qualify against.
func AutoRangeYInitial(series []Series, mode ScaleMode) (Range, bool) {
	var slices [][]float64

	for _, s := range series {
		if !s.Visible || len(s.Y) == 0 || allNaN(s.Y) {
			continue
		}

		slices = append(slices, s.Y)
	}

	return rangeOverSlices(slices, mode)
}

// Roll shifts the X window by the advance of the latest sample so a
// fixed-width window keeps tracking live-appended data. Rolls are debounced:
// if less than minInterval has passed since lastRoll the window is returned
// unchanged and the third result is false.
func Roll(win Range, latest, prevLatest float64, lastRoll, now time.Time, minInterval time.Duration) (Range, time.Time, bool) {
	if now.Sub(lastRoll) < minInterval {
		return win, lastRoll, false
	}

	return win.Shift(latest - prevLatest), now, true
}

// ViewAll returns the X extent covering every series, from the first finite
// X sample of each to the last. False when no series has finite X data.
func ViewAll(series []Series) (Range, bool) {
	found := false

	var r Range

	for _, s := range series {
		first, last, ok := finiteEnds(s.X)
		if !ok {
			continue
		}

		if !found {
			r = Range{Min: first, Max: last}
			found = true

			continue
		}

		r.Min = math.Min(r.Min, first)
		r.Max = math.Max(r.Max, last)
	}

	return r, found
}

// Normalize rescales y linearly onto [0, 1]. When every sample is equal the
// result is all-NaN, which callers must tolerate; the chart simply renders
// nothing for such a series.
func Normalize(y []float64) []float64 {
	lo, hi, ok := nanMinMax(y)

	out := make([]float64, len(y))

	if !ok {
		for i := range out {
			out[i] = math.NaN()
		}

		return out
	}

	span := hi - lo
	for i, v := range y {
		out[i] = (v - lo) / span
	}

	return out
}

// windowedY slices out the Y samples whose X lies inside the window
func windowedY(s Series, window Range) []float64 {
	n := len(s.X)
	if len(s.Y) < n {
		n = len(s.Y)
	}

	out := make([]float64, 0, n)

	for i := 0; i < n; i++ {
		if s.X[i] >= window.Min && s.X[i] <= window.Max {
			out = append(out, s.Y[i])
		}
	}

	return out
}

// touchesRange reports whether any sample falls inside the closed range
func touchesRange(values []float64, r Range) bool {
	for _, v := range values {
		if v >= r.Min && v <= r.Max {
			return true
		}
	}

	return false
}

// rangeOverSlices computes the min/max envelope of the slices, restricted to
// strictly positive samples and converted to log10 in Logarithmic mode
func rangeOverSlices(slices [][]float64, mode ScaleMode) (Range, bool) {
	found := false

	var r Range

	for _, slice := range slices {
		values := slice
		if mode == Logarithmic {
			values = positiveOnly(slice)
		}

		lo, hi, ok := nanMinMax(values)
		if !ok {
			continue
		}

		if !found {
			r = Range{Min: lo, Max: hi}
			found = true

			continue
		}

		r.Min = math.Min(r.Min, lo)
		r.Max = math.Max(r.Max, hi)
	}

	if !found {
		return Range{}, false
	}

	if mode == Logarithmic {
		r = Range{Min: math.Log10(r.Min), Max: math.Log10(r.Max)}
	}

	return r, true
}

func positiveOnly(values []float64) []float64 {
	out := make([]float64, 0, len(values))

	for _, v := range values {
		if v > 0 {
			out = append(out, v)
		}
	}

	return out
}

func nanMinMax(values []float64) (float64, float64, bool) {
	found := false

	var lo, hi float64

	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}

		if !found {
			lo, hi = v, v
			found = true

			continue
		}

		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi, found
}

func finiteEnds(values []float64) (float64, float64, bool) {
	first := math.NaN()
	last := math.NaN()

	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}

		if math.IsNaN(first) {
			first = v
		}

		last = v
	}

	if math.IsNaN(first) {
		return 0, 0, false
	}

	return first, last, true
}

func allNaN(values []float64) bool {
	for _, v := range values {
		if !math.IsNaN(v) {
			return false
		}
	}

	return true
}
