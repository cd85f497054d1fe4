// Package plotdata turns tabular log columns into plottable series and
// keeps the chart's view ranges in step with edits, reloads and live rolls.
package plotdata

import (
	"math"
	"strings"
	"sync"
	"time"

	"kelvin/internal/app/logdata"
	"kelvin/internal/app/timerange"
	"kelvin/internal/app/viewport"
	"kelvin/internal/config/logger"
)

// timeSuffixes mark a header as a time axis. Loggers emit both spellings.
var timeSuffixes = []string{"(s)", "(secs)"}

// SeriesEntry is one plotted line: a measurement column paired with its
// time column
type SeriesEntry struct {
	Key     string
	X       []float64
	Y       []float64
	Color   string
	Visible bool
}

// Window owns the plotted series and the visible view. All series
// mutations go through Plot, Replot and SetLineVisible.
type Window struct {
	mu sync.Mutex

	entries []SeriesEntry
	view    viewport.View

	ranges *timerange.Controller

	prevLatest float64
	lastRoll   time.Time
	rollMin    time.Duration

	now func() time.Time

	log logger.Logger
}

// New creates an empty Window bound to a range controller
func New(ranges *timerange.Controller, rollInterval time.Duration, log logger.Logger) *Window {
	if rollInterval <= 0 {
		rollInterval = viewport.RollMinInterval
	}

	return &Window{
		ranges:  ranges,
		rollMin: rollInterval,
		now:     time.Now,
		log:     log,
	}
}

// Plot discards the existing series and builds fresh ones for the
// requested Y columns. Colors and visibility are positional and may be
// shorter than yColumns; missing entries default to empty color and
// visible. The view opens over the union of the series' X extents and the
// initial Y range skips the usual old-range qualification.
func (w *Window) Plot(model *logdata.Model, yColumns []string, mode viewport.ScaleMode, colors []string, visibility []bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries = make([]SeriesEntry, 0, len(yColumns))

	for i, name := range yColumns {
		entry := buildEntry(model, name, mode)

		if i < len(colors) {
			entry.Color = colors[i]
		}

		entry.Visible = true
		if i < len(visibility) {
			entry.Visible = visibility[i]
		}

		w.entries = append(w.entries, entry)
	}

	if xr, ok := viewport.ViewAll(w.series()); ok {
		w.view.X = xr
	}

	if yr, ok := viewport.AutoRangeYInitial(w.series(), mode); ok {
		w.view.Y = yr
	}

	w.prevLatest = w.latestSample()
	w.lastRoll = time.Time{}

	if w.log != nil {
		w.log.Debug().
			Int("series", len(w.entries)).
			Float64("x_min", w.view.X.Min).
			Float64("x_max", w.view.X.Max).
			Msg("plotted")
	}

	if w.ranges != nil {
		w.ranges.Reset(w.view.X.Min, w.view.X.Max)
	}
}

// Replot updates one series in place. With roll set the X window shifts by
// the advance of the latest sample before the new data lands, so a
// fixed-width window keeps following a live file.
func (w *Window) Replot(index int, model *logdata.Model, yColumn string, mode viewport.ScaleMode, color string, roll bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if index < 0 || index >= len(w.entries) {
		return
	}

	entry := buildEntry(model, yColumn, mode)
	entry.Color = color
	entry.Visible = w.entries[index].Visible

	w.entries[index] = entry

	if !roll {
		return
	}

	latest := w.latestSample()

	win, rolled, shifted := viewport.Roll(w.view.X, latest, w.prevLatest, w.lastRoll, w.now(), w.rollMin)
	if !shifted {
		return
	}

	w.view.X = win
	w.lastRoll = rolled
	w.prevLatest = latest

	if w.ranges != nil {
		w.ranges.SetExternalRange(win.Min, win.Max)
	}
}

// SetLineVisible toggles one series without touching any range. Re-ranging
// after a toggle is a separate, explicit action.
func (w *Window) SetLineVisible(index int, visible bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if index < 0 || index >= len(w.entries) {
		return
	}

	w.entries[index].Visible = visible
}

// AutoRangeY re-ranges the Y axis from the data inside the current view
func (w *Window) AutoRangeY(mode viewport.ScaleMode) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	yr, ok := viewport.AutoRangeY(w.view, w.series(), mode)
	if !ok {
		return false
	}

	w.view.Y = yr

	return true
}

// ViewAll opens the X window over every series' full extent
func (w *Window) ViewAll() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	xr, ok := viewport.ViewAll(w.series())
	if !ok {
		return false
	}

	w.view.X = xr

	if w.ranges != nil {
		w.ranges.SetExternalRange(xr.Min, xr.Max)
	}

	return true
}

// SetXWindow applies an externally settled X window to the view
func (w *Window) SetXWindow(min, max float64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.view.X = viewport.Range{Min: min, Max: max}
}

// ViewRange returns the current view
func (w *Window) ViewRange() viewport.View {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.view
}

// Entries returns a snapshot of the plotted series
func (w *Window) Entries() []SeriesEntry {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]SeriesEntry, len(w.entries))
	copy(out, w.entries)

	return out
}

// buildEntry pairs a Y column with its time column and extracts both.
// A column with no time pairing yields an empty series, never an error.
func buildEntry(model *logdata.Model, yColumn string, mode viewport.ScaleMode) SeriesEntry {
	entry := SeriesEntry{Key: yColumn}

	yi, err := model.ColumnIndex(yColumn)
	if err != nil {
		return entry
	}

	xi, ok := pairedTimeColumn(model.Header(), yi)
	if !ok {
		return entry
	}

	entry.X = model.Column(xi)
	entry.Y = model.Column(yi)

	if mode == viewport.Normalized {
		entry.Y = viewport.Normalize(entry.Y)
	}

	return entry
}

// pairedTimeColumn scans backward from the Y column for the nearest
// preceding header that denotes a time axis
func pairedTimeColumn(header []string, yIndex int) (int, bool) {
	for i := yIndex - 1; i >= 0; i-- {
		if IsTimeColumn(header[i]) {
			return i, true
		}
	}

	return 0, false
}

// IsTimeColumn reports whether a header names a time axis
func IsTimeColumn(name string) bool {
	for _, suffix := range timeSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	return false
}

func (w *Window) series() []viewport.Series {
	out := make([]viewport.Series, len(w.entries))

	for i, e := range w.entries {
		out[i] = viewport.Series{X: e.X, Y: e.Y, Visible: e.Visible}
	}

	return out
}

// latestSample returns the largest X across all series, NaN tolerated
func (w *Window) latestSample() float64 {
	latest := math.Inf(-1)
	found := false

	for _, e := range w.entries {
		for _, v := range e.X {
			if math.IsNaN(v) {
				continue
			}

			if v > latest {
				latest = v
				found = true
			}
		}
	}

	if !found {
		return 0
	}

	return latest
}
