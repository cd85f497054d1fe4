package cli

import (
	"context"
	"fmt"
	"math"

	"kelvin/internal/app/plotdata"
	"kelvin/internal/app/timespan"
)

// runHeadless opens the file and prints a summary instead of the TUI
func (c *cli) runHeadless(path string) error {
	ctx := context.Background()

	if err := c.session.Open(ctx, path); err != nil {
		return err
	}

	model := c.session.Model()
	entries := c.window.Entries()

	printVersion()

	fmt.Println(sectionStyle.Render(path))
	fmt.Println(bodyStyle.Render(fmt.Sprintf("%d channels, %d samples", model.ColumnCount(), model.RowCount())))

	if span, ok := recordingSpan(entries); ok {
		fmt.Println(bodyStyle.Render("recording length " + timespan.Format(timespan.FromSeconds(span))))
	}

	fmt.Println(sectionStyle.Render("channels"))

	for _, ch := range c.session.Channels() {
		line := channelStyle.Render(ch.Name)

		if lo, hi, ok := channelExtent(entries, ch.Name); ok {
			line += mutedStyle.Render(fmt.Sprintf("  %g … %g", lo, hi))
		}

		fmt.Println("  " + line)
	}

	return nil
}

// recordingSpan returns the time extent covered by the plotted series
func recordingSpan(entries []plotdata.SeriesEntry) (float64, bool) {
	var lo, hi float64

	found := false

	for _, entry := range entries {
		for _, x := range entry.X {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				continue
			}

			if !found {
				lo, hi = x, x
				found = true

				continue
			}

			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
	}

	return hi - lo, found
}

// channelExtent returns the min and max sample of a channel
func channelExtent(entries []plotdata.SeriesEntry, name string) (float64, float64, bool) {
	for _, entry := range entries {
		if entry.Key != name {
			continue
		}

		lo := math.NaN()
		hi := math.NaN()

		for _, v := range entry.Y {
			if math.IsNaN(v) {
				continue
			}

			if math.IsNaN(lo) || v < lo {
				lo = v
			}

			if math.IsNaN(hi) || v > hi {
				hi = v
			}
		}

		if math.IsNaN(lo) {
			return 0, 0, false
		}

		return lo, hi, true
	}

	return 0, 0, false
}
