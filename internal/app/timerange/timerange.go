// Package timerange holds the visible time window and keeps its three
// faces, start, end and span, consistent while any one of them is edited.
package timerange

import (
	"math"
	"sync"

	"kelvin/internal/app/bus"
	"kelvin/internal/config/logger"
)

// Controller owns the visible X window in unix seconds. Every mutation
// settles the window atomically and publishes exactly one range event.
type Controller struct {
	mu sync.Mutex

	start float64
	end   float64

	lowerBound float64
	upperBound float64

	// updating suppresses nested mutations while a settle is in flight;
	// input surfaces echo committed values back through their change
	// handlers and those echoes must not re-enter
	updating bool

	events bus.Bus
	log    logger.Logger
}

// New creates a Controller with a zero window
func New(events bus.Bus, log logger.Logger) *Controller {
	return &Controller{
		events: events,
		log:    log,
	}
}

// Reset installs fresh data bounds and opens the window over the whole
// range. Called on every (re)load.
func (c *Controller) Reset(lo, hi float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.updating {
		return
	}

	c.lowerBound = lo
	c.upperBound = hi
	c.start = lo
	c.end = hi

	c.settle(bus.SourceExternal)
}

// SetStart commits a new window start. The start edge carries no bound
// clamp; the span stretches to keep the end edge in place.
func (c *Controller) SetStart(newStart float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.updating {
		return
	}

	c.start = newStart

	c.settle(bus.SourceStart)
}

// SetEnd commits a new window end, sliding the start to preserve the
// current span. A start that would fall below the lower bound is clamped
// there and the span shrinks accordingly.
func (c *Controller) SetEnd(newEnd float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.updating {
		return
	}

	span := c.end - c.start

	start := newEnd - span
	if start < c.lowerBound {
		start = c.lowerBound
	}

	c.start = start
	c.end = newEnd

	c.settle(bus.SourceEnd)
}

// SetSpan commits a new window width, keeping the end edge fixed and
// pulling the start towards it. The same lower-bound clamp as SetEnd
// applies.
func (c *Controller) SetSpan(newSpan float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.updating {
		return
	}

	start := c.end - newSpan
	if start < c.lowerBound {
		start = c.lowerBound
	}

	c.start = start

	c.settle(bus.SourceSpan)
}

// SetExternalRange commits a window driven by the chart itself, pan, zoom
// or roll. Both edges land unclamped; only the edit surfaces enforce the
// lower bound.
func (c *Controller) SetExternalRange(xMin, xMax float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.updating {
		return
	}

	c.start = xMin
	c.end = xMax

	c.settle(bus.SourceExternal)
}

// Window returns the committed [start, end] edges
func (c *Controller) Window() (float64, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.start, c.end
}

// Span returns the derived window width in seconds
func (c *Controller) Span() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.end - c.start
}

// Bounds returns the data bounds installed by the last Reset
func (c *Controller) Bounds() (float64, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lowerBound, c.upperBound
}

// settle publishes the committed window once. Callers hold the mutex.
func (c *Controller) settle(source bus.UpdateSource) {
	c.updating = true
	defer func() { c.updating = false }()

	span := c.end - c.start
	if math.IsNaN(span) {
		span = 0
	}

	if c.log != nil {
		c.log.Debug().
			Float64("start", c.start).
			Float64("end", c.end).
			Float64("span", span).
			Str("source", string(source)).
			Msg("range settled")
	}

	if c.events != nil {
		c.events.Publish(bus.Message{
			Type: bus.EventRangeChanged,
			Data: bus.RangeChanged{
				Start:  c.start,
				End:    c.end,
				Span:   span,
				Source: source,
			},
		})
	}
}
