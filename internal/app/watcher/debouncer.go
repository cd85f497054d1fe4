package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of change signals into one callback once the
// signals have been quiet for a while. The watcher owns exactly one log
// file, so there is nothing to accumulate between signals.
type Debouncer interface {
	Trigger()
	Stop()
}

// debouncer implements the Debouncer interface
type debouncer struct {
	quiet   time.Duration
	notify  func()
	timer   *time.Timer
	mu      sync.Mutex
	stopped bool
}

// NewDebouncer creates a Debouncer that calls notify after a quiet period
func NewDebouncer(quiet time.Duration, notify func()) Debouncer {
	return &debouncer{
		quiet:  quiet,
		notify: notify,
	}
}

// Trigger registers a change signal and restarts the quiet period
func (d *debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.quiet, d.fire)
}

// Stop cancels any pending callback and rejects further triggers
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// fire runs the callback unless Stop won the race
func (d *debouncer) fire() {
	d.mu.Lock()

	if d.stopped {
		d.mu.Unlock()

		return
	}

	d.timer = nil

	d.mu.Unlock()

	d.notify()
}
