// Package watcher notices modifications to the opened log file. It combines
// fsnotify events on the file's directory with an mtime poll, since network
// and overlay filesystems do not reliably emit events while a logger keeps
// appending to the same inode.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"kelvin/internal/app/bus"
	"kelvin/internal/config"
	"kelvin/internal/config/logger"
)

// Watcher monitors the opened log file for changes
type Watcher interface {
	Watch(ctx context.Context, path string) error
	Close()
}

// target holds state for a single watched file
type target struct {
	path      string
	dir       string
	matcher   Matcher
	debouncer Debouncer
	modTime   time.Time
	cancel    context.CancelFunc
}

// manager implements the Watcher interface
type manager struct {
	cfg       *config.Config
	events    bus.Bus
	fsWatcher *fsnotify.Watcher
	targets   map[string]*target
	log       logger.Logger
	mu        sync.RWMutex
	closed    bool
}

// NewWatcher creates a new Watcher instance
func NewWatcher(cfg *config.Config, events bus.Bus, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	m := &manager{
		cfg:       cfg,
		events:    events,
		fsWatcher: fsw,
		targets:   make(map[string]*target),
		log:       log,
	}

	go m.processEvents()

	return m, nil
}

// Watch starts watching a log file. The file's directory goes onto the
// fsnotify watch list and a poll ticker covers filesystems that stay
// silent; both paths funnel into one debouncer.
func (m *manager) Watch(ctx context.Context, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	if _, exists := m.targets[absPath]; exists {
		return nil
	}

	dir := filepath.Dir(absPath)

	// the matcher keeps sibling churn in the directory from triggering
	// reloads; editors and loggers drop temp files next to the log
	matcher, err := NewMatcher([]string{filepath.Base(absPath)}, []string{"*.tmp", "*.swp", ".*"})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)

	t := &target{
		path:    absPath,
		dir:     dir,
		matcher: matcher,
		cancel:  cancel,
	}

	if info, err := os.Stat(absPath); err == nil {
		t.modTime = info.ModTime()
	}

	t.debouncer = NewDebouncer(m.cfg.Watch.Debounce, func() {
		m.emitChanged(absPath)
	})

	if err := m.fsWatcher.Add(dir); err != nil {
		cancel()

		return err
	}

	m.targets[absPath] = t

	m.log.Info().Str("path", absPath).Msg("watching log file")

	go m.poll(ctx, t)

	go func() {
		<-ctx.Done()
		t.debouncer.Stop()
	}()

	return nil
}

// Close stops the watcher and releases resources
func (m *manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	m.closed = true

	for path, t := range m.targets {
		t.cancel()
		delete(m.targets, path)
	}

	m.fsWatcher.Close()
}

// poll checks the file's mtime on a fixed interval. Unchanged mtime is a
// cheap no-op.
func (m *manager) poll(ctx context.Context, t *target) {
	ticker := time.NewTicker(m.cfg.Watch.Poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			info, err := os.Stat(t.path)
			if err != nil {
				continue
			}

			m.mu.Lock()

			changed := info.ModTime().After(t.modTime)
			if changed {
				t.modTime = info.ModTime()
			}

			m.mu.Unlock()

			if changed {
				t.debouncer.Trigger()
			}
		}
	}
}

// processEvents handles fsnotify events and routes them to targets
func (m *manager) processEvents() {
	for {
		select {
		case event, ok := <-m.fsWatcher.Events:
			if !ok {
				return
			}

			m.handleEvent(event)
		case err, ok := <-m.fsWatcher.Errors:
			if !ok {
				return
			}

			m.log.Error().Err(err).Msg("watcher error")
		}
	}
}

// handleEvent processes a single fsnotify event
func (m *manager) handleEvent(event fsnotify.Event) {
	if !isRelevantEvent(event) {
		return
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, t := range m.targets {
		relPath, err := filepath.Rel(t.dir, event.Name)
		if err != nil {
			continue
		}

		if t.matcher.Match(relPath) {
			t.debouncer.Trigger()
		}
	}
}

// emitChanged publishes a file changed event to the bus
func (m *manager) emitChanged(path string) {
	m.mu.RLock()
	closed := m.closed
	m.mu.RUnlock()

	if closed {
		return
	}

	m.events.Publish(bus.Message{
		Type:     bus.EventFileChanged,
		Data:     bus.FileChanged{Path: path},
		Critical: true,
	})
}

// isRelevantEvent returns true if the event can mean new log records
func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename)
}
