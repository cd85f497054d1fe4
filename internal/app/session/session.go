// Package session orchestrates the viewer lifecycle: opening a log file,
// replotting on disk changes and tracking whether the chart follows live
// data.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/looplab/fsm"

	"kelvin/internal/app/bus"
	"kelvin/internal/app/errors"
	"kelvin/internal/app/logdata"
	"kelvin/internal/app/plotdata"
	"kelvin/internal/app/viewport"
	"kelvin/internal/config"
	"kelvin/internal/config/logger"
)

// Channel describes one plottable channel of the opened file
type Channel struct {
	Name    string
	Color   string
	Visible bool
}

// Session drives the viewer: it owns the data model, decides which
// channels get plotted and reacts to file changes
type Session struct {
	mu sync.Mutex

	cfg    *config.Config
	events bus.Bus
	window *plotdata.Window
	log    logger.Logger

	machine  *fsm.FSM
	model    *logdata.Model
	path     string
	channels []Channel
	columns  []string
	mode     viewport.ScaleMode
}

// NewSession creates a new Session
func NewSession(cfg *config.Config, events bus.Bus, window *plotdata.Window, log logger.Logger) *Session {
	return &Session{
		cfg:     cfg,
		events:  events,
		window:  window,
		log:     log,
		machine: newSessionFSM(log),
		model:   logdata.NewModel(),
		mode:    viewport.ParseScaleMode(cfg.Plot.Scale),
	}
}

// Open parses a log file and plots its channels. On failure the session
// lands in the failed state and the error is published, not swallowed.
func (s *Session) Open(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.machine.Event(ctx, Open); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrUnsupportedTransition, err)
	}

	s.publishPhase()

	header, columns, err := logdata.Parse(path)
	if err != nil {
		_ = s.machine.Event(ctx, Fail)
		s.publishPhase()

		s.events.Publish(bus.Message{
			Type:     bus.EventFileLoadFailed,
			Data:     bus.FileLoadFailed{Path: path, Error: err},
			Critical: true,
		})

		return err
	}

	s.model.SetData(header, columns)
	s.path = path
	s.channels = s.buildChannels()

	s.plotLocked()

	if err := s.machine.Event(ctx, Loaded); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrUnsupportedTransition, err)
	}

	s.publishPhase()

	s.events.Publish(bus.Message{
		Type: bus.EventFileLoaded,
		Data: bus.FileLoaded{
			Path:     path,
			Channels: s.model.ColumnCount(),
			Rows:     s.model.RowCount(),
		},
		Critical: true,
	})

	s.log.Info().
		Str("path", path).
		Int("channels", s.model.ColumnCount()).
		Int("rows", s.model.RowCount()).
		Msg("log file loaded")

	return nil
}

// Reload re-parses the opened file and updates every series in place.
// With roll set the X window shifts to keep tracking the newest samples.
func (s *Session) Reload(ctx context.Context, roll bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.ErrNoData
	}

	header, columns, err := logdata.Parse(s.path)
	if err != nil {
		s.log.Warn().Err(err).Msg("reload failed, keeping current data")

		return err
	}

	s.model.SetData(header, columns)

	for i, ch := range s.channels {
		s.window.Replot(i, s.model, ch.Name, s.mode, ch.Color, roll)
	}

	s.events.Publish(bus.Message{
		Type: bus.EventSeriesReplaced,
		Data: bus.SeriesReplaced{Rolled: roll},
	})

	return nil
}

// SetFollowing flips live-follow mode. Only a ready session can start
// following and only a following one can stop.
func (s *Session) SetFollowing(ctx context.Context, follow bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := Unfollow
	if follow {
		event = Follow
	}

	if err := s.machine.Event(ctx, event); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrUnsupportedTransition, err)
	}

	s.publishPhase()

	s.events.Publish(bus.Message{
		Type: bus.EventFollowToggled,
		Data: bus.FollowToggled{Following: follow},
	})

	return nil
}

// SetChannelVisible toggles one channel's line without re-ranging
func (s *Session) SetChannelVisible(index int, visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.channels) {
		return
	}

	s.channels[index].Visible = visible
	s.window.SetLineVisible(index, visible)
}

// Phase returns the current lifecycle phase
func (s *Session) Phase() bus.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()

	return bus.Phase(s.machine.Current())
}

// Following reports whether the session tracks live data
func (s *Session) Following() bool {
	return s.Phase() == bus.PhaseFollowing
}

// Channels returns a snapshot of the plotted channels
func (s *Session) Channels() []Channel {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Channel, len(s.channels))
	copy(out, s.channels)

	return out
}

// Path returns the opened file path
func (s *Session) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.path
}

// Model returns the tabular data model
func (s *Session) Model() *logdata.Model {
	return s.model
}

// Mode returns the active scale mode
func (s *Session) Mode() viewport.ScaleMode {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mode
}

// SetMode switches the scale mode and replots everything under it
func (s *Session) SetMode(mode viewport.ScaleMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == mode {
		return
	}

	s.mode = mode

	if len(s.channels) > 0 {
		s.plotLocked()
	}
}

// SetColumns restricts the plotted channels to the named columns, in the
// given order. Takes effect on the next Open.
func (s *Session) SetColumns(names []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.columns = names
}

// buildChannels derives the plottable channel list from the header:
// every non-time column, configured channels first in their declared
// order. An explicit column filter replaces both. Callers hold the mutex.
func (s *Session) buildChannels() []Channel {
	header := s.model.Header()

	names := make([]string, 0, len(header))
	seen := make(map[string]bool, len(header))

	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}

	if len(s.columns) > 0 {
		for _, name := range s.columns {
			if present[name] && !plotdata.IsTimeColumn(name) && !seen[name] {
				names = append(names, name)
				seen[name] = true
			}
		}

		return s.channelsFor(names)
	}

	for _, name := range s.cfg.ChannelOrder {
		if present[name] && !plotdata.IsTimeColumn(name) && !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}

	for _, name := range header {
		if !plotdata.IsTimeColumn(name) && !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}

	return s.channelsFor(names)
}

// channelsFor attaches configured colors and visibility to channel names
func (s *Session) channelsFor(names []string) []Channel {
	channels := make([]Channel, len(names))
	for i, name := range names {
		channels[i] = Channel{
			Name:    name,
			Color:   s.cfg.ChannelColor(name, i),
			Visible: s.cfg.ChannelVisible(name),
		}
	}

	return channels
}

// plotLocked rebuilds every series from the current model. Callers hold
// the mutex.
func (s *Session) plotLocked() {
	names := make([]string, len(s.channels))
	colors := make([]string, len(s.channels))
	visibility := make([]bool, len(s.channels))

	for i, ch := range s.channels {
		names[i] = ch.Name
		colors[i] = ch.Color
		visibility[i] = ch.Visible
	}

	s.window.Plot(s.model, names, s.mode, colors, visibility)
}

func (s *Session) publishPhase() {
	s.events.Publish(bus.Message{
		Type: bus.EventPhaseChanged,
		Data: bus.PhaseChanged{Phase: bus.Phase(s.machine.Current())},
	})
}
