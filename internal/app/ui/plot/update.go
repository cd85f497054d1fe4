package plot

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"kelvin/internal/app/bus"
	"kelvin/internal/app/session"
	"kelvin/internal/app/timespan"
	"kelvin/internal/app/ui/components"
	"kelvin/internal/app/viewport"
)

// Tick timing constants
const (
	tickInterval       = components.UITickInterval
	tickCounterMaximum = 1000000
)

// msgMsg wraps a bus message for tea messaging
type msgMsg bus.Message

// tickMsg signals a UI tick for animations
type tickMsg time.Time

// channelClosedMsg signals the event channel has closed
type channelClosedMsg struct{}

// openDoneMsg reports the outcome of the initial file open
type openDoneMsg struct{ err error }

// reloadDoneMsg reports the outcome of a manual reload
type reloadDoneMsg struct{ err error }

// statsMsg carries the viewer's own resource usage
type statsMsg struct {
	cpu float64
	mem float64
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width

		chartHeight := msg.Height - components.ChartHeightPadding - len(m.state.channels)
		m.resizeCanvas(msg.Width-2, chartHeight)
		m.updateChart()

		if !m.state.ready {
			m.state.ready = true
		}

		return m, nil

	case tickMsg:
		m.ui.tickCounter++

		if m.ui.tickCounter >= tickCounterMaximum {
			m.ui.tickCounter = 0
		}

		m.ui.pulse.Update()

		return m, tickCmd()

	case statsMsg:
		m.state.appCPU = msg.cpu
		m.state.appMEM = msg.mem

		return m, statsCmd(m.monitor)

	case openDoneMsg:
		if msg.err != nil {
			m.state.loadErr = msg.err
		}

		return m, nil

	case reloadDoneMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("TUI: Manual reload failed")
		}

		return m, nil

	case msgMsg:
		return m.handleMessage(bus.Message(msg))

	case channelClosedMsg:
		m.log.Warn().Msg("TUI: Event channel closed, quitting")

		return m, tea.Quit
	}

	return m, nil
}

// handleMessage dispatches bus messages to specific handlers
func (m Model) handleMessage(msg bus.Message) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case bus.EventPhaseChanged:
		m = m.handlePhaseChanged(msg)
	case bus.EventFileLoaded:
		m = m.handleFileLoaded(msg)
	case bus.EventFileLoadFailed:
		m = m.handleFileLoadFailed(msg)
	case bus.EventRangeChanged:
		m = m.handleRangeChanged(msg)
	case bus.EventSeriesReplaced:
		m.updateChart()
	case bus.EventFollowToggled:
		m = m.handleFollowToggled(msg)
	}

	return m, waitForMsgCmd(m.msgChan)
}

// handlePhaseChanged tracks the session lifecycle
func (m Model) handlePhaseChanged(msg bus.Message) Model {
	data, ok := msg.Data.(bus.PhaseChanged)
	if !ok {
		return m
	}

	m.state.phase = data.Phase
	m.applyFollowing(data.Phase == bus.PhaseFollowing)

	return m
}

// handleFileLoaded refreshes the channel list and the chart
func (m Model) handleFileLoaded(msg bus.Message) Model {
	data, ok := msg.Data.(bus.FileLoaded)
	if !ok {
		return m
	}

	m.state.path = data.Path
	m.state.channels = m.session.Channels()
	m.state.loadErr = nil

	if m.state.selected >= len(m.state.channels) {
		m.state.selected = 0
	}

	m.syncInputs()
	m.updateChart()

	return m
}

// handleFileLoadFailed records the error for the header
func (m Model) handleFileLoadFailed(msg bus.Message) Model {
	data, ok := msg.Data.(bus.FileLoadFailed)
	if !ok {
		return m
	}

	m.state.loadErr = data.Error

	return m
}

// handleRangeChanged applies a settled window to the view and mirrors it
// into the range inputs
func (m Model) handleRangeChanged(msg bus.Message) Model {
	data, ok := msg.Data.(bus.RangeChanged)
	if !ok {
		return m
	}

	m.window.SetXWindow(data.Start, data.End)
	m.syncInputs()
	m.updateChart()

	return m
}

// handleFollowToggled flips the live-follow indicator
func (m Model) handleFollowToggled(msg bus.Message) Model {
	data, ok := msg.Data.(bus.FollowToggled)
	if !ok {
		return m
	}

	m.applyFollowing(data.Following)

	return m
}

func (m *Model) applyFollowing(following bool) {
	m.state.following = following

	if following {
		m.ui.pulse.Start()
	} else {
		m.ui.pulse.Stop()
	}
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.ui.keys.ForceQuit) {
		return m, tea.Quit
	}

	if idx, ok := m.focusedInput(); ok {
		return m.handleInputKey(msg, idx)
	}

	switch {
	case key.Matches(msg, m.ui.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.ui.keys.Up):
		if m.state.selected > 0 {
			m.state.selected--
		}

		return m, nil

	case key.Matches(msg, m.ui.keys.Down):
		if m.state.selected < len(m.state.channels)-1 {
			m.state.selected++
		}

		return m, nil

	case key.Matches(msg, m.ui.keys.ToggleChannel):
		return m.handleToggleChannel()

	case key.Matches(msg, m.ui.keys.AutoRange):
		if m.window.AutoRangeY(m.session.Mode()) {
			m.updateChart()
		}

		return m, nil

	case key.Matches(msg, m.ui.keys.ViewAll):
		m.window.ViewAll()

		return m, nil

	case key.Matches(msg, m.ui.keys.LogScale):
		return m.handleScaleKey(viewport.Logarithmic)

	case key.Matches(msg, m.ui.keys.Normalized):
		return m.handleScaleKey(viewport.Normalized)

	case key.Matches(msg, m.ui.keys.Follow):
		return m, followCmd(m.ctx, m.session, !m.state.following)

	case key.Matches(msg, m.ui.keys.Reload):
		return m, reloadCmd(m.ctx, m.session)

	case key.Matches(msg, m.ui.keys.ToggleTips):
		m.ui.showTips = !m.ui.showTips

		return m, nil

	case key.Matches(msg, m.ui.keys.CycleFocus):
		m.ui.focus = focusStart

		return m, m.ui.inputs[inputStart].Focus()
	}

	return m, nil
}

// handleToggleChannel flips the selected channel's visibility. The ranges
// stay put; re-ranging after a toggle is an explicit action.
func (m Model) handleToggleChannel() (tea.Model, tea.Cmd) {
	ch, ok := m.selectedChannel()
	if !ok {
		return m, nil
	}

	m.session.SetChannelVisible(m.state.selected, !ch.Visible)
	m.state.channels = m.session.Channels()
	m.updateChart()

	return m, nil
}

// handleScaleKey toggles between the given scale mode and linear
func (m Model) handleScaleKey(mode viewport.ScaleMode) (tea.Model, tea.Cmd) {
	if m.session.Mode() == mode {
		mode = viewport.Linear
	}

	m.session.SetMode(mode)
	m.state.channels = m.session.Channels()
	m.updateChart()

	return m, nil
}

// handleInputKey drives the focused range input through the span codec
func (m Model) handleInputKey(msg tea.KeyMsg, idx int) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ui.keys.Blur):
		m.ui.inputs[idx].Blur()
		m.ui.focus = focusChannels
		m.syncInputs()

		return m, nil

	case key.Matches(msg, m.ui.keys.CycleFocus):
		m.commitInput(idx)

		return m.cycleInputFocus(idx)

	case key.Matches(msg, m.ui.keys.Commit):
		m.commitInput(idx)

		return m, nil

	case key.Matches(msg, m.ui.keys.Up):
		m.stepInput(idx, 1)

		return m, nil

	case key.Matches(msg, m.ui.keys.Down):
		m.stepInput(idx, -1)

		return m, nil
	}

	var cmd tea.Cmd

	m.ui.inputs[idx], cmd = m.ui.inputs[idx].Update(msg)

	text, cursor := timespan.Sanitize(m.ui.inputs[idx].Value(), m.ui.inputs[idx].Position())
	m.ui.inputs[idx].SetValue(text)
	m.ui.inputs[idx].SetCursor(cursor)

	m.styleInput(idx)

	return m, cmd
}

// cycleInputFocus moves focus to the next range input, wrapping back to
// the channel list after the end input
func (m Model) cycleInputFocus(idx int) (tea.Model, tea.Cmd) {
	m.ui.inputs[idx].Blur()

	switch m.ui.focus {
	case focusStart:
		m.ui.focus = focusSpan
	case focusSpan:
		m.ui.focus = focusEnd
	default:
		m.ui.focus = focusChannels

		return m, nil
	}

	next, _ := m.focusedInput()

	return m, m.ui.inputs[next].Focus()
}

// commitInput settles the edited text and applies the changed value to the
// range controller. The controller answers with a range event that syncs
// all three inputs back.
func (m *Model) commitInput(idx int) {
	span, changed := timespan.Commit(m.state.lastGood[idx], m.ui.inputs[idx].Value())

	m.state.lastGood[idx] = span
	m.ui.inputs[idx].SetValue(timespan.Format(span))
	m.styleInput(idx)

	if !changed {
		return
	}

	lo, _ := m.ranges.Bounds()

	switch idx {
	case inputStart:
		m.ranges.SetStart(lo + span.TotalSeconds())
	case inputSpan:
		m.ranges.SetSpan(span.TotalSeconds())
	case inputEnd:
		m.ranges.SetEnd(lo + span.TotalSeconds())
	}
}

// stepInput increments the field under the cursor and applies the result
// immediately, spinbox style
func (m *Model) stepInput(idx int, delta float64) {
	ti := m.ui.inputs[idx]
	field := timespan.FieldAt(ti.Value(), ti.Position())

	span := m.state.lastGood[idx]
	if state, parsed := timespan.Parse(ti.Value()); state == timespan.Acceptable {
		span = parsed
	}

	stepped := timespan.Step(span, field, delta)

	m.ui.inputs[idx].SetValue(timespan.Format(stepped))
	m.commitInput(idx)
}

// styleInput colors an input by the validity of its text
func (m *Model) styleInput(idx int) {
	state, _ := timespan.Parse(m.ui.inputs[idx].Value())

	switch state {
	case timespan.Acceptable:
		m.ui.inputs[idx].TextStyle = inputAcceptableStyle
	case timespan.Intermediate:
		m.ui.inputs[idx].TextStyle = inputIntermediateStyle
	default:
		m.ui.inputs[idx].TextStyle = inputInvalidStyle
	}
}

// syncInputs mirrors the settled window into the range inputs. Inputs hold
// elapsed time since the start of the recording; a focused input keeps the
// user's text.
func (m *Model) syncInputs() {
	lo, _ := m.ranges.Bounds()
	start, end := m.ranges.Window()

	m.state.lastGood[inputStart] = timespan.FromSeconds(start - lo)
	m.state.lastGood[inputSpan] = timespan.FromSeconds(m.ranges.Span())
	m.state.lastGood[inputEnd] = timespan.FromSeconds(end - lo)

	for i := range m.ui.inputs {
		if m.ui.inputs[i].Focused() {
			continue
		}

		m.ui.inputs[i].SetValue(timespan.Format(m.state.lastGood[i]))
		m.styleInput(i)
	}
}

// waitForMsgCmd returns a command that waits for the next message
func waitForMsgCmd(msgChan <-chan bus.Message) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-msgChan
		if !ok {
			return channelClosedMsg{}
		}

		return msgMsg(msg)
	}
}

// tickCmd returns a command that sends a tick after the interval
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// openCmd opens the log file off the UI goroutine
func openCmd(ctx context.Context, sess *session.Session, path string) tea.Cmd {
	return func() tea.Msg {
		return openDoneMsg{err: sess.Open(ctx, path)}
	}
}

// reloadCmd re-parses the log file off the UI goroutine
func reloadCmd(ctx context.Context, sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		return reloadDoneMsg{err: sess.Reload(ctx, sess.Following())}
	}
}

// followCmd flips live-follow mode; an unsupported transition is dropped
func followCmd(ctx context.Context, sess *session.Session, follow bool) tea.Cmd {
	return func() tea.Msg {
		_ = sess.SetFollowing(ctx, follow)

		return nil
	}
}
