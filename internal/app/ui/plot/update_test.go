package plot

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kelvin/internal/app/bus"
	"kelvin/internal/app/viewport"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	next, _ := m.Update(msg)

	out, ok := next.(Model)
	require.True(t, ok)

	return out
}

func Test_Update_WindowSizeMarksReady(t *testing.T) {
	env := testModel(t)

	assert.False(t, env.model.state.ready)

	m := update(t, env.model, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.True(t, m.state.ready)
	assert.Equal(t, 100, m.ui.width)
}

func Test_Update_FileLoadedPopulatesChannels(t *testing.T) {
	env := testModel(t)

	m := update(t, env.model, msgMsg(bus.Message{
		Type: bus.EventFileLoaded,
		Data: bus.FileLoaded{Path: env.path, Channels: 3, Rows: 3},
	}))

	require.Len(t, m.state.channels, 2)
	assert.Equal(t, "T1(K)", m.state.channels[0].Name)
	assert.Equal(t, "00", m.ui.inputs[inputStart].Value())
	assert.Equal(t, "01:40", m.ui.inputs[inputSpan].Value(), "100 seconds of data")
}

func Test_Update_RangeChangedSyncsViewAndInputs(t *testing.T) {
	env := testModel(t)

	env.ranges.SetExternalRange(10, 70)

	m := update(t, env.model, msgMsg(bus.Message{
		Type: bus.EventRangeChanged,
		Data: bus.RangeChanged{Start: 10, End: 70, Span: 60, Source: bus.SourceExternal},
	}))

	view := env.window.ViewRange()
	assert.Equal(t, 10.0, view.X.Min)
	assert.Equal(t, 70.0, view.X.Max)

	assert.Equal(t, "10", m.ui.inputs[inputStart].Value())
	assert.Equal(t, "01:00", m.ui.inputs[inputSpan].Value())
	assert.Equal(t, "01:10", m.ui.inputs[inputEnd].Value())
}

func Test_Update_CommitStartEdit(t *testing.T) {
	env := testModel(t)

	m := update(t, env.model, keyMsg("tab"))
	require.True(t, m.ui.inputs[inputStart].Focused())

	m.ui.inputs[inputStart].SetValue("30")
	m = update(t, m, keyMsg("enter"))

	start, end := env.ranges.Window()
	assert.Equal(t, 30.0, start)
	assert.Equal(t, 100.0, end, "the end stays put on a start edit")
}

func Test_Update_TabCyclesThroughInputs(t *testing.T) {
	env := testModel(t)

	m := update(t, env.model, keyMsg("tab"))
	assert.Equal(t, focusStart, m.ui.focus)

	m = update(t, m, keyMsg("tab"))
	assert.Equal(t, focusSpan, m.ui.focus)

	m = update(t, m, keyMsg("tab"))
	assert.Equal(t, focusEnd, m.ui.focus)

	m = update(t, m, keyMsg("tab"))
	assert.Equal(t, focusChannels, m.ui.focus)
}

func Test_Update_EscLeavesInput(t *testing.T) {
	env := testModel(t)

	m := update(t, env.model, keyMsg("tab"))
	m.ui.inputs[inputStart].SetValue("5:")

	m = update(t, m, keyMsg("esc"))

	assert.Equal(t, focusChannels, m.ui.focus)
	assert.Equal(t, "00", m.ui.inputs[inputStart].Value(), "abandoned edits revert to the settled value")
}

func Test_StepInput_AppliesImmediately(t *testing.T) {
	env := testModel(t)

	m := env.model
	m.syncInputs()

	m.ui.inputs[inputSpan].SetValue("10")
	m.stepInput(inputSpan, 1)

	assert.Equal(t, "11", m.ui.inputs[inputSpan].Value())
	assert.Equal(t, 11.0, env.ranges.Span())
}

func Test_Update_ToggleChannelVisibility(t *testing.T) {
	env := testModel(t)

	m := update(t, env.model, msgMsg(bus.Message{
		Type: bus.EventFileLoaded,
		Data: bus.FileLoaded{Path: env.path},
	}))

	m = update(t, m, keyMsg(" "))

	assert.False(t, m.state.channels[0].Visible)
	assert.False(t, env.session.Channels()[0].Visible)
}

func Test_Update_ChannelSelection(t *testing.T) {
	env := testModel(t)

	m := update(t, env.model, msgMsg(bus.Message{
		Type: bus.EventFileLoaded,
		Data: bus.FileLoaded{Path: env.path},
	}))

	m = update(t, m, keyMsg("down"))
	assert.Equal(t, 1, m.state.selected)

	m = update(t, m, keyMsg("down"))
	assert.Equal(t, 1, m.state.selected, "selection stops at the last channel")

	m = update(t, m, keyMsg("up"))
	assert.Equal(t, 0, m.state.selected)
}

func Test_Update_ScaleToggles(t *testing.T) {
	env := testModel(t)

	m := update(t, env.model, keyMsg("l"))
	assert.Equal(t, viewport.Logarithmic, env.session.Mode())

	m = update(t, m, keyMsg("l"))
	assert.Equal(t, viewport.Linear, env.session.Mode())

	m = update(t, m, keyMsg("n"))
	assert.Equal(t, viewport.Normalized, env.session.Mode())
}

func Test_Update_FollowToggledStartsPulse(t *testing.T) {
	env := testModel(t)

	m := update(t, env.model, msgMsg(bus.Message{
		Type: bus.EventFollowToggled,
		Data: bus.FollowToggled{Following: true},
	}))

	assert.True(t, m.state.following)
	assert.True(t, m.ui.pulse.IsActive())

	m = update(t, m, msgMsg(bus.Message{
		Type: bus.EventFollowToggled,
		Data: bus.FollowToggled{Following: false},
	}))

	assert.False(t, m.state.following)
	assert.False(t, m.ui.pulse.IsActive())
}

func Test_Update_ChannelClosedQuits(t *testing.T) {
	env := testModel(t)

	_, cmd := env.model.Update(channelClosedMsg{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func Test_Update_InputRejectsLetters(t *testing.T) {
	env := testModel(t)

	m := update(t, env.model, keyMsg("tab"))
	m = update(t, m, keyMsg("1x2"))

	assert.Equal(t, "12", m.ui.inputs[inputStart].Value())
}
