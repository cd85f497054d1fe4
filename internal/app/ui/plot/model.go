package plot

import (
	"context"
	"math/rand"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	drawille "github.com/chriskim06/drawille-go"

	"kelvin/internal/app/bus"
	"kelvin/internal/app/monitor"
	"kelvin/internal/app/plotdata"
	"kelvin/internal/app/session"
	"kelvin/internal/app/timerange"
	"kelvin/internal/app/timespan"
	"kelvin/internal/app/ui/components"
	"kelvin/internal/config/logger"
)

// focusArea identifies what keyboard input currently drives
type focusArea int

// Focus areas, cycled with tab
const (
	focusChannels focusArea = iota
	focusStart
	focusSpan
	focusEnd
)

// Range input indices
const (
	inputStart = iota
	inputSpan
	inputEnd
	inputCount
)

const (
	defaultChartWidth  = 78
	defaultChartHeight = 16

	// chartResolution is the number of samples rendered per line,
	// independent of the terminal width
	chartResolution = 256

	inputWidth     = 12
	inputCharLimit = 16
)

// Model represents the Bubble Tea model for the plot UI
type Model struct {
	ctx     context.Context
	bus     bus.Bus
	session *session.Session
	window  *plotdata.Window
	ranges  *timerange.Controller
	monitor monitor.Monitor
	msgChan <-chan bus.Message

	state struct {
		path      string
		phase     bus.Phase
		channels  []session.Channel
		selected  int
		following bool
		ready     bool
		loadErr   error
		appCPU    float64
		appMEM    float64
		lastGood  [inputCount]timespan.Span
	}

	ui struct {
		width       int
		height      int
		keys        KeyMap
		help        help.Model
		tickCounter int
		showTips    bool
		tipOffset   int
		focus       focusArea
		inputs      [inputCount]textinput.Model
		pulse       *components.Pulse
		canvas      *drawille.Canvas
		chart       string
	}

	log logger.Logger
}

// NewModel creates a new plot UI model
func NewModel(
	ctx context.Context,
	path string,
	b bus.Bus,
	sess *session.Session,
	window *plotdata.Window,
	ranges *timerange.Controller,
	mon monitor.Monitor,
	log logger.Logger,
) Model {
	log = log.WithComponent("UI")
	msgChan := b.Subscribe(ctx)

	log.Debug().Msg("TUI: Created model and subscribed to events")

	m := Model{
		ctx:     ctx,
		bus:     b,
		session: sess,
		window:  window,
		ranges:  ranges,
		monitor: mon,
		msgChan: msgChan,
		log:     log,
	}

	m.state.path = path
	m.state.phase = bus.PhaseIdle
	m.state.channels = nil
	m.state.selected = 0

	m.ui.keys = DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.showTips = true
	m.ui.tipOffset = rand.Intn(len(components.Tips)) //nolint:gosec // not security-critical
	m.ui.focus = focusChannels
	m.ui.pulse = components.NewPulse()

	for i := range m.ui.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "00:00"
		ti.Width = inputWidth
		ti.CharLimit = inputCharLimit
		m.ui.inputs[i] = ti
	}

	m.resizeCanvas(defaultChartWidth, defaultChartHeight)

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		openCmd(m.ctx, m.session, m.state.path),
		waitForMsgCmd(m.msgChan),
		tickCmd(),
		statsCmd(m.monitor),
	)
}

// resizeCanvas replaces the braille canvas, keeping its settings
func (m *Model) resizeCanvas(w, h int) {
	if w < components.MinChartWidth {
		w = components.MinChartWidth
	}

	if h < components.MinChartHeight {
		h = components.MinChartHeight
	}

	c := drawille.NewCanvas(w, h)
	c.NumDataPoints = chartResolution
	c.ShowAxis = false

	m.ui.canvas = &c
}

// selectedChannel returns the channel under the cursor
func (m Model) selectedChannel() (session.Channel, bool) {
	if m.state.selected < 0 || m.state.selected >= len(m.state.channels) {
		return session.Channel{}, false
	}

	return m.state.channels[m.state.selected], true
}

// focusedInput maps the focus area to a range input index
func (m Model) focusedInput() (int, bool) {
	switch m.ui.focus {
	case focusStart:
		return inputStart, true
	case focusSpan:
		return inputSpan, true
	case focusEnd:
		return inputEnd, true
	default:
		return 0, false
	}
}
