// Package ui assembles the Bubble Tea program around the plot view.
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"kelvin/internal/app/bus"
	"kelvin/internal/app/monitor"
	"kelvin/internal/app/plotdata"
	"kelvin/internal/app/session"
	"kelvin/internal/app/timerange"
	"kelvin/internal/app/ui/plot"
	"kelvin/internal/config/logger"
)

// UI creates a Bubble Tea program for the given log file
type UI func(ctx context.Context, path string) *tea.Program

// Params contains dependencies for creating the UI factory
type Params struct {
	fx.In

	Bus     bus.Bus
	Session *session.Session
	Window  *plotdata.Window
	Ranges  *timerange.Controller
	Monitor monitor.Monitor
	Logger  logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params Params) UI {
	return func(ctx context.Context, path string) *tea.Program {
		model := plot.NewModel(
			ctx,
			path,
			params.Bus,
			params.Session,
			params.Window,
			params.Ranges,
			params.Monitor,
			params.Logger,
		)

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p
	}
}
