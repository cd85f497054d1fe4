package plot

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kelvin/internal/app/bus"
	"kelvin/internal/app/ui/components"
)

// View renders the UI
func (m Model) View() string {
	if !m.state.ready {
		return "Initializing…"
	}

	sections := []string{
		components.RenderHeader(m.ui.width, m.renderTitle(), m.renderPhase()),
		m.renderChart(),
		m.renderLegend(),
		m.renderInputs(),
		m.renderStatusLine(),
		components.RenderFooter(m.ui.width, m.ui.help.View(m.ui.keys)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTitle renders the file name with the live-follow indicator
func (m Model) renderTitle() string {
	name := "no file"
	if m.state.path != "" {
		name = filepath.Base(m.state.path)
	}

	title := components.TitleStyle.Render(name)
	if m.state.following {
		title = m.ui.pulse.Render(components.PhaseFollowingStyle) + " " + title
	}

	return title
}

// renderPhase renders the session phase, colored by severity
func (m Model) renderPhase() string {
	switch m.state.phase {
	case bus.PhaseLoading:
		return components.PhaseLoadingStyle.Render("loading…")
	case bus.PhaseReady:
		return components.PhaseReadyStyle.Render("ready")
	case bus.PhaseFollowing:
		return components.PhaseFollowingStyle.Render("following")
	case bus.PhaseFailed:
		return components.PhaseFailedStyle.Render("failed")
	default:
		return components.PhaseMutedStyle.Render("idle")
	}
}

// renderChart renders the braille canvas or an empty state
func (m Model) renderChart() string {
	if m.state.loadErr != nil {
		return components.EmptyStateStyle.Render(errorStyle.Render(m.state.loadErr.Error()))
	}

	if m.ui.chart == "" {
		return components.EmptyStateStyle.Render("No data")
	}

	return components.ContentStyle.Render(m.ui.chart)
}

// renderLegend renders one row per channel with its color and visibility
func (m Model) renderLegend() string {
	if len(m.state.channels) == 0 {
		return ""
	}

	rows := make([]string, 0, len(m.state.channels))

	for i, ch := range m.state.channels {
		marker := "[x]"
		if !ch.Visible {
			marker = "[ ]"
		}

		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(ch.Color)).Render("●")

		name := components.Truncate(ch.Name, components.LegendNameMaxWidth)
		if !ch.Visible {
			name = legendHiddenStyle.Render(name)
		}

		row := fmt.Sprintf("%s %s %-*s", marker, dot, components.LegendNameMinWidth, name)

		if i == m.state.selected && m.ui.focus == focusChannels {
			row = legendSelectedStyle.Render("▶ " + row)
		} else {
			row = "  " + row
		}

		rows = append(rows, legendRowStyle.Render(row))
	}

	return strings.Join(rows, "\n")
}

// renderInputs renders the start/span/end range editors
func (m Model) renderInputs() string {
	return components.ContentStyle.Render(
		labelStyle.Render("start ") + m.ui.inputs[inputStart].View() +
			labelStyle.Render("  span ") + m.ui.inputs[inputSpan].View() +
			labelStyle.Render("  end ") + m.ui.inputs[inputEnd].View(),
	)
}

// renderStatusLine renders resource usage and the rotating tip
func (m Model) renderStatusLine() string {
	parts := make([]string, 0, 2)

	if m.state.appCPU != 0 || m.state.appMEM != 0 {
		parts = append(parts, components.StatsStyle.Render(
			fmt.Sprintf("cpu %s • mem %s", formatCPU(m.state.appCPU), formatMEM(m.state.appMEM)),
		))
	}

	if m.ui.showTips && len(components.Tips) > 0 {
		rotation := m.ui.tickCounter / components.TipRotationTicks
		parts = append(parts, components.Tips[(m.ui.tipOffset+rotation)%len(components.Tips)])
	}

	return components.ContentStyle.Render(strings.Join(parts, "   "))
}
