package components

import "github.com/charmbracelet/lipgloss"

var (
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	HeaderStyle = lipgloss.NewStyle().
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Padding(0, 1)

	FooterHelpStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ContentStyle = lipgloss.NewStyle().
			Padding(0, 1)

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 2)

	PhaseReadyStyle = lipgloss.NewStyle().
			Foreground(ColorReady).
			Bold(true)

	PhaseLoadingStyle = lipgloss.NewStyle().
				Foreground(ColorLoading).
				Bold(true)

	PhaseFailedStyle = lipgloss.NewStyle().
				Foreground(ColorFailed).
				Bold(true)

	PhaseFollowingStyle = lipgloss.NewStyle().
				Foreground(ColorFollowing).
				Bold(true)

	PhaseMutedStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	StatsStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
