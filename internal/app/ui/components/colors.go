package components

import "github.com/charmbracelet/lipgloss"

// Semantic colors shared by every view
const (
	ColorPrimary   = lipgloss.Color("#00AFFF") // Blue - titles and focus
	ColorBorder    = lipgloss.Color("8")       // Gray - separators and help text
	ColorMuted     = lipgloss.Color("7")       // Light gray - secondary text
	ColorReady     = lipgloss.Color("10")      // Green - loaded file
	ColorLoading   = lipgloss.Color("11")      // Yellow - parse in progress
	ColorFailed    = lipgloss.Color("9")       // Red - load failure
	ColorFollowing = lipgloss.Color("13")      // Magenta - live follow
)
