package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"kelvin/internal/config"
)

var (
	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00AFFF"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))

	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00AFFF")).MarginTop(1)
	channelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	bodyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E"))
)

// printVersion prints the application name and version
func printVersion() {
	fmt.Println(appNameStyle.Render("kelvin") + " " + appVersionStyle.Render("v"+config.Version))
}
