package components

import "github.com/charmbracelet/lipgloss"

// Tip styles
var (
	tipKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	tipDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
)

func tipKey(k string) string  { return tipKeyStyle.Render(k) }
func tipDesc(d string) string { return tipDescStyle.Render(d) }

// Tips contains helpful hints displayed in the footer
var Tips = []string{
	tipDesc("Press ") + tipKey("f") + tipDesc(" to follow a growing log file"),
	tipDesc("Press ") + tipKey("a") + tipDesc(" to fit the y axis to the visible data"),
	tipDesc("Press ") + tipKey("v") + tipDesc(" to view the whole recording"),
	tipDesc("Press ") + tipKey("space") + tipDesc(" to hide the selected channel"),
	tipDesc("Press ") + tipKey("l") + tipDesc(" for log scale, ") + tipKey("n") + tipDesc(" for normalized"),
	tipDesc("Edit spans as ") + tipKey("d:hh:mm:ss") + tipDesc(", fields fill right to left"),
	tipDesc("Use ") + tipKey("↑/↓") + tipDesc(" in a field to step the digit under the cursor"),
	tipDesc("Run headless with ") + tipKey("kelvin --no-ui run.vcl"),
	tipDesc("Press ") + tipKey("t") + tipDesc(" to hide these tips"),
}
