package plot

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"kelvin/internal/app/monitor"
	"kelvin/internal/app/ui/components"
)

// statsCmd samples the viewer's own CPU and memory on a slow tick
func statsCmd(mon monitor.Monitor) tea.Cmd {
	return tea.Tick(components.StatsPollInterval, func(_ time.Time) tea.Msg {
		stats, err := mon.SelfStats()
		if err != nil {
			return statsMsg{}
		}

		return statsMsg{cpu: stats.CPU, mem: stats.MEM}
	})
}

// formatCPU renders a CPU percentage for the footer
func formatCPU(cpu float64) string {
	return fmt.Sprintf("%.1f%%", cpu)
}

// formatMEM renders a memory size in MB for the footer
func formatMEM(mem float64) string {
	return fmt.Sprintf("%.0fMB", mem)
}
