// Package monitor samples the viewer's own resource usage for the status
// footer. Parsing a large log or normalizing many channels shows up here.
package monitor

import (
	"math"
	"os"

	"github.com/shirou/gopsutil/v4/process"
)

// Stats contains process resource statistics
type Stats struct {
	CPU float64
	MEM float64 // in MB
}

// Monitor provides process resource monitoring
type Monitor interface {
	GetStats(pid int) (Stats, error)
	SelfStats() (Stats, error)
}

type monitor struct{}

// NewMonitor creates a new Monitor instance
func NewMonitor() Monitor {
	return &monitor{}
}

// SelfStats returns the viewer's own resource usage
func (m *monitor) SelfStats() (Stats, error) {
	return m.GetStats(os.Getpid())
}

func (m *monitor) GetStats(pid int) (Stats, error) {
	if pid <= 0 || pid > math.MaxInt32 {
		return Stats{}, nil
	}

	proc, err := process.NewProcess(int32(pid)) // #nosec G115 -- PID range checked above
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{}

	cpuPercent, err := proc.CPUPercent()
	if err == nil {
		stats.CPU = cpuPercent
	}

	memInfo, err := proc.MemoryInfo()
	if err == nil {
		stats.MEM = float64(memInfo.RSS) / 1024 / 1024
	}

	return stats, nil
}
