package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonitor(t *testing.T) {
	m := NewMonitor()

	assert.NotNil(t, m)
}

func TestGetStats_InvalidPID(t *testing.T) {
	m := NewMonitor()

	tests := []struct {
		name string
		pid  int
	}{
		{name: "zero PID", pid: 0},
		{name: "negative PID", pid: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := m.GetStats(tt.pid)

			assert.NoError(t, err)
			assert.Equal(t, Stats{}, stats)
		})
	}
}

func TestSelfStats(t *testing.T) {
	m := NewMonitor()

	stats, err := m.SelfStats()

	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.CPU, 0.0)
	assert.GreaterOrEqual(t, stats.MEM, 0.0)
}

func TestGetStats_NonExistentProcess(t *testing.T) {
	m := NewMonitor()

	_, err := m.GetStats(999999999)

	assert.Error(t, err)
}

func TestGetStats_MaxInt32PID(t *testing.T) {
	m := NewMonitor()

	stats, err := m.GetStats(2147483648)

	assert.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
}
