package components

import "time"

// UI timing constants
const (
	// UITickInterval is the base tick rate for the plot UI
	UITickInterval = 100 * time.Millisecond

	// Derived FPS for animations (ticks per second)
	UITicksPerSecond = int(time.Second / UITickInterval)

	// StatsPollInterval is how often the viewer samples its own CPU and
	// memory usage for the footer
	StatsPollInterval = 2 * time.Second

	// TipRotationTicks is how many UI ticks each footer tip stays up
	TipRotationTicks = 80
)

// Generic layout constants
const (
	ChartHeightPadding = 9
	MinChartHeight     = 6
	MinChartWidth      = 20
)

// Header layout constants
const (
	HeaderSeparatorMinWidth = 4
	HeaderFixedChars        = 10
)

// Footer layout constants
const (
	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5
)

// Legend layout constants
const (
	LegendNameMinWidth = 8
	LegendNameMaxWidth = 24
)
