package plot

import (
	"github.com/charmbracelet/lipgloss"
	drawille "github.com/chriskim06/drawille-go"

	"kelvin/internal/app/ui/components"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(components.ColorBorder)

	inputAcceptableStyle = lipgloss.NewStyle().
				Foreground(components.ColorReady)

	inputIntermediateStyle = lipgloss.NewStyle().
				Foreground(components.ColorLoading)

	inputInvalidStyle = lipgloss.NewStyle().
				Foreground(components.ColorFailed)

	legendSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("235"))

	legendRowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	legendHiddenStyle = lipgloss.NewStyle().
				Foreground(components.ColorBorder)

	errorStyle = lipgloss.NewStyle().
			Foreground(components.ColorFailed)
)

// chartPalette is cycled over channels whose configured color has no
// braille counterpart
var chartPalette = []drawille.Color{
	drawille.Blue,
	drawille.Red,
	drawille.Green,
	drawille.Orange,
	drawille.Violet,
	drawille.Cyan,
	drawille.Yellow,
	drawille.Magenta,
}

// chartColorByHex maps the configured channel palette onto braille line
// colors
var chartColorByHex = map[string]drawille.Color{
	"#00afff": drawille.Blue,
	"#ff5f87": drawille.Red,
	"#5fd700": drawille.Green,
	"#ffaf00": drawille.Orange,
	"#af87ff": drawille.Violet,
	"#00d7d7": drawille.Cyan,
	"#ff8700": drawille.Yellow,
	"#d75fd7": drawille.Magenta,
}

// railColor pins the canvas scale to the viewport without drawing
// attention to itself
var railColor = drawille.DimGray

// chartColor resolves a channel's line color, falling back to the palette
// by position
func chartColor(hex string, position int) drawille.Color {
	if c, ok := chartColorByHex[hex]; ok {
		return c
	}

	return chartPalette[position%len(chartPalette)]
}
