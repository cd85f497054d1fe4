package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kelvin/internal/config"
)

// RenderLine draws a horizontal rule of the given display width
func RenderLine(width int) string {
	if width < 0 {
		width = 0
	}

	return SeparatorStyle.Render(strings.Repeat("─", width))
}

// RenderHeader draws the top rule with the file title on the left and the
// session phase on the right: ─── title ────── phase ───
func RenderHeader(width int, title, info string) string {
	infoWidth := lipgloss.Width(info)

	room := width - infoWidth - HeaderSeparatorMinWidth - HeaderFixedChars
	if room > 0 && lipgloss.Width(title) > room {
		title = Truncate(title, room)
	}

	fill := width - lipgloss.Width(title) - infoWidth - HeaderFixedChars
	if fill < HeaderSeparatorMinWidth {
		fill = HeaderSeparatorMinWidth
	}

	segments := []string{RenderLine(3), title, RenderLine(fill), info, RenderLine(3)}

	return HeaderStyle.Render(strings.Join(segments, " "))
}

// RenderFooter draws the bottom rule carrying the version, with the key help
// underneath
func RenderFooter(width int, helpText string) string {
	version := "v" + config.Version

	fill := width - lipgloss.Width(version) - FooterFixedChars
	if fill < FooterSeparatorMinWidth {
		fill = FooterSeparatorMinWidth
	}

	rule := strings.Join([]string{RenderLine(fill), version, RenderLine(3)}, " ")
	help := FooterHelpStyle.Render(HelpStyle.Render(helpText))

	return FooterStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rule, help))
}

// Truncate shortens a string to maxWidth display cells, ellipsis included.
// Widths are measured in cells, not runes, so wide glyphs in channel names
// count double.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	var b strings.Builder

	used := 0

	for _, r := range s {
		w := lipgloss.Width(string(r))
		if used+w > maxWidth-1 {
			break
		}

		b.WriteRune(r)
		used += w
	}

	return b.String() + "…"
}
