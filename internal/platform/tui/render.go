package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-colorswitch/internal/core"
)

// backdrop is the slate background behind the whole play area.
const backdrop = lipgloss.Color("#2C3E50")

// palette holds the foreground of each core.Color.
var palette = map[core.Color]lipgloss.Color{
	core.ColorDefault: lipgloss.Color("#ECF0F1"),
	core.ColorRed:     lipgloss.Color("#E74C3C"),
	core.ColorYellow:  lipgloss.Color("#F1C40F"),
	core.ColorGreen:   lipgloss.Color("#2ECC71"),
	core.ColorBlue:    lipgloss.Color("#3498DB"),
	core.ColorWhite:   lipgloss.Color("#FFFFFF"),
	core.ColorGray:    lipgloss.Color("#7F8C8D"),
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(palette))
	for c, fg := range palette {
		style := lipgloss.NewStyle().Background(backdrop).Foreground(fg)
		if c == core.ColorWhite {
			style = style.Bold(true)
		}
		styles[c] = style
	}
	return styles
}

// styleFor returns the style of a color, falling back to the default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
