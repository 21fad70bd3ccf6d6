package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-fruits/internal/core"
)

var plainStyle = lipgloss.NewStyle()

// styleFor maps a core.Color to a lipgloss foreground in the 16-color palette.
func styleFor(c core.Color) lipgloss.Style {
	idx := c.Index()
	if idx < 0 {
		return plainStyle
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(strconv.Itoa(idx)))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
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
