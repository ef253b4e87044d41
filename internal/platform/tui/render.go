package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

var hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// styleFor returns the foreground style for a cell color.
func styleFor(c core.Color) lipgloss.Style {
	code := c.ANSI()
	if code == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		var run strings.Builder
		color := s.GetCell(0, y).Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if color.ANSI() == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor(color).Render(run.String()))
			}
			run.Reset()
		}

		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				flush()
				color = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush()
	}
	return sb.String()
}

// RenderFrame renders the screen followed by a dimmed hint line.
func RenderFrame(s *core.Screen, hint string) string {
	if hint == "" {
		return RenderScreen(s)
	}
	return RenderScreen(s) + "\n" + hintStyle.Render(centerText(hint, s.Width()))
}
