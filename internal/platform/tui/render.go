package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BlueyDragon/mdn-breakout-game/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Tinted cells get a truecolor foreground; runs of cells with the same
// tint share one style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	plain := r.NewStyle()
	styles := make(map[core.RGB]lipgloss.Style)
	styleFor := func(c core.Cell) lipgloss.Style {
		if !c.Tinted {
			return plain
		}
		st, ok := styles[c.Color]
		if !ok {
			st = r.NewStyle().Foreground(lipgloss.Color(c.Color.Hex()))
			styles[c.Color] = st
		}
		return st
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Tinted != start.Tinted || (cell.Tinted && cell.Color != start.Color) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
