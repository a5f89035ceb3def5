package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/learning-adventure/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleCache maps a foreground/background pair to its lipgloss style.
var styleCache = map[colorPair]lipgloss.Style{}

func styleFor(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if s, ok := styleCache[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if fg != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(fg.Hex()))
	}
	if bg != core.ColorDefault {
		s = s.Background(lipgloss.Color(bg.Hex()))
	}
	styleCache[key] = s
	return s
}

// RenderSurface converts a Surface to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderSurface(s *core.Surface) string {
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
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				// Rune 0 marks the second cell of a double-width rune.
				if cell.Rune != 0 {
					run.WriteRune(cell.Rune)
				}
				x++
			}
			sb.WriteString(styleFor(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}
