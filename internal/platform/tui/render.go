package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile-launcher/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleCache maps colour pairs to lipgloss styles.
// Only used from the Bubble Tea goroutine of one program.
type styleCache map[colorPair]lipgloss.Style

func (c styleCache) get(p colorPair) lipgloss.Style {
	if s, ok := c[p]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if p.fg != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(p.fg))
	}
	if p.bg != core.ColorDefault {
		s = s.Background(lipgloss.Color(p.bg))
	}
	c[p] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, make(styleCache))
}

func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{cell.FG, cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.FG, cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}
