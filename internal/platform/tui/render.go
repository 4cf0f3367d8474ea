package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/grido/internal/core"
)

// StyleFor returns the lipgloss style for a cell color.
func StyleFor(c core.Color) lipgloss.Style {
	n, ok := c.Palette()
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(n)))
}

// RenderScreen converts a Screen buffer to a styled string. Runs of cells
// sharing a color are rendered with a single style.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[core.Color]lipgloss.Style)
	flush := func(run []rune, c core.Color) {
		if len(run) == 0 {
			return
		}
		if c == core.ColorDefault {
			sb.WriteString(string(run))
			return
		}
		style, ok := styles[c]
		if !ok {
			style = StyleFor(c)
			styles[c] = style
		}
		sb.WriteString(style.Render(string(run)))
	}

	run := make([]rune, 0, s.Width())
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		run = run[:0]
		runColor := core.ColorDefault
		for x, w := 0, s.Width(); x < w; x++ {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				flush(run, runColor)
				run = run[:0]
				runColor = cell.Color
			}
			run = append(run, cell.Rune)
		}
		flush(run, runColor)
	}
	return sb.String()
}
