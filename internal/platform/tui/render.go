package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// styleCache maps core.Color to lipgloss styles. Colors are ANSI codes or
// hex strings straight from level data, so styles are built on first use.
type styleCache struct {
	mu     sync.RWMutex
	styles map[core.Color]lipgloss.Style
}

var colorStyles = &styleCache{
	styles: map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	},
}

func (c *styleCache) get(color core.Color) lipgloss.Style {
	c.mu.RLock()
	style, ok := c.styles[color]
	c.mu.RUnlock()
	if ok {
		return style
	}

	style = lipgloss.NewStyle().Foreground(lipgloss.Color(string(color)))
	c.mu.Lock()
	c.styles[color] = style
	c.mu.Unlock()
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
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

			sb.WriteString(colorStyles.get(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
