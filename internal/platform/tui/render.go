package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theocoin/coinquest/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorSky:     lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	core.ColorSun:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColorGrass:   lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorPlayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorCoin:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorWin:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
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

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
