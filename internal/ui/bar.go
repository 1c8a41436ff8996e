package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/efrogs/rarity/internal/rarity"
)

const (
	barFilled = "█"
	barEmpty  = "░"
)

// RenderBar draws a score bar of the given cell width. The filled part is
// proportional to rarity.BarWidth and colored by the score's intensity.
func RenderBar(score float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := FilledCells(score, width)
	color := lipgloss.Color(rarity.IntensityFor(score).Color())

	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(barFilled, filled)) +
		Muted.Render(strings.Repeat(barEmpty, width-filled))
}

// FilledCells returns how many of width cells a score fills.
func FilledCells(score float64, width int) int {
	n := int(math.Round(rarity.BarWidth(score) * float64(width)))
	if n > width {
		return width
	}
	return n
}
