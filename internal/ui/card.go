package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/efrogs/rarity/internal/model"
	"github.com/efrogs/rarity/internal/rarity"
)

// CardOptions controls result card rendering.
type CardOptions struct {
	// Label prefixes the item id in the title, e.g. "Efrog".
	Label string
	// Width is the outer card width including the border.
	Width int
}

// RenderCard renders an item as a bordered card: title and rank, tier,
// total score and one block per trait with its occurrence, score and bar.
func RenderCard(item model.Item, opts CardOptions) string {
	width := opts.Width
	if width < MinCardWidth {
		width = MinCardWidth
	}
	// Border takes one cell per side, padding one more.
	inner := width - 4

	tier := rarity.Classify(item.Rank)
	tierStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(tier.Color())).Bold(true)

	var lines []string
	lines = append(lines,
		spread(AccentBold.Render(fmt.Sprintf("%s #%s", opts.Label, item.ID)),
			Muted.Render("RANK ")+Bold.Render(fmt.Sprintf("#%d", item.Rank)), inner),
		"",
		spread("Rarity Tier:", tierStyle.Render(tier.String()), inner),
		spread("Total Rarity Score:", Bold.Render(fmt.Sprintf("%.2f", item.TotalScore)), inner),
		"",
		Bold.Render("Trait Breakdown"),
		Muted.Render(strings.Repeat("─", inner)),
	)

	for i, trait := range item.Traits() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, traitLines(trait, inner)...)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(effectiveAccent())).
		Padding(0, 1).
		Width(width - 2)

	return box.Render(strings.Join(lines, "\n"))
}

func traitLines(trait model.NamedTrait, width int) []string {
	occurrence := fmt.Sprintf("Occurrence: %d (%.2f%%)", trait.Count, trait.RarityPercentage)
	score := fmt.Sprintf("Score: %.2f", trait.RarityScore)

	return []string{
		spread(trait.Name, trait.Value, width),
		Muted.Render(spread(occurrence, score, width)),
		RenderBar(trait.RarityScore, width),
	}
}

// spread places left and right on one line of the given width, separated by
// at least one space.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
