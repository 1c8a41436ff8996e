package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/efrogs/rarity/internal/dataset"
	"github.com/efrogs/rarity/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how items are spread across rarity tiers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := getDataset()
		dist := dataset.Distribution(d)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"source": d.Source(),
				"items":  d.Len(),
				"tiers":  dist,
			}, datasetMeta(d.Len()))
			return nil
		}

		fmt.Println(ui.Header(getConfig().CollectionName()) + " " + ui.Hint(ui.Count(d.Len(), "item", "items")))
		fmt.Println(ui.Hint("source: " + d.Source()))
		fmt.Println()

		tbl := ui.NewTable(3)
		for _, tc := range dist {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(tc.Tier.Color())).Bold(true)
			tbl.AddRow(style.Render(tc.Name), ui.Hint(rankRange(tc.MinRank, tc.MaxRank)), fmt.Sprintf("%d", tc.Count))
		}
		fmt.Print(tbl.String())
		return nil
	},
}

func rankRange(lo, hi int) string {
	if hi == 0 {
		return fmt.Sprintf("ranks %d+", lo)
	}
	return fmt.Sprintf("ranks %d-%d", lo, hi)
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
