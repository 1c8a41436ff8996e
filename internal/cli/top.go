package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/efrogs/rarity/internal/model"
	"github.com/efrogs/rarity/internal/rarity"
	"github.com/efrogs/rarity/internal/ui"
)

var topLimit int

type topEntry struct {
	Rank       int         `json:"rank"`
	ID         model.ID    `json:"id"`
	Tier       rarity.Tier `json:"tier"`
	TotalScore float64     `json:"total_score"`
}

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "List the rarest items",
	Long: `Lists items in rank order, rarest first.

Examples:
  efrog top
  efrog top -n 25
  efrog top -n 0   # every item`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if topLimit < 0 {
			return handleErrorMsg(ErrInvalidInput, "-n must not be negative", "Use -n 0 to list every item")
		}

		items := getDataset().Top(topLimit)

		if isJSONOutput() {
			entries := make([]topEntry, 0, len(items))
			for _, item := range items {
				entries = append(entries, topEntry{
					Rank:       item.Rank,
					ID:         item.ID,
					Tier:       rarity.Classify(item.Rank),
					TotalScore: item.TotalScore,
				})
			}
			outputSuccess(map[string]interface{}{"items": entries}, datasetMeta(len(entries)))
			return nil
		}

		if len(items) == 0 {
			fmt.Println("Dataset is empty.")
			return nil
		}

		fmt.Println(ui.Header(fmt.Sprintf("Rarest %s", getConfig().CollectionName())) + " " +
			ui.Hint(ui.Count(len(items), "item", "items")))
		fmt.Println()
		fmt.Print(ui.RenderLeaderboard(ui.NewDisplayContext(), items))
		fmt.Println()
		return nil
	},
}

func init() {
	topCmd.Flags().IntVarP(&topLimit, "limit", "n", 10, "Number of items to list (0 for all)")
	rootCmd.AddCommand(topCmd)
}
