package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/efrogs/rarity/internal/logger"
	"github.com/efrogs/rarity/internal/lookup"
	"github.com/efrogs/rarity/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check <id>",
	Short: "Show the rarity card of one item",
	Long: `Looks up an item by id and shows its rank, rarity tier, total score and
a breakdown of trait scores.

The id is matched exactly as given: no trimming, no case folding.

Examples:
  efrog check 696
  efrog check 696 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var query string
		if len(args) > 0 {
			query = args[0]
		}

		ctrl := lookup.NewController(getDataset())
		if err := ctrl.Search(query); err != nil {
			logger.WithComponent("lookup").Debug("search failed", "query", query, "error", err)
			code := lookupErrorCode(err)
			return handleError(code, err, lookupSuggestion(code))
		}

		writeLookup(os.Stdout, ctrl, ui.NewDisplayContext().CardWidth())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
