package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/efrogs/rarity/internal/dataset"
	"github.com/efrogs/rarity/internal/logger"
	"github.com/efrogs/rarity/internal/ui"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the dataset's precomputed scores for consistency",
	Long: `Checks every record of the loaded dataset:
  - ranks are positive and unique
  - total scores are not negative and equal the sum of trait scores
  - trait counts are positive and percentages lie in (0, 100]
  - each trait score is 100 divided by its percentage

Exits with an error when any issue is found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := getDataset()
		issues := dataset.Verify(d)
		logger.WithComponent("verify").Info("verified dataset", "source", d.Source(), "items", d.Len(), "issues", len(issues))

		if len(issues) > 0 {
			if !isJSONOutput() {
				for _, issue := range issues {
					where := "#" + string(issue.ID)
					if issue.Trait != "" {
						where += " " + issue.Trait
					}
					fmt.Printf("%s %s\n", ui.Error(where), ui.Hint(fmt.Sprintf("[%s] %s", issue.Code, issue.Message)))
				}
				fmt.Println()
			}
			return handleErrorWithDetails(ErrVerifyFailed,
				fmt.Sprintf("dataset has %d integrity issue(s)", len(issues)),
				"Re-export the dataset from its source", issues)
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"source": d.Source(),
				"items":  d.Len(),
				"issues": []dataset.Issue{},
			}, datasetMeta(d.Len()))
			return nil
		}

		fmt.Println(ui.Successf("%s verified %s", d.Source(), ui.Count(d.Len(), "item", "items")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
