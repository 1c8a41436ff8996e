package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/efrogs/rarity/internal/ui"
)

var infoSection string

// infoMarkdown builds the info overlay for the configured collection.
func infoMarkdown() string {
	cfg := getConfig()
	return ui.InfoMarkdown(ui.InfoOptions{
		Collection:     cfg.CollectionName(),
		MarketplaceURL: cfg.Marketplace(),
	})
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Explain rarity tiers, scores and the trait bar legend",
	Long: `Shows how items are ranked: the rarity tiers and their rank ranges, how
trait rarity scores are calculated, what the trait bar colors mean and where
to find the collection.

Use --section to show one part, matched by heading text or slug.

Examples:
  efrog info
  efrog info --section tiers
  efrog info --section how-rarity-is-calculated`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		content := infoMarkdown()
		if strings.TrimSpace(infoSection) != "" {
			section, ok := ui.Section(content, infoSection)
			if !ok {
				return handleErrorMsg(ErrSectionNotFound,
					fmt.Sprintf("no info section matches %q", infoSection),
					"Available sections: "+strings.Join(ui.SectionNames(content), ", "))
			}
			content = section
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"markdown": content,
				"sections": ui.SectionNames(content),
			}, nil)
			return nil
		}

		rendered, err := ui.RenderMarkdown(content, ui.NewDisplayContext().TermWidth)
		if err != nil {
			// Fall back to the raw markdown.
			fmt.Print(content)
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	infoCmd.Flags().StringVarP(&infoSection, "section", "s", "", "Show only the section whose heading matches")
	rootCmd.AddCommand(infoCmd)
}
