package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/efrogs/rarity/internal/dataset"
	"github.com/efrogs/rarity/internal/shellquote"
	"github.com/efrogs/rarity/internal/slugs"
	"github.com/efrogs/rarity/internal/ui"
)

var (
	exportFormat   = formatValue{format: dataset.FormatJSON}
	exportCompress bool
	exportOutput   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the loaded dataset in another format",
	Long: `Writes the loaded dataset as JSON, YAML or SQLite, optionally zstd-compressed.
The file is replaced atomically. Records keep their original order.

Without -o the file is named after the collection, e.g. efrogs.db.zst.

Examples:
  efrog export --format yaml
  efrog export --format sqlite --zstd -o ranked.db.zst
  efrog --dataset ranked.db.zst check 696`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := dataset.ExportOptions{Format: exportFormat.format, Compress: exportCompress}

		path := strings.TrimSpace(exportOutput)
		if path == "" {
			path = dataset.DefaultExportPath(slugs.ComponentSlug(getConfig().CollectionName()), opts)
		}

		d := getDataset()
		if err := dataset.Export(d, path, opts); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"path":       path,
				"format":     opts.Format,
				"compressed": opts.Compress,
				"items":      d.Len(),
			}, datasetMeta(d.Len()))
			return nil
		}

		fmt.Println(ui.Successf("Exported %s to %s", ui.Count(d.Len(), "item", "items"), ui.Link(path)))
		fmt.Println(ui.Hint(fmt.Sprintf("Use it with: efrog --dataset %s check <id>", shellquote.QuoteIfNeeded(path))))
		return nil
	},
}

func init() {
	exportCmd.Flags().VarP(&exportFormat, "format", "f", "Output format ("+formatNames("|")+")")
	exportCmd.Flags().BoolVar(&exportCompress, "zstd", false, "Compress the output with zstd")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output path")
	rootCmd.AddCommand(exportCmd)
}
