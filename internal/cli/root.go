// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/efrogs/rarity/internal/config"
	"github.com/efrogs/rarity/internal/dataset"
	"github.com/efrogs/rarity/internal/logger"
	"github.com/efrogs/rarity/internal/ui"
)

var (
	// Global flags
	configPath      string
	datasetPathFlag string
	logLevelFlag    logLevelValue

	// Resolved values
	resolvedConfigPath  string
	resolvedDatasetPath string
	cfg                 *config.Config
	loaded              *dataset.Dataset
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "efrog",
	Short: "efrog - rarity checker for the Efrogs collection",
	Long: `efrog looks up items of an NFT collection in a precomputed rarity dataset
and shows their rank, rarity tier and a breakdown of trait scores.

The dataset is read once and never modified. Nothing is fetched over the network.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
		if err != nil {
			return reportPreRunError(ErrConfigInvalid, fmt.Errorf("failed to load config: %w", err), "Run 'efrog config path' to locate the file")
		}

		level := cfg.LogLevel()
		if logLevelFlag.set {
			level = logLevelFlag.String()
		}
		logger.Setup(os.Stderr, level, cfg.Log.Format)
		ui.ConfigureTheme(cfg.UI.Accent)

		if !needsDataset(cmd) {
			return nil
		}

		resolvedDatasetPath = config.ResolveDatasetPath(datasetPathFlag, configPath, cfg)
		loaded, err = dataset.Load(resolvedDatasetPath)
		if err != nil {
			return reportPreRunError(ErrDatasetError, err, "Check the dataset path in config.toml or pass --dataset")
		}
		return nil
	},
}

// errReported marks an error already written as a JSON envelope.
var errReported = errors.New("error reported")

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}

// reportPreRunError stops the command. Unlike handleError it never returns
// nil, since the command body must not run without its config and dataset.
func reportPreRunError(code string, err error, suggestion string) error {
	if jsonOutput {
		outputErrorFromErr(code, err, suggestion)
		return errReported
	}
	if suggestion != "" {
		return fmt.Errorf("%w\n\n%s", err, suggestion)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&datasetPathFlag, "dataset", "", "Path to a ranked dataset (.json, .yaml, .db, optionally .zst)")
	rootCmd.PersistentFlags().Var(&logLevelFlag, "log-level", "Log level on stderr (debug|info|warn|error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for scripts)")
}

// needsDataset reports whether cmd reads the dataset.
func needsDataset(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "config", "version", "help", "completion", "info":
			return false
		}
	}
	return true
}

// getDataset returns the dataset loaded for the current command.
func getDataset() *dataset.Dataset {
	return loaded
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	resolvedPath := config.ResolveConfigPath(configPath)

	var loadedCfg *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, "", err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}

	return loadedCfg, resolvedPath, nil
}
