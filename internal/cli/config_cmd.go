package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/efrogs/rarity/internal/config"
	"github.com/efrogs/rarity/internal/logger"
	"github.com/efrogs/rarity/internal/ui"
)

type globalConfigContext struct {
	cfg          *config.Config
	configPath   string
	configExists bool
}

func loadGlobalConfigContextAllowMissing() (*globalConfigContext, error) {
	targetPath := config.ResolveConfigPath(configPath)
	ctx := &globalConfigContext{cfg: &config.Config{}, configPath: targetPath}

	if _, err := os.Stat(targetPath); err != nil {
		if os.IsNotExist(err) {
			return ctx, nil
		}
		return nil, err
	}

	loadedCfg, err := config.LoadFrom(targetPath)
	if err != nil {
		return nil, err
	}
	ctx.cfg = loadedCfg
	ctx.configExists = true
	return ctx, nil
}

func configData(ctx *globalConfigContext) map[string]interface{} {
	return map[string]interface{}{
		"config_path":     ctx.configPath,
		"exists":          ctx.configExists,
		"dataset":         config.ResolveDatasetPath("", ctx.configPath, ctx.cfg),
		"collection":      ctx.cfg.CollectionName(),
		"item_label":      ctx.cfg.Label(),
		"marketplace_url": ctx.cfg.Marketplace(),
		"ui": map[string]interface{}{
			"accent": strings.TrimSpace(ctx.cfg.UI.Accent),
		},
		"log": map[string]interface{}{
			"level":  ctx.cfg.LogLevel(),
			"format": strings.TrimSpace(ctx.cfg.Log.Format),
		},
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	ctx, err := loadGlobalConfigContextAllowMissing()
	if err != nil {
		return handleError(ErrConfigInvalid, err, "")
	}

	if isJSONOutput() {
		outputSuccess(configData(ctx), nil)
		return nil
	}

	if !ctx.configExists {
		fmt.Printf("Config file does not exist: %s\n", ctx.configPath)
		fmt.Println("Run 'efrog config init' to create it. Showing defaults.")
	} else {
		fmt.Printf("config: %s\n", ctx.configPath)
	}

	datasetPath := config.ResolveDatasetPath("", ctx.configPath, ctx.cfg)
	if datasetPath == "" {
		datasetPath = "(embedded)"
	}
	fmt.Printf("dataset: %s\n", datasetPath)
	fmt.Printf("collection: %s\n", ctx.cfg.CollectionName())
	fmt.Printf("item_label: %s\n", ctx.cfg.Label())
	fmt.Printf("marketplace_url: %s\n", ctx.cfg.Marketplace())
	if v := strings.TrimSpace(ctx.cfg.UI.Accent); v != "" {
		fmt.Printf("ui.accent: %s\n", v)
	}
	fmt.Printf("log.level: %s\n", ctx.cfg.LogLevel())
	if v := strings.TrimSpace(ctx.cfg.Log.Format); v != "" {
		fmt.Printf("log.format: %s\n", v)
	}
	return nil
}

// validateConfigValue rejects values the key cannot hold. Empty values are
// handled by unset.
func validateConfigValue(key, value string) error {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "ui.accent":
		if !ui.ValidAccentColor(value) {
			return fmt.Errorf("ui.accent must be an ANSI color code (0-255) or a hex color (#RRGGBB)")
		}
	case "log.level":
		if !logger.ValidLevel(value) {
			return fmt.Errorf("log.level must be one of: debug, info, warn, error")
		}
	case "log.format":
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "text", "json":
		default:
			return fmt.Errorf("log.format must be text or json")
		}
	}
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the efrog config.toml",
	Long: `Manage the efrog config.toml.

Use this to initialize, inspect, and edit the dataset path, collection
display settings, UI accent and logging.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config.toml if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetPath := config.ResolveConfigPath(configPath)

		created, err := config.CreateDefault(targetPath)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": targetPath,
				"created":     created,
			}, nil)
			return nil
		}

		if created {
			fmt.Println(ui.Successf("Created config: %s", targetPath))
		} else {
			fmt.Printf("Config already exists: %s\n", targetPath)
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config.toml location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetPath := config.ResolveConfigPath(configPath)
		if isJSONOutput() {
			_, err := os.Stat(targetPath)
			outputSuccess(map[string]interface{}{
				"config_path": targetPath,
				"exists":      err == nil,
			}, nil)
			return nil
		}
		fmt.Println(targetPath)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config.toml field",
	Long: `Sets one config.toml field and writes the file atomically.

Keys: ` + strings.Join(config.Keys(), ", ") + `

Examples:
  efrog config set dataset ~/nfts/ranked.db.zst
  efrog config set ui.accent "#4ADE80"
  efrog config set log.level debug`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], strings.TrimSpace(args[1])
		if value == "" {
			return handleErrorMsg(ErrInvalidInput, fmt.Sprintf("%s cannot be empty; use 'efrog config unset %s' to clear it", key, key), "")
		}
		if err := validateConfigValue(key, value); err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		return updateConfig(key, value, "changed")
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Clear a config.toml field",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateConfig(args[0], "", "cleared")
	},
}

func updateConfig(key, value, verb string) error {
	ctx, err := loadGlobalConfigContextAllowMissing()
	if err != nil {
		return handleError(ErrConfigInvalid, err, "")
	}
	if value == "" && !ctx.configExists {
		return handleErrorMsg(ErrFileNotFound, fmt.Sprintf("config file not found: %s", ctx.configPath), "Run 'efrog config init' first")
	}

	if err := ctx.cfg.Set(key, value); err != nil {
		return handleError(ErrInvalidInput, err, "")
	}
	if err := config.SaveTo(ctx.configPath, ctx.cfg); err != nil {
		return handleError(ErrFileWriteError, err, "")
	}
	ctx.configExists = true

	if isJSONOutput() {
		data := configData(ctx)
		data[verb] = key
		outputSuccess(data, nil)
		return nil
	}

	fmt.Printf("Updated config: %s\n", ctx.configPath)
	fmt.Printf("%s: %s\n", verb, key)
	return nil
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current config.toml values",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})

	rootCmd.AddCommand(configCmd)
}
