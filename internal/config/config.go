// Package config handles the global efrog configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/efrogs/rarity/internal/atomicfile"
)

const (
	// DefaultCollection is the collection name shown when none is configured.
	DefaultCollection = "Efrogs"
	// DefaultItemLabel names a single item of the collection on result cards.
	DefaultItemLabel = "Efrog"
	// DefaultMarketplaceURL links to the collection's marketplace page.
	DefaultMarketplaceURL = "https://element.market/collections/ethereum-frogs"
	// DefaultLogLevel keeps command output free of routine log lines.
	DefaultLogLevel = "warn"
)

// Config represents the global efrog configuration.
type Config struct {
	// Dataset is the path of the ranked dataset. Empty selects the embedded one.
	// Relative paths are resolved against the config file's directory.
	Dataset string `toml:"dataset"`

	// Collection is the display name of the collection.
	Collection string `toml:"collection"`

	// ItemLabel names one item of the collection, e.g. "Efrog #696".
	ItemLabel string `toml:"item_label"`

	// MarketplaceURL is shown in the info overlay and shell banner.
	MarketplaceURL string `toml:"marketplace_url"`

	// UI controls optional theming preferences.
	UI UIConfig `toml:"ui"`

	// Log controls diagnostic logging on stderr.
	Log LogConfig `toml:"log"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for headers and links.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// LogConfig selects the slog level and handler format.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// CollectionName returns the configured collection name or the default.
func (c *Config) CollectionName() string {
	if name := strings.TrimSpace(c.Collection); name != "" {
		return name
	}
	return DefaultCollection
}

// Label returns the configured item label or the default.
func (c *Config) Label() string {
	if label := strings.TrimSpace(c.ItemLabel); label != "" {
		return label
	}
	return DefaultItemLabel
}

// Marketplace returns the configured marketplace URL or the default.
func (c *Config) Marketplace() string {
	if url := strings.TrimSpace(c.MarketplaceURL); url != "" {
		return url
	}
	return DefaultMarketplaceURL
}

// LogLevel returns the configured log level or the default.
func (c *Config) LogLevel() string {
	if level := strings.TrimSpace(c.Log.Level); level != "" {
		return level
	}
	return DefaultLogLevel
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// ResolveConfigPath resolves the effective config path from an optional override.
func ResolveConfigPath(explicitConfigPath string) string {
	if strings.TrimSpace(explicitConfigPath) != "" {
		return explicitConfigPath
	}
	return DefaultPath()
}

// ResolveDatasetPath resolves the dataset path with precedence:
//  1. explicitPath flag (used as given)
//  2. cfg.Dataset (relative to the config file dir when not absolute)
//  3. "" for the embedded dataset
func ResolveDatasetPath(explicitPath, configPath string, cfg *Config) string {
	if p := strings.TrimSpace(explicitPath); p != "" {
		return p
	}
	if cfg == nil {
		return ""
	}

	fromConfig := strings.TrimSpace(cfg.Dataset)
	if fromConfig == "" {
		return ""
	}
	if isAbsolutePath(fromConfig) {
		return filepath.Clean(filepath.FromSlash(fromConfig))
	}
	configDir := filepath.Dir(ResolveConfigPath(configPath))
	return filepath.Join(configDir, filepath.FromSlash(fromConfig))
}

func isAbsolutePath(p string) bool {
	if filepath.IsAbs(p) {
		return true
	}
	// Treat slash-rooted config values as absolute on every OS.
	return strings.HasPrefix(filepath.ToSlash(p), "/")
}

// DefaultPath returns the default config file path.
// Checks ~/.config/efrogs/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "efrogs", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "efrogs", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

const defaultConfigTemplate = `# efrog configuration

# Ranked dataset to search. Leave unset to use the dataset built into efrog.
# Supports .json, .yaml/.yml and .db (SQLite), optionally zstd-compressed (.zst).
# Relative paths are resolved against this file's directory.
# dataset = "ranked_nfts.json"

# Collection display name and marketplace link
# collection = "Efrogs"
# item_label = "Efrog"
# marketplace_url = "https://element.market/collections/ethereum-frogs"

# Optional UI accent color for headers/links in terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "34"

# Diagnostic logging on stderr: level is debug, info, warn or error;
# format is text or json.
# [log]
# level = "warn"
# format = "text"
`

// CreateDefault writes a commented default config to path if none exists.
// It reports whether a new file was created.
func CreateDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := atomicfile.WriteFile(path, []byte(defaultConfigTemplate), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}
