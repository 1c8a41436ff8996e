package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/efrogs/rarity/internal/atomicfile"
)

type persistedConfig struct {
	Dataset        *string              `toml:"dataset,omitempty"`
	Collection     *string              `toml:"collection,omitempty"`
	ItemLabel      *string              `toml:"item_label,omitempty"`
	MarketplaceURL *string              `toml:"marketplace_url,omitempty"`
	UI             *persistedUISettings `toml:"ui,omitempty"`
	Log            *persistedLogConfig  `toml:"log,omitempty"`
}

type persistedUISettings struct {
	Accent *string `toml:"accent,omitempty"`
}

type persistedLogConfig struct {
	Level  *string `toml:"level,omitempty"`
	Format *string `toml:"format,omitempty"`
}

func nonEmptyPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SaveTo writes cfg to path atomically, omitting unset values.
func SaveTo(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config path is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}

	out := persistedConfig{
		Dataset:        nonEmptyPtr(cfg.Dataset),
		Collection:     nonEmptyPtr(cfg.Collection),
		ItemLabel:      nonEmptyPtr(cfg.ItemLabel),
		MarketplaceURL: nonEmptyPtr(cfg.MarketplaceURL),
	}
	if accent := nonEmptyPtr(cfg.UI.Accent); accent != nil {
		out.UI = &persistedUISettings{Accent: accent}
	}
	level := nonEmptyPtr(cfg.Log.Level)
	format := nonEmptyPtr(cfg.Log.Format)
	if level != nil || format != nil {
		out.Log = &persistedLogConfig{Level: level, Format: format}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := atomicfile.WriteFile(path, buf.Bytes(), 0); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// settableKeys maps dotted config keys to their fields.
var settableKeys = map[string]func(*Config) *string{
	"dataset":         func(c *Config) *string { return &c.Dataset },
	"collection":      func(c *Config) *string { return &c.Collection },
	"item_label":      func(c *Config) *string { return &c.ItemLabel },
	"marketplace_url": func(c *Config) *string { return &c.MarketplaceURL },
	"ui.accent":       func(c *Config) *string { return &c.UI.Accent },
	"log.level":       func(c *Config) *string { return &c.Log.Level },
	"log.format":      func(c *Config) *string { return &c.Log.Format },
}

// Keys lists the keys accepted by Set, sorted.
func Keys() []string {
	keys := make([]string, 0, len(settableKeys))
	for k := range settableKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set assigns value to a dotted key such as "ui.accent". An empty value
// unsets the key.
func (c *Config) Set(key, value string) error {
	field, ok := settableKeys[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys(), ", "))
	}
	*field(c) = strings.TrimSpace(value)
	return nil
}
