package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/efrogs/rarity/internal/config"
)

func withConfigPath(t *testing.T) string {
	t.Helper()
	prevConfig, prevJSON := configPath, jsonOutput
	t.Cleanup(func() {
		configPath, jsonOutput = prevConfig, prevJSON
	})
	configPath = filepath.Join(t.TempDir(), "efrogs", "config.toml")
	jsonOutput = false
	return configPath
}

func TestConfigInitCreatesFileOnce(t *testing.T) {
	path := withConfigPath(t)

	out := captureStdout(t, func() {
		if err := configInitCmd.RunE(configInitCmd, nil); err != nil {
			t.Fatalf("config init: %v", err)
		}
	})
	if !strings.Contains(out, "Created config") {
		t.Fatalf("unexpected output: %s", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	out = captureStdout(t, func() {
		if err := configInitCmd.RunE(configInitCmd, nil); err != nil {
			t.Fatalf("second config init: %v", err)
		}
	})
	if !strings.Contains(out, "Config already exists") {
		t.Fatalf("unexpected output on second init: %s", out)
	}
}

func TestConfigSetAndUnset(t *testing.T) {
	path := withConfigPath(t)

	captureStdout(t, func() {
		if err := configSetCmd.RunE(configSetCmd, []string{"ui.accent", "#123456"}); err != nil {
			t.Fatalf("config set: %v", err)
		}
		if err := configSetCmd.RunE(configSetCmd, []string{"collection", "Ethereum Frogs"}); err != nil {
			t.Fatalf("config set: %v", err)
		}
	})

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.UI.Accent != "#123456" {
		t.Fatalf("ui.accent = %q, want %q", cfg.UI.Accent, "#123456")
	}
	if cfg.CollectionName() != "Ethereum Frogs" {
		t.Fatalf("collection = %q, want %q", cfg.CollectionName(), "Ethereum Frogs")
	}

	captureStdout(t, func() {
		if err := configUnsetCmd.RunE(configUnsetCmd, []string{"ui.accent"}); err != nil {
			t.Fatalf("config unset: %v", err)
		}
	})

	cfg, err = config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.UI.Accent != "" {
		t.Fatalf("ui.accent = %q, want empty", cfg.UI.Accent)
	}
	if cfg.CollectionName() != "Ethereum Frogs" {
		t.Fatalf("unset cleared unrelated key: collection = %q", cfg.CollectionName())
	}
}

func TestConfigSetRejectsInvalidValues(t *testing.T) {
	path := withConfigPath(t)

	tests := [][]string{
		{"ui.accent", "chartreuse"},
		{"log.level", "verbose"},
		{"log.format", "xml"},
		{"editor", "vim"},
		{"dataset", "   "},
	}
	for _, args := range tests {
		if err := configSetCmd.RunE(configSetCmd, args); err == nil {
			t.Errorf("config set %v: expected error", args)
		}
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("rejected values should not create the config file (stat err = %v)", err)
	}
}

func TestConfigUnsetRequiresFile(t *testing.T) {
	withConfigPath(t)

	err := configUnsetCmd.RunE(configUnsetCmd, []string{"dataset"})
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Fatalf("got %v, want config file not found", err)
	}
}

func TestConfigShowJSONDefaults(t *testing.T) {
	path := withConfigPath(t)
	jsonOutput = true

	out := captureStdout(t, func() {
		if err := runConfigShow(configCmd, nil); err != nil {
			t.Fatalf("config show: %v", err)
		}
	})

	resp := decodeResponse(t, out)
	if !resp.OK {
		t.Fatalf("expected ok=true; out=%s", out)
	}
	data := string(resp.Data)
	for _, want := range []string{
		`"exists": false`,
		`"collection": "Efrogs"`,
		`"level": "warn"`,
		filepath.ToSlash(filepath.Base(path)),
	} {
		if !strings.Contains(filepath.ToSlash(data), want) {
			t.Errorf("config data missing %s: %s", want, data)
		}
	}
}
