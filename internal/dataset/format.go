package dataset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an on-disk encoding of a dataset.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// CompressedSuffix marks a zstd-compressed dataset file.
const CompressedSuffix = ".zst"

// Formats lists the supported encodings.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatSQLite}
}

// ParseFormat resolves a format name, accepting common aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "sqlite", "sqlite3", "db":
		return FormatSQLite, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// Extension returns the canonical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatSQLite:
		return ".db"
	default:
		return ".json"
	}
}

// DetectFormat infers the encoding of path from its extension, reporting
// whether the file is zstd-compressed.
func DetectFormat(path string) (Format, bool, error) {
	name := strings.ToLower(filepath.Base(path))
	compressed := strings.HasSuffix(name, CompressedSuffix)
	name = strings.TrimSuffix(name, CompressedSuffix)

	switch filepath.Ext(name) {
	case ".json":
		return FormatJSON, compressed, nil
	case ".yaml", ".yml":
		return FormatYAML, compressed, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, compressed, nil
	}
	return "", false, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}
