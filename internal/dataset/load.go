package dataset

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/efrogs/rarity/internal/logger"
	"github.com/efrogs/rarity/internal/model"
)

// DefaultSource names the dataset compiled into the binary.
const DefaultSource = "embedded:ranked_nfts.json"

//go:embed data/ranked_nfts.json
var defaultData []byte

// Default returns the dataset bundled with the binary.
func Default() (*Dataset, error) {
	items, err := decodeJSON(defaultData)
	if err != nil {
		return nil, fmt.Errorf("embedded dataset: %w", err)
	}
	return New(items, DefaultSource)
}

// Load reads the dataset at path, choosing the codec from the file extension.
// An empty path selects the embedded default.
func Load(path string) (*Dataset, error) {
	log := logger.WithComponent("dataset")
	if strings.TrimSpace(path) == "" {
		d, err := Default()
		if err != nil {
			return nil, err
		}
		log.Debug("loaded embedded dataset", "items", d.Len())
		return d, nil
	}

	format, compressed, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	items, err := readItems(path, format, compressed)
	if err != nil {
		return nil, err
	}

	d, err := New(items, path)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	log.Debug("loaded dataset", "path", path, "format", format, "compressed", compressed, "items", d.Len())
	return d, nil
}

func readItems(path string, format Format, compressed bool) ([]model.Item, error) {
	if format == FormatSQLite && !compressed {
		return readSQLite(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	if compressed {
		if data, err = decompress(data); err != nil {
			return nil, err
		}
	}

	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatSQLite:
		return readSQLiteBytes(data)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// readSQLiteBytes spills an in-memory database image to a temp file, since
// the driver only opens databases by path.
func readSQLiteBytes(data []byte) ([]model.Item, error) {
	tmp, err := os.CreateTemp("", "efrog-dataset-*.db")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp database: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("failed to write temp database: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp database: %w", err)
	}
	return readSQLite(tmpPath)
}
