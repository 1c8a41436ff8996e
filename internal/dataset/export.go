package dataset

import (
	"fmt"
	"os"

	"github.com/efrogs/rarity/internal/atomicfile"
	"github.com/efrogs/rarity/internal/logger"
	"github.com/efrogs/rarity/internal/model"
)

// ExportOptions controls how a dataset is written.
type ExportOptions struct {
	Format   Format
	Compress bool
}

// Export writes the dataset to path atomically. Records keep their load order.
func Export(d *Dataset, path string, opts ExportOptions) error {
	items := d.Items()

	if opts.Format == FormatSQLite && !opts.Compress {
		if err := atomicfile.WriteFunc(path, 0o644, func(tmpPath string) error {
			return writeSQLite(tmpPath, items)
		}); err != nil {
			return fmt.Errorf("failed to export dataset: %w", err)
		}
		logExport(path, opts, len(items))
		return nil
	}

	var data []byte
	var err error
	switch opts.Format {
	case FormatJSON:
		data, err = encodeJSON(items)
	case FormatYAML:
		data, err = encodeYAML(items)
	case FormatSQLite:
		data, err = sqliteImage(items)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}
	if err != nil {
		return err
	}

	if opts.Compress {
		if data, err = compress(data); err != nil {
			return err
		}
	}

	if err := atomicfile.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to export dataset: %w", err)
	}
	logExport(path, opts, len(items))
	return nil
}

// DefaultExportPath builds an output file name from a base name and options.
func DefaultExportPath(base string, opts ExportOptions) string {
	path := base + opts.Format.Extension()
	if opts.Compress {
		path += CompressedSuffix
	}
	return path
}

func sqliteImage(items []model.Item) ([]byte, error) {
	tmp, err := os.CreateTemp("", "efrog-export-*.db")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp database: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp database: %w", err)
	}

	if err := writeSQLite(tmpPath, items); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read temp database: %w", err)
	}
	return data, nil
}

func logExport(path string, opts ExportOptions, count int) {
	logger.WithComponent("dataset").Info("exported dataset",
		"path", path,
		"format", opts.Format,
		"compressed", opts.Compress,
		"items", count,
	)
}
