package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/efrogs/rarity/internal/dataset"
	"github.com/efrogs/rarity/internal/logger"
)

// logLevelValue is a --log-level flag that rejects unknown levels at parse
// time and remembers whether it was given.
type logLevelValue struct {
	level string
	set   bool
}

var _ pflag.Value = (*logLevelValue)(nil)

func (v *logLevelValue) String() string { return v.level }

func (v *logLevelValue) Set(s string) error {
	if !logger.ValidLevel(s) {
		return fmt.Errorf("invalid log level %q (want debug, info, warn or error)", s)
	}
	v.level = strings.ToLower(strings.TrimSpace(s))
	v.set = true
	return nil
}

func (v *logLevelValue) Type() string { return "level" }

// formatValue is an export --format flag.
type formatValue struct {
	format dataset.Format
}

var _ pflag.Value = (*formatValue)(nil)

func (v *formatValue) String() string { return string(v.format) }

func (v *formatValue) Set(s string) error {
	f, err := dataset.ParseFormat(s)
	if err != nil {
		return fmt.Errorf("%w (want %s)", err, formatNames("|"))
	}
	v.format = f
	return nil
}

func (v *formatValue) Type() string { return "format" }

// formatNames joins the supported dataset formats with sep.
func formatNames(sep string) string {
	formats := dataset.Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, sep)
}
