package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/efrogs/rarity/internal/buildinfo"
	"github.com/efrogs/rarity/internal/config"
	"github.com/efrogs/rarity/internal/dataset"
	"github.com/efrogs/rarity/internal/ui"
)

const defaultModulePath = "github.com/efrogs/rarity"

// buildDetails describes the binary itself.
type buildDetails struct {
	Version    string `json:"version"`
	ModulePath string `json:"module_path"`
	Commit     string `json:"commit,omitempty"`
	CommitTime string `json:"commit_time,omitempty"`
	Modified   bool   `json:"modified"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// datasetDetails describes the dataset a command would load with the
// current flags and config.
type datasetDetails struct {
	Source        string   `json:"source"`
	Embedded      bool     `json:"embedded"`
	EmbeddedItems int      `json:"embedded_items"`
	Formats       []string `json:"formats"`
}

type versionInfo struct {
	buildDetails
	Dataset datasetDetails `json:"dataset"`
}

var readBuildInfo = debug.ReadBuildInfo

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show efrog version, build and dataset information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := versionInfo{
			buildDetails: currentBuild(),
			Dataset:      currentDatasetDetails(),
		}

		if isJSONOutput() {
			outputSuccess(info, nil)
			return nil
		}

		fmt.Println(ui.Header("efrog " + info.Version))
		tbl := ui.NewTable(2)
		row := func(key, value string) {
			if value != "" {
				tbl.AddRow(ui.Hint(key), value)
			}
		}
		row("module", info.ModulePath)
		row("commit", info.Commit)
		row("commit time", info.CommitTime)
		row("modified", fmt.Sprintf("%t", info.Modified))
		row("go", info.GoVersion)
		row("platform", info.Platform)
		row("dataset", info.Dataset.Source)
		row("embedded", ui.Count(info.Dataset.EmbeddedItems, "item", "items"))
		row("formats", strings.Join(info.Dataset.Formats, ", "))
		fmt.Print(tbl.String())
		return nil
	},
}

// currentBuild reads module and VCS metadata, falling back to ldflags values
// for anything the Go toolchain did not record.
func currentBuild() buildDetails {
	b := buildDetails{
		Version:    "devel",
		ModulePath: defaultModulePath,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}

	if info, ok := readBuildInfo(); ok && info != nil {
		settings := make(map[string]string, len(info.Settings))
		for _, s := range info.Settings {
			settings[s.Key] = s.Value
		}

		if info.Main.Path != "" {
			b.ModulePath = info.Main.Path
		}
		b.Version = normalizeVersion(info.Main.Version)
		if info.GoVersion != "" {
			b.GoVersion = info.GoVersion
		}
		if goos, goarch := settings["GOOS"], settings["GOARCH"]; goos != "" && goarch != "" {
			b.Platform = goos + "/" + goarch
		}
		b.Commit = settings["vcs.revision"]
		b.CommitTime = settings["vcs.time"]
		b.Modified = strings.EqualFold(settings["vcs.modified"], "true")
	}

	if b.Version == "devel" && buildinfo.Version != "" {
		b.Version = normalizeVersion(buildinfo.Version)
	}
	if b.Commit == "" {
		b.Commit = buildinfo.Commit
	}
	if b.CommitTime == "" {
		b.CommitTime = buildinfo.Date
	}
	return b
}

func normalizeVersion(version string) string {
	if version == "" || version == "(devel)" {
		return "devel"
	}
	return version
}

// currentDatasetDetails resolves the dataset path without loading it. Only the
// embedded dataset is opened, to count its items.
func currentDatasetDetails() datasetDetails {
	formats := dataset.Formats()
	details := datasetDetails{
		Source:  config.ResolveDatasetPath(datasetPathFlag, configPath, getConfig()),
		Formats: make([]string, len(formats)),
	}
	for i, f := range formats {
		details.Formats[i] = string(f)
	}
	if details.Source == "" {
		details.Source = dataset.DefaultSource
		details.Embedded = true
	}
	if d, err := dataset.Default(); err == nil {
		details.EmbeddedItems = d.Len()
	}
	return details
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
