package dataset

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path       string
		format     Format
		compressed bool
	}{
		{path: "ranked_nfts.json", format: FormatJSON},
		{path: "/data/Ranked.JSON", format: FormatJSON},
		{path: "ranked.yml", format: FormatYAML},
		{path: "ranked.yaml.zst", format: FormatYAML, compressed: true},
		{path: "ranked.db", format: FormatSQLite},
		{path: "ranked.sqlite.zst", format: FormatSQLite, compressed: true},
	}

	for _, tt := range tests {
		format, compressed, err := DetectFormat(tt.path)
		if err != nil {
			t.Errorf("DetectFormat(%q) error = %v", tt.path, err)
			continue
		}
		if format != tt.format || compressed != tt.compressed {
			t.Errorf("DetectFormat(%q) = (%s, %v), want (%s, %v)", tt.path, format, compressed, tt.format, tt.compressed)
		}
	}

	if _, _, err := DetectFormat("ranked.csv"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("DetectFormat(csv) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]Format{"json": FormatJSON, "YML": FormatYAML, "sqlite3": FormatSQLite} {
		got, err := ParseFormat(input)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = (%s, %v), want %s", input, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("ParseFormat(xml) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	t.Parallel()

	d, err := Load("  ")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.Source() != DefaultSource {
		t.Fatalf("Source() = %q, want %q", d.Source(), DefaultSource)
	}
}

func TestLoadJSONWithNumericIDs(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ranked.json")
	content := `[{"id": 696, "rank": 12, "total_score": 4, "trait_scores": {"Body": {"value": "Green", "count": 10, "rarity_percentage": 25, "rarity_score": 4}}}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	item, ok := d.Find("696")
	if !ok {
		t.Fatal("Find(696) not found after numeric id decode")
	}
	if item.TraitScores["Body"].Value != "Green" {
		t.Fatalf("trait Body = %+v", item.TraitScores["Body"])
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("Load() of missing file succeeded")
	}
}

func TestExportRoundTrip(t *testing.T) {
	t.Parallel()

	src, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	for _, format := range Formats() {
		for _, compressed := range []bool{false, true} {
			opts := ExportOptions{Format: format, Compress: compressed}
			path := DefaultExportPath(filepath.Join(t.TempDir(), "efrogs"), opts)

			if err := Export(src, path, opts); err != nil {
				t.Fatalf("Export(%s, compress=%v) error = %v", format, compressed, err)
			}

			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load(%s) error = %v", path, err)
			}
			if !reflect.DeepEqual(got.Items(), src.Items()) {
				t.Fatalf("round trip through %s (compress=%v) changed the dataset", format, compressed)
			}
		}
	}
}

func TestDefaultExportPath(t *testing.T) {
	t.Parallel()

	got := DefaultExportPath("efrogs", ExportOptions{Format: FormatSQLite, Compress: true})
	if got != "efrogs.db.zst" {
		t.Fatalf("DefaultExportPath() = %q, want %q", got, "efrogs.db.zst")
	}
}

func TestReadSQLiteSkipsTraitsOfUnknownItems(t *testing.T) {
	t.Parallel()

	src, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "efrogs.db")
	if err := Export(src, path, ExportOptions{Format: FormatSQLite}); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	_, err = db.Exec(`INSERT INTO trait_scores (item_id, trait, value, count, rarity_percentage, rarity_score)
		VALUES ('99999', 'Halo', 'Gold', 1, 0.045, 2222)`)
	_ = db.Close()
	if err != nil {
		t.Fatalf("insert orphan trait: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got.Items(), src.Items()) {
		t.Fatal("a trait row of an unknown item changed the loaded records")
	}
	for _, item := range got.Items() {
		if _, ok := item.TraitScores["Halo"]; ok {
			t.Fatalf("item #%s received the orphan trait", item.ID)
		}
	}
}
