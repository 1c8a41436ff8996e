package ui

import (
	"strings"
	"testing"
)

func testInfo() string {
	return InfoMarkdown(InfoOptions{
		Collection:     "Efrogs",
		MarketplaceURL: "https://element.market/collections/ethereum-frogs",
	})
}

func TestInfoMarkdownContent(t *testing.T) {
	t.Parallel()

	md := testInfo()
	for _, want := range []string{
		"Top 10 Efrogs (Ranks 1-10)",
		"Top 50 Efrogs (Ranks 11-50)",
		"All other Efrogs (Ranks 501+)",
		"1 / (trait occurrence percentage)",
		"100+ points (Extremely rare)",
		"[View collection on Element Market](https://element.market/collections/ethereum-frogs)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("info markdown missing %q", want)
		}
	}
}

func TestInfoMarkdownWithoutMarketplace(t *testing.T) {
	t.Parallel()

	md := InfoMarkdown(InfoOptions{Collection: "Efrogs"})
	if strings.Contains(md, "Element Market") {
		t.Fatalf("expected no marketplace link:\n%s", md)
	}
}

func TestExtractHeadings(t *testing.T) {
	t.Parallel()

	content := "# Title\n\nintro\n\n## First\n\nbody\n\n### Nested\n\nmore\n"
	headings := ExtractHeadings(content)
	if len(headings) != 3 {
		t.Fatalf("got %d headings, want 3: %+v", len(headings), headings)
	}

	want := []Heading{
		{Level: 1, Text: "Title", Offset: 0},
		{Level: 2, Text: "First", Offset: strings.Index(content, "## First")},
		{Level: 3, Text: "Nested", Offset: strings.Index(content, "### Nested")},
	}
	for i := range want {
		if headings[i] != want[i] {
			t.Errorf("heading %d = %+v, want %+v", i, headings[i], want[i])
		}
	}
}

func TestSection(t *testing.T) {
	t.Parallel()

	md := testInfo()

	tests := []struct {
		name      string
		query     string
		wantOK    bool
		contains  string
		excludes  string
		startWith string
	}{
		{
			name:      "tiers",
			query:     "tiers",
			wantOK:    true,
			contains:  "Ranks 1-10",
			excludes:  "How Rarity Is Calculated",
			startWith: "## Rarity Tiers",
		},
		{
			name:      "case insensitive",
			query:     "VISUALIZATION",
			wantOK:    true,
			contains:  "Extremely rare",
			excludes:  "Collection Information",
			startWith: "## Trait Score Visualization",
		},
		{
			name:      "last section runs to end",
			query:     "collection",
			wantOK:    true,
			contains:  "Element Market",
			startWith: "## Collection Information",
		},
		{
			name:      "slug",
			query:     "how-rarity-is-calculated",
			wantOK:    true,
			contains:  "1 / (trait occurrence percentage)",
			excludes:  "Trait Score Visualization",
			startWith: "## How Rarity Is Calculated",
		},
		{name: "title is not a section", query: "Rarity Information"},
		{name: "unknown", query: "roadmap"},
		{name: "blank", query: "  "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Section(md, tt.query)
			if ok != tt.wantOK {
				t.Fatalf("Section(%q) ok = %v, want %v", tt.query, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !strings.HasPrefix(got, tt.startWith) {
				t.Errorf("section starts with %q, want prefix %q", firstLine(got), tt.startWith)
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("section missing %q:\n%s", tt.contains, got)
			}
			if tt.excludes != "" && strings.Contains(got, tt.excludes) {
				t.Errorf("section should not include %q:\n%s", tt.excludes, got)
			}
		})
	}
}

func TestSectionNames(t *testing.T) {
	t.Parallel()

	got := SectionNames(testInfo())
	want := []string{
		"Rarity Tiers",
		"How Rarity Is Calculated",
		"Trait Score Visualization",
		"Collection Information",
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("SectionNames = %v, want %v", got, want)
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
