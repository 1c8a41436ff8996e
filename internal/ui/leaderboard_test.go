package ui

import (
	"strings"
	"testing"

	"github.com/efrogs/rarity/internal/model"
)

func TestRenderLeaderboard(t *testing.T) {
	items := []model.Item{
		{ID: "3", Rank: 1, TotalScore: 912.25},
		{ID: "696", Rank: 51, TotalScore: 108.5},
		{ID: "2222", Rank: 2222, TotalScore: 12},
	}

	out := RenderLeaderboard(NewDisplayContextWithWidth(80), items)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Header, separator, one line per item.
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	for _, col := range []string{"Rank", "ID", "Tier", "Score"} {
		if !strings.Contains(lines[0], col) {
			t.Errorf("header missing %q: %q", col, lines[0])
		}
	}

	wantRows := [][]string{
		{"#1", "3", "Legendary", "912.25"},
		{"#51", "696", "Rare", "108.50"},
		{"#2222", "2222", "Common", "12.00"},
	}
	for i, want := range wantRows {
		line := lines[i+2]
		for _, cell := range want {
			if !strings.Contains(line, cell) {
				t.Errorf("row %d missing %q: %q", i, cell, line)
			}
		}
	}
}

func TestResultsTableEmpty(t *testing.T) {
	tbl := NewResultsTable(NewDisplayContextWithWidth(80), LeaderboardLayout)
	if tbl.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", tbl.Len())
	}
	if got := tbl.Render(); got != "" {
		t.Fatalf("empty table rendered %q", got)
	}
}

func TestCalculateWidthsRespectsLimits(t *testing.T) {
	tbl := NewResultsTable(NewDisplayContextWithWidth(200), LeaderboardLayout)
	widths := tbl.calculateWidths()

	if widths[0] != ColRank.MinWidth {
		t.Errorf("rank width = %d, want %d", widths[0], ColRank.MinWidth)
	}
	if widths[1] != ColID.MaxWidth {
		t.Errorf("id width = %d, want max %d", widths[1], ColID.MaxWidth)
	}
	if widths[3] != ColScore.MaxWidth {
		t.Errorf("score width = %d, want max %d", widths[3], ColScore.MaxWidth)
	}
}
