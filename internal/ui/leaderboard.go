package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/efrogs/rarity/internal/model"
	"github.com/efrogs/rarity/internal/rarity"
)

// Alignment represents column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// ColumnDef defines a column of a ResultsTable.
type ColumnDef struct {
	Name       string         // Header text
	WidthRatio float64        // Proportion of available width (0.0-1.0), 0 means fixed width
	MinWidth   int            // Minimum width in characters
	MaxWidth   int            // Maximum width (0 = no limit)
	Align      Alignment      // Text alignment
	Style      lipgloss.Style // Style to apply to cells in this column
}

// Leaderboard columns.
var (
	ColRank  = ColumnDef{Name: "Rank", MinWidth: 6, Align: AlignRight, Style: Muted}
	ColID    = ColumnDef{Name: "ID", WidthRatio: 0.4, MinWidth: 8, MaxWidth: 20}
	ColTier  = ColumnDef{Name: "Tier", MinWidth: 10}
	ColScore = ColumnDef{Name: "Score", WidthRatio: 0.3, MinWidth: 8, MaxWidth: 12, Align: AlignRight}

	// LeaderboardLayout is [rank, id, tier, score].
	LeaderboardLayout = []ColumnDef{ColRank, ColID, ColTier, ColScore}
)

// ResultsTable renders rows under a header row sized to the terminal.
type ResultsTable struct {
	display *DisplayContext
	columns []ColumnDef
	rows    [][]string
	styles  [][]lipgloss.Style
}

// NewResultsTable creates a new ResultsTable with the given display context and column layout.
func NewResultsTable(display *DisplayContext, columns []ColumnDef) *ResultsTable {
	return &ResultsTable{
		display: display,
		columns: columns,
	}
}

// AddRow adds a row of cells. A non-empty cellStyles overrides the column
// style per cell.
func (t *ResultsTable) AddRow(cells []string, cellStyles ...lipgloss.Style) {
	t.rows = append(t.rows, cells)
	t.styles = append(t.styles, cellStyles)
}

// Len returns the number of rows.
func (t *ResultsTable) Len() int {
	return len(t.rows)
}

// calculateWidths computes column widths based on terminal size and column definitions.
func (t *ResultsTable) calculateWidths() []int {
	widths := make([]int, len(t.columns))

	var totalRatio float64
	var fixedWidth int
	const columnPadding = 2

	for i, col := range t.columns {
		if col.WidthRatio == 0 {
			widths[i] = col.MinWidth
			fixedWidth += widths[i]
		} else {
			totalRatio += col.WidthRatio
		}
	}

	totalPadding := (len(t.columns) - 1) * columnPadding
	available := t.display.TermWidth - fixedWidth - totalPadding
	if available < 0 {
		available = 0
	}

	for i, col := range t.columns {
		if col.WidthRatio == 0 {
			continue
		}
		width := int(float64(available) * col.WidthRatio / totalRatio)
		if width < col.MinWidth {
			width = col.MinWidth
		}
		if col.MaxWidth > 0 && width > col.MaxWidth {
			width = col.MaxWidth
		}
		widths[i] = width
	}

	return widths
}

// Render generates the table output as a string.
func (t *ResultsTable) Render() string {
	if len(t.rows) == 0 {
		return ""
	}

	widths := t.calculateWidths()
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Name
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(true).
		BorderStyle(Muted).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col >= len(t.columns) {
				return lipgloss.NewStyle()
			}
			colDef := t.columns[col]

			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = Bold
			case row >= 0 && row < len(t.styles) && col < len(t.styles[row]):
				style = t.styles[row][col]
			default:
				style = lipgloss.NewStyle().Inherit(colDef.Style)
			}

			style = style.Width(widths[col])
			if colDef.Align == AlignRight {
				style = style.Align(lipgloss.Right)
			} else {
				style = style.Align(lipgloss.Left)
			}
			if col < len(t.columns)-1 {
				style = style.PaddingRight(2)
			}
			return style
		}).
		Rows(t.rows...)

	return tbl.Render()
}

// RenderLeaderboard renders items as a rank table with tier colors.
func RenderLeaderboard(display *DisplayContext, items []model.Item) string {
	t := NewResultsTable(display, LeaderboardLayout)
	for _, item := range items {
		tier := rarity.Classify(item.Rank)
		tierStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(tier.Color()))
		t.AddRow(
			[]string{
				fmt.Sprintf("#%d", item.Rank),
				string(item.ID),
				tier.String(),
				fmt.Sprintf("%.2f", item.TotalScore),
			},
			Muted, lipgloss.NewStyle(), tierStyle, Bold,
		)
	}
	return t.Render()
}
