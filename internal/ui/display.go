package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
)

const (
	// DefaultTermWidth is the fallback terminal width when detection fails.
	DefaultTermWidth = 80

	// MaxCardWidth caps result cards on wide terminals.
	MaxCardWidth = 64

	// MinCardWidth keeps cards readable on narrow terminals.
	MinCardWidth = 36
)

// DisplayContext holds display parameters, auto-detecting terminal width.
type DisplayContext struct {
	TermWidth int  // detected or fallback terminal width
	IsTTY     bool // whether stdout is a terminal
}

// NewDisplayContext creates a DisplayContext, auto-detecting terminal dimensions.
func NewDisplayContext() *DisplayContext {
	fd := os.Stdout.Fd()
	isTTY := term.IsTerminal(fd)

	width := DefaultTermWidth
	if isTTY {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
	}

	return &DisplayContext{
		TermWidth: width,
		IsTTY:     isTTY,
	}
}

// NewDisplayContextWithWidth creates a DisplayContext with a fixed width (for testing).
func NewDisplayContextWithWidth(width int) *DisplayContext {
	return &DisplayContext{
		TermWidth: width,
		IsTTY:     true,
	}
}

// CardWidth returns the outer width for a result card.
func (d *DisplayContext) CardWidth() int {
	w := d.TermWidth - 2
	if w > MaxCardWidth {
		w = MaxCardWidth
	}
	if w < MinCardWidth {
		w = MinCardWidth
	}
	return w
}
