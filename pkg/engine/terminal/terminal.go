// Package terminal measures the controlling terminal in character cells.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback size when stdout is not a terminal
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height in cells.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// CellLayout maps character cells onto the pixel surface the map projects
// into, so pixel-based layout code runs unchanged on a terminal.
type CellLayout struct {
	CellWidth, CellHeight int

	// Rows kept free for the header, status and message lines
	ReservedRows int

	MinCols, MinRows int
}

// Surface returns the map surface in pixels for a width x height terminal
func (l CellLayout) Surface(width, height int) (w, h int) {
	cols := max(width, l.MinCols)
	rows := max(height-l.ReservedRows, l.MinRows)
	return cols * l.CellWidth, rows * l.CellHeight
}

// Cell returns the cell holding pixel (x, y)
func (l CellLayout) Cell(x, y float64) (col, row int) {
	return int(x) / l.CellWidth, int(y) / l.CellHeight
}
