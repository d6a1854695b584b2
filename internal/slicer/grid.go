package slicer

import (
	"fmt"
	"image"
)

// Grid describes how a sheet is divided: Rows × Cols equal cells.
type Grid struct {
	Rows int
	Cols int
}

// Validate checks that both dimensions are at least 1.
func (g Grid) Validate() error {
	if g.Rows < 1 {
		return fmt.Errorf("rows must be at least 1, got %d", g.Rows)
	}
	if g.Cols < 1 {
		return fmt.Errorf("cols must be at least 1, got %d", g.Cols)
	}
	return nil
}

// CellSize returns the width and height of one cell for a sheet of the
// given size. Integer division: remainder pixels at the sheet's right
// and bottom edges are dropped, never redistributed.
func (g Grid) CellSize(w, h int) (int, int) {
	return w / g.Cols, h / g.Rows
}

// Remainder returns how many pixels the grid drops at the sheet's
// right and bottom edges.
func (g Grid) Remainder(w, h int) (int, int) {
	return w % g.Cols, h % g.Rows
}

// Cell is one grid rectangle of a sheet. Row and Col are 0-based.
type Cell struct {
	Row  int
	Col  int
	Rect image.Rectangle
}

// Cells returns the crop rectangle for every cell in row-major order,
// columns varying fastest.
func (g Grid) Cells(bounds image.Rectangle) []Cell {
	cw, ch := g.CellSize(bounds.Dx(), bounds.Dy())
	cells := make([]Cell, 0, g.Rows*g.Cols)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			x0 := bounds.Min.X + col*cw
			y0 := bounds.Min.Y + row*ch
			cells = append(cells, Cell{
				Row:  row,
				Col:  col,
				Rect: image.Rect(x0, y0, x0+cw, y0+ch),
			})
		}
	}
	return cells
}
