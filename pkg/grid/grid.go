// Package grid provides the binary matrix underlying a rendered symbol.
//
// A [Grid] is a rectangular arrangement of two-valued cells ([White] or
// [Black]); x is the column position, y is the row position, and the origin
// is at the top-left. Grids are mutable while a symbol is being assembled
// and are treated as read-only snapshots by every encoder, so a finished
// grid may be shared across goroutines without coordination.
package grid

import (
	"strings"

	"github.com/matzehuels/dmrender/pkg/errors"
)

// Grid is a rectangular matrix of binary cells. The zero value is not
// usable; construct one with [New], [FromRows] or [Parse].
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// New creates a Grid of the given dimensions with every cell set to White.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "grid dimensions must be positive, got %dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// FromRows creates a Grid from row-major cell values. The input must be
// non-empty and rectangular; rows are copied, so the caller keeps ownership
// of the slice.
func FromRows(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "grid must not be empty")
	}
	width := len(rows[0])
	g, err := New(width, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.New(errors.ErrCodeInvalidLayout, "grid rows must have equal length: row %d has %d cells, want %d", y, len(row), width)
		}
		for x, c := range row {
			if !c.valid() {
				return nil, errors.New(errors.ErrCodeInvalidLayout, "invalid cell value %d at row %d, column %d", uint8(c), y, x)
			}
			g.cells[y*width+x] = c
		}
	}
	return g, nil
}

// Parse creates a Grid from a textual row representation where '0' is White
// and '1' is Black. All rows must have the same length.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "grid must not be empty")
	}
	width := len(rows[0])
	g, err := New(width, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.New(errors.ErrCodeInvalidLayout, "grid rows must have equal length: row %d has %d cells, want %d", y, len(row), width)
		}
		for x := 0; x < width; x++ {
			switch row[x] {
			case '0':
				g.cells[y*width+x] = White
			case '1':
				g.cells[y*width+x] = Black
			default:
				return nil, errors.New(errors.ErrCodeParse, "invalid cell character %q at row %d, column %d", row[x], y, x)
			}
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Get returns the cell at (x, y).
func (g *Grid) Get(x, y int) Cell {
	g.check(x, y)
	return g.cells[y*g.width+x]
}

// Set writes the cell at (x, y).
func (g *Grid) Set(x, y int, c Cell) {
	g.check(x, y)
	if !c.valid() {
		panic("grid: invalid cell value")
	}
	g.cells[y*g.width+x] = c
}

func (g *Grid) check(x, y int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic("grid: coordinates out of range")
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether both grids have identical dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of cells holding the given value.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Rows returns the matrix as textual rows in the format accepted by [Parse].
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		b.Reset()
		b.Grow(g.width)
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] == Black {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		rows[y] = b.String()
	}
	return rows
}

// String returns the [Rows] representation joined by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
