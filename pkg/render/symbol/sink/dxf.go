package sink

import (
	"bytes"
	"strconv"

	"github.com/matzehuels/dmrender/pkg/errors"
	"github.com/matzehuels/dmrender/pkg/grid"
)

// DXFOption configures DXF rendering via [RenderDXF].
type DXFOption func(*dxfRenderer)

type dxfRenderer struct {
	inverse bool
	units   string
}

// WithInverse draws the background cells instead of the foreground cells,
// producing the exact complement entity set. Engraving workflows use this
// to cut the surround rather than the marks.
func WithInverse() DXFOption {
	return func(r *dxfRenderer) { r.inverse = true }
}

// WithUnits declares the drawing unit in the header. "mm" selects
// millimeters; any other value falls back to the unspecified/inches code,
// which is what CAD readers assume for unitless drawings.
func WithUnits(units string) DXFOption {
	return func(r *dxfRenderer) { r.units = units }
}

// RenderDXF renders the grid as a minimal DXF document: a header declaring
// drawing version AC1006 and the unit code, then one SOLID entity on layer
// "barcode" per foreground cell, each a filled square of cellSize drawing
// units. Cell (x, y) in top-down grid order anchors at drawing coordinate
// (x*cellSize, (height-y)*cellSize), so row 0 sits at the top of the
// drawing in DXF's y-up plane.
func RenderDXF(g *grid.Grid, cellSize int, opts ...DXFOption) ([]byte, error) {
	if err := errors.ValidateCellSize(cellSize); err != nil {
		return nil, err
	}

	r := dxfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var b bytes.Buffer
	b.WriteString("0\nSECTION\n2\nHEADER\n")
	// AC1006 is the oldest drawing version, accepted by every reader.
	b.WriteString("9\n$ACADVER\n1\nAC1006\n")
	b.WriteString("9\n$INSUNITS\n70\n")
	if r.units == "mm" {
		b.WriteString("4\n")
	} else {
		b.WriteString("0\n")
	}
	b.WriteString("0\nENDSEC\n0\nSECTION\n2\nENTITIES\n")

	height := g.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < g.Width(); x++ {
			if foreground(g.Get(x, y)) != r.inverse {
				writeSolid(&b, x*cellSize, (height-y)*cellSize, cellSize)
			}
		}
	}

	b.WriteString("0\nENDSEC\n0\nEOF\n")
	return b.Bytes(), nil
}

// foreground maps one cell to its boolean drawing value.
func foreground(c grid.Cell) bool {
	switch c {
	case grid.White:
		return false
	case grid.Black:
		return true
	default:
		panic("sink: invalid cell value")
	}
}

// writeSolid emits one filled quadrilateral anchored at the cell's
// top-left drawing coordinate.
func writeSolid(b *bytes.Buffer, x, y, size int) {
	b.WriteString("0\nSOLID\n8\nbarcode\n")
	writeCorner(b, x, y, 0)
	writeCorner(b, x+size, y, 1)
	writeCorner(b, x, y-size, 2)
	writeCorner(b, x+size, y-size, 3)
}

// writeCorner emits one corner as group-code/value pairs. Group 10+c/20+c/
// 30+c carry the X/Y/Z of corner c; readers parse positionally, so the
// order is fixed.
func writeCorner(b *bytes.Buffer, x, y, c int) {
	b.WriteString(strconv.Itoa(10 + c))
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(x))
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(20 + c))
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(y))
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(30 + c))
	b.WriteByte('\n')
	b.WriteString("0\n")
}
