package sink

import (
	"strings"

	"github.com/matzehuels/dmrender/pkg/errors"
	"github.com/matzehuels/dmrender/pkg/grid"
)

// RenderASCII renders the grid as fixed-width text, two characters per
// cell: "  " for white, "XX" for black. Rows appear in the grid's natural
// top-down order, each terminated by a newline.
func RenderASCII(g *grid.Grid) string {
	var b strings.Builder
	b.Grow((g.Width()*2 + 1) * g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			b.WriteString(asciiSymbol(g.Get(x, y)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// asciiSymbol maps one cell to its two-character form.
func asciiSymbol(c grid.Cell) string {
	switch c {
	case grid.White:
		return "  "
	case grid.Black:
		return "XX"
	default:
		panic("sink: invalid cell value")
	}
}

// ParseASCII reconstructs a grid from [RenderASCII] output. Every row must
// consist of "  " and "XX" pairs of equal count.
func ParseASCII(text string) (*grid.Grid, error) {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	rows := make([][]grid.Cell, len(lines))
	for y, line := range lines {
		if len(line)%2 != 0 {
			return nil, errors.New(errors.ErrCodeParse, "row %d has odd length %d", y, len(line))
		}
		row := make([]grid.Cell, len(line)/2)
		for x := range row {
			switch line[2*x : 2*x+2] {
			case "  ":
				row[x] = grid.White
			case "XX":
				row[x] = grid.Black
			default:
				return nil, errors.New(errors.ErrCodeParse, "invalid cell %q at row %d, column %d", line[2*x:2*x+2], y, x)
			}
		}
		rows[y] = row
	}
	return grid.FromRows(rows)
}
