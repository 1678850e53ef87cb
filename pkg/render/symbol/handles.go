package symbol

import (
	"github.com/matzehuels/dmrender/pkg/grid"
)

// AddHandles returns a copy of the bordered grid with the alignment handle
// stamped around every region: a solid line along the bottom and left edge
// and a broken every-other-cell line along the top and right edge. Cells
// are set to Black, never toggled, so re-stamping an already stamped grid
// changes nothing. The input grid is not modified.
func AddHandles(g *grid.Grid, l Layout) *grid.Grid {
	out := g.Clone()

	for xi := 0; xi < l.Regions; xi++ {
		for yi := 0; yi < l.Regions; yi++ {
			xo := l.Origin(xi)
			yo := l.Origin(yi)
			xmax := xo + l.RegionSize + Gap
			ymax := yo + l.RegionSize + Gap

			// bottom solid line
			for x := xo; x < xmax; x++ {
				out.Set(x, ymax, grid.Black)
			}

			// left solid line
			for y := yo; y < ymax; y++ {
				out.Set(xo, y, grid.Black)
			}

			// top broken line
			for x := xo; x < xmax; x += 2 {
				out.Set(x, yo, grid.Black)
			}

			// right broken line, descending so the corner cell is included
			for y := ymax; y > yo; y -= 2 {
				out.Set(xmax, y, grid.Black)
			}
		}
	}
	return out
}
