package symbol

import (
	"github.com/matzehuels/dmrender/pkg/grid"
)

// AddBorder returns a new grid with the raw matrix framed for handle
// stamping: one gap plus the quiet zone on every outer edge, and a two-gap
// seam between adjacent regions both horizontally and vertically. Inserted
// cells are White; [AddHandles] paints the alignment pattern onto them
// afterwards. The input grid is not modified.
func AddBorder(g *grid.Grid, l Layout) *grid.Grid {
	out := mustGrid(l.Bordered(g.Width()), l.Bordered(g.Height()))

	edge := Gap + l.QuietZone
	seam := 2 * Gap
	for y := 0; y < g.Height(); y++ {
		dy := edge + y + (y/l.RegionSize)*seam
		for x := 0; x < g.Width(); x++ {
			dx := edge + x + (x/l.RegionSize)*seam
			out.Set(dx, dy, g.Get(x, y))
		}
	}
	return out
}

// mustGrid allocates a grid whose dimensions were derived from an already
// validated layout.
func mustGrid(width, height int) *grid.Grid {
	g, err := grid.New(width, height)
	if err != nil {
		panic("symbol: layout produced impossible grid dimensions")
	}
	return g
}
