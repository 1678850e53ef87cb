package symbol

import (
	"github.com/matzehuels/dmrender/pkg/errors"
)

// Gap is the alignment gap width in cells. The frame, the handle lines and
// the seams between regions are all sized in multiples of it.
const Gap = 1

// Layout describes how a raw matrix is partitioned into alignment regions
// and how much margin surrounds it. All sizes are in cells. The zero value
// is not usable; construct one with [NewLayout].
type Layout struct {
	Regions    int // regions per side, the matrix splits into Regions x Regions blocks
	RegionSize int // cells per region side in the raw matrix
	QuietZone  int // reserved blank margin around the whole symbol, normally 0
}

// NewLayout derives the region geometry for a raw matrix of the given width.
// The region count must be at least 1 and divide the width evenly.
func NewLayout(width, regions int) (Layout, error) {
	if regions < 1 {
		return Layout{}, errors.New(errors.ErrCodeInvalidLayout, "region count must be at least 1, got %d", regions)
	}
	if width%regions != 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidLayout, "region count %d does not evenly divide matrix width %d", regions, width)
	}
	return Layout{
		Regions:    regions,
		RegionSize: width / regions,
	}, nil
}

// Bordered returns the size of one matrix side after [AddBorder]: the
// original size plus the outer frame, the quiet zone and one seam between
// each pair of adjacent regions.
func (l Layout) Bordered(size int) int {
	return size + 2*Gap + 2*l.QuietZone + (l.Regions-1)*2*Gap
}

// Origin returns the bordered-grid coordinate where region index i starts,
// counting the handle line that precedes the region content.
func (l Layout) Origin(i int) int {
	return i*(l.RegionSize+2*Gap) + l.QuietZone
}
