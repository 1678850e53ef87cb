package symbol

import (
	"github.com/matzehuels/dmrender/pkg/errors"
	"github.com/matzehuels/dmrender/pkg/grid"
)

// Symbol is a finished, renderable data-matrix: the bordered and stamped
// grid together with the layout that produced it. A Symbol is immutable
// after [Build] and safe for concurrent reads.
type Symbol struct {
	Grid   *grid.Grid
	Layout Layout
}

// Option configures symbol construction.
type Option func(*options)

type options struct {
	quietZone int
}

// WithQuietZone reserves a blank margin of the given cell width around the
// whole symbol. The default is 0; the border arithmetic honours any
// non-negative width.
func WithQuietZone(width int) Option {
	return func(o *options) { o.quietZone = width }
}

// Build grows a raw matrix into a finished symbol. The matrix must be
// square, non-empty, and evenly divisible into regions x regions blocks;
// violations fail with INVALID_LAYOUT before any transformation runs.
func Build(g *grid.Grid, regions int, opts ...Option) (*Symbol, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "matrix must not be nil")
	}
	if err := errors.ValidateQuietZone(o.quietZone); err != nil {
		return nil, err
	}
	if g.Width() != g.Height() {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "matrix must be square to split into regions, got %dx%d", g.Width(), g.Height())
	}

	l, err := NewLayout(g.Width(), regions)
	if err != nil {
		return nil, err
	}
	l.QuietZone = o.quietZone

	return &Symbol{
		Grid:   AddHandles(AddBorder(g, l), l),
		Layout: l,
	}, nil
}

// Width returns the cell width of the finished symbol.
func (s *Symbol) Width() int {
	return s.Grid.Width()
}

// Height returns the cell height of the finished symbol.
func (s *Symbol) Height() int {
	return s.Grid.Height()
}
