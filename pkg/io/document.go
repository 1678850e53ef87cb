package io

import (
	"github.com/matzehuels/dmrender/pkg/errors"
	"github.com/matzehuels/dmrender/pkg/grid"
)

// Document is the symbol interchange form: the matrix as textual rows plus
// the number of alignment regions per side. An external encoder produces
// it; this renderer consumes it.
type Document struct {
	Rows    []string `json:"rows" toml:"rows"`
	Regions int      `json:"regions" toml:"regions"`
}

// NewDocument captures a grid and its region count as a document.
func NewDocument(g *grid.Grid, regions int) *Document {
	return &Document{
		Rows:    g.Rows(),
		Regions: regions,
	}
}

// Grid materializes the document's rows as a grid. The rows must be
// non-empty, rectangular, and contain only '0' and '1' characters.
func (d *Document) Grid() (*grid.Grid, error) {
	return grid.Parse(d.Rows)
}

// Validate checks the document fields without materializing the grid.
func (d *Document) Validate() error {
	if len(d.Rows) == 0 {
		return errors.New(errors.ErrCodeInvalidDocument, "document has no rows")
	}
	if d.Regions < 1 {
		return errors.New(errors.ErrCodeInvalidDocument, "document region count must be at least 1, got %d", d.Regions)
	}
	return nil
}
