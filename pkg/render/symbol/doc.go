// Package symbol grows a raw data-matrix into a finished, renderable symbol.
//
// # Overview
//
// An external encoder produces the raw matrix body: a square [grid.Grid]
// partitioned into regions x regions equal blocks. This package adds the
// geometry every scanner expects around that body:
//
//   - [AddBorder]: inserts the white frame, the gaps between adjacent
//     regions, and the reserved quiet zone
//   - [AddHandles]: stamps the solid/broken "L" alignment pattern that
//     frames each region
//
// Both are pure transformations from one grid to a new, larger grid; the
// input is never modified.
//
// # Construction
//
// [Build] validates the matrix against the region count and composes the
// two transformations:
//
//	sym, err := symbol.Build(g, 2)
//	if err != nil {
//	    return err
//	}
//	ascii := sink.RenderASCII(sym.Grid)
//
// After Build returns, the symbol is never mutated again and its grid may
// be read from any number of goroutines concurrently.
//
// # Pipeline Position
//
// The package sits between document input and the output encoders:
//
//	io.Document → grid.Grid → [this package] → sink.RenderASCII/RenderPNG/RenderDXF
package symbol
