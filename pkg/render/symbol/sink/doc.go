// Package sink provides output format encoders for finished symbols.
//
// # Overview
//
// A "sink" transforms a finished [grid.Grid] into a final output format.
// This package provides encoders for:
//
//   - ASCII: fixed-width text dump for terminals and logs
//   - Raster: grayscale pixel buffers, images, PNG bytes and image files
//   - DXF: CAD drawing-exchange documents of filled quadrilaterals
//
// Every encoder is a pure read-only view of the grid: the same grid may be
// fed to any number of encoders, concurrently, once symbol construction has
// finished.
//
// # ASCII Output
//
// [RenderASCII] emits two characters per cell and one line per row:
//
//	text := sink.RenderASCII(sym.Grid)
//
// [ParseASCII] reverses it exactly, which the tests and the interactive
// preview rely on.
//
// # Raster Output
//
// [PixelBuffer] produces the raw bottom-up grayscale pixels; [RenderImage]
// wraps them into a top-down [image.Gray]. [RenderPNG] encodes PNG bytes in
// memory and [WriteFile] saves to a file, inferring the format from the
// extension:
//
//	err := sink.WriteFile(sym.Grid, 5, "symbol.png")  // or .bmp, .jpg, ...
//
// File writes are atomic: a failed write leaves no partial file behind.
//
// # DXF Output
//
// [RenderDXF] emits one SOLID entity per foreground cell on layer
// "barcode", scaled by the cell size:
//
//	dxf, err := sink.RenderDXF(sym.Grid, 10,
//	    sink.WithUnits("mm"),
//	)
//
// [WithInverse] draws the background cells instead, producing the exact
// complement entity set for engraving workflows that cut the surround.
//
// # Adding New Formats
//
// To add a new output format:
//
//  1. Create an encoder function: func RenderFoo(g *grid.Grid, ...) ([]byte, error)
//  2. Define option types for configuration
//  3. Register the format in pkg/pipeline for CLI support
//
// The existing sinks provide examples: ascii.go for minimal text output,
// raster.go for image output, dxf.go for structured text with options.
//
// [grid.Grid]: github.com/matzehuels/dmrender/pkg/grid.Grid
package sink
