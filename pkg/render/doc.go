// Package render provides the rendering pipeline for data-matrix symbols.
//
// # Overview
//
// This package tree transforms a raw binary matrix into final outputs:
//
//   - Symbol assembly (in [symbol] subpackage)
//   - Output encoders (in [symbol/sink] subpackage)
//   - Shared file output plumbing (this package)
//
// # Symbol Assembly
//
// The [symbol] subpackage grows a raw matrix into a finished symbol by
// adding the white frame, inter-region gaps and per-region alignment
// handles:
//
//	sym, err := symbol.Build(g, regions)
//
// # Output Encoders
//
// The [symbol/sink] subpackage encodes a finished grid into its output
// formats:
//
//	text := sink.RenderASCII(sym.Grid)
//	png, err := sink.RenderPNG(sym.Grid, 5)
//	dxf, err := sink.RenderDXF(sym.Grid, 5, sink.WithUnits("mm"))
//	err = sink.WriteFile(sym.Grid, 5, "symbol.png")
//
// # File Output
//
// [WriteFileAtomic] is the single path through which rendered bytes reach
// disk. It stages data in a uniquely named temporary file and renames it
// over the destination, so a failed write never leaves a partial file
// behind. Both the raster sink and the pipeline artifact writer use it.
//
// [symbol]: github.com/matzehuels/dmrender/pkg/render/symbol
// [symbol/sink]: github.com/matzehuels/dmrender/pkg/render/symbol/sink
package render
