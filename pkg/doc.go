// Package pkg provides the core libraries for dmrender symbol rendering.
//
// # Overview
//
// dmrender turns a pre-encoded data-matrix — a rectangular grid of black and
// white cells supplied by an external symbol encoder — into consumable
// output. The pkg directory is organized into four main areas:
//
//  1. [grid] - The binary matrix model shared by every stage
//  2. [render/symbol] - The border and handle transform producing the finished symbol
//  3. [render/symbol/sink] - Output encoders (ASCII, raster, DXF)
//  4. [pipeline] - Orchestration (load → build → encode)
//
// # Architecture
//
// The typical data flow through dmrender:
//
//	Symbol document (JSON/TOML)
//	         ↓
//	    [io] package (decode document, materialize grid)
//	         ↓
//	    [render/symbol] package (border + alignment handles)
//	         ↓
//	    [render/symbol/sink] package (encode outputs)
//	         ↓
//	    PNG/BMP/ASCII/DXF/JSON output
//
// # Quick Start
//
// Build a symbol and render it:
//
//	import (
//	    "github.com/matzehuels/dmrender/pkg/grid"
//	    "github.com/matzehuels/dmrender/pkg/render/symbol"
//	    "github.com/matzehuels/dmrender/pkg/render/symbol/sink"
//	)
//
//	// 1. Materialize the matrix
//	g, _ := grid.Parse([]string{"10", "01"})
//
//	// 2. Grow the border and stamp the handles
//	sym, _ := symbol.Build(g, 1)
//
//	// 3. Encode
//	png, _ := sink.RenderPNG(sym.Grid, 5)
//	text := sink.RenderASCII(sym.Grid)
//	dxf, _ := sink.RenderDXF(sym.Grid, 10, sink.WithUnits("mm"))
//
// # Main Packages
//
//   - [grid]: rectangular binary matrix with two-valued cells
//   - [errors]: structured error codes shared across the repo
//   - [io]: symbol document decoding and encoding (JSON, TOML)
//   - [render]: shared output helpers (atomic file writes)
//   - [render/symbol]: layout geometry, border and handle transforms
//   - [render/symbol/sink]: ASCII, raster and DXF encoders
//   - [pipeline]: the load → build → encode runner behind the CLI
//   - [observability]: optional hooks at pipeline stage boundaries
//   - [buildinfo]: ldflags-injected version information
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                 # All tests
//	go test ./pkg/render/symbol/...   # Specific package
//	go test -run Example              # Examples only
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/dmrender/pkg/grid
// [errors]: https://pkg.go.dev/github.com/matzehuels/dmrender/pkg/errors
// [io]: https://pkg.go.dev/github.com/matzehuels/dmrender/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/dmrender/pkg/render
// [render/symbol]: https://pkg.go.dev/github.com/matzehuels/dmrender/pkg/render/symbol
// [render/symbol/sink]: https://pkg.go.dev/github.com/matzehuels/dmrender/pkg/render/symbol/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/dmrender/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/dmrender/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/dmrender/pkg/buildinfo
package pkg
