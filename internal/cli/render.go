package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dmrender/pkg/observability"
	"github.com/matzehuels/dmrender/pkg/pipeline"
	"github.com/matzehuels/dmrender/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // output file path (single format) or base path (multiple)
	formats   []string // output formats: "png", "bmp", "ascii", "dxf", "json"
	cellSize  int      // pixel/drawing-unit edge length per matrix cell
	inverse   bool     // DXF: draw background cells instead of foreground
	units     string   // DXF: drawing unit, "mm" or unspecified
	quietZone int      // reserved blank margin width, normally 0
}

// newRenderCmd creates the render command for encoding symbol documents.
// It supports multiple output formats per invocation; each format lands in
// its own file next to the input (or under --output).
//
// Default settings:
//   - format: png
//   - cell-size: 5
//   - quiet-zone: 0 (reserved, the sizing arithmetic honours larger values)
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{cellSize: pipeline.DefaultCellSize}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a symbol document to output files",
		Long: `Render reads a symbol document (.json or .toml), grows the alignment
border and handles, and encodes the finished symbol into the requested
formats. Raster formats scale each cell to cell-size pixels; DXF scales
each cell to cell-size drawing units.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), bmp, ascii, dxf, json (comma-separated)")
	cmd.Flags().IntVarP(&opts.cellSize, "cell-size", "c", opts.cellSize, "pixels (or drawing units) per matrix cell")
	cmd.Flags().BoolVar(&opts.inverse, "inverse", false, "DXF: draw background cells instead of foreground")
	cmd.Flags().StringVar(&opts.units, "units", "", "DXF: drawing unit, \"mm\" for millimeters")
	cmd.Flags().IntVar(&opts.quietZone, "quiet-zone", 0, "blank margin width around the symbol in cells")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["png"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatPNG}
	}
	return strings.Split(s, ",")
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output ends in a known artifact extension, that extension is stripped.
// Each artifact is then written as base.<format extension>.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	for format := range pipeline.ValidFormats {
		if ext == pipeline.Extension(format) {
			return strings.TrimSuffix(output, "."+ext)
		}
	}
	return output
}

// runRender executes the pipeline for input and writes one file per format.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	if opts.units != "" && opts.units != "mm" {
		printWarning("unknown units %q, DXF header will declare unspecified units", opts.units)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", input))
	spinner.Start()

	result, err := pipeline.NewRunner(logger).Execute(ctx, pipeline.Options{
		Input:     input,
		Formats:   opts.formats,
		CellSize:  opts.cellSize,
		Inverse:   opts.inverse,
		Units:     opts.units,
		QuietZone: opts.quietZone,
	})
	if err != nil {
		spinner.StopWithError("Rendering failed")
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	spinner.Stop()

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		data := result.Artifacts[format]
		path := base + "." + pipeline.Extension(format)
		if err := render.WriteFileAtomic(path, data, 0o644); err != nil {
			return err
		}
		observability.Artifact().OnArtifactWritten(ctx, format, path, len(data))
		printFile(path)
	}

	printSuccess("Rendered %s", input)
	printStats(result.Stats.Width, result.Stats.Height, result.Stats.Foreground)
	return nil
}
