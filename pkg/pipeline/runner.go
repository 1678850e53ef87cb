package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dmrender/pkg/errors"
	"github.com/matzehuels/dmrender/pkg/grid"
	dmio "github.com/matzehuels/dmrender/pkg/io"
	"github.com/matzehuels/dmrender/pkg/observability"
	"github.com/matzehuels/dmrender/pkg/render/symbol"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner with the given logger. If logger is nil, the
// default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → build → encode pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	doc, g, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Document = doc
	result.Stats.LoadTime = time.Since(loadStart)

	r.Logger.Info("loaded document",
		"input", opts.Input,
		"matrix", g.Width(),
		"regions", doc.Regions,
		"duration", result.Stats.LoadTime)

	// Stage 2: Build
	buildStart := time.Now()
	sym, err := r.BuildSymbol(ctx, g, doc.Regions, opts)
	if err != nil {
		return nil, err
	}
	result.Symbol = sym
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.Width = sym.Width()
	result.Stats.Height = sym.Height()
	result.Stats.Foreground = sym.Grid.Count(grid.Black)

	r.Logger.Info("built symbol",
		"size", sym.Width(),
		"foreground", result.Stats.Foreground,
		"duration", result.Stats.BuildTime)

	// Stage 3: Encode
	encodeStart := time.Now()
	artifacts, err := r.Encode(ctx, sym, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.EncodeTime = time.Since(encodeStart)

	r.Logger.Info("encoded outputs",
		"formats", opts.Formats,
		"duration", result.Stats.EncodeTime)

	return result, nil
}

// Load reads the input document and materializes its grid.
func (r *Runner) Load(ctx context.Context, opts Options) (*dmio.Document, *grid.Grid, error) {
	observability.Pipeline().OnLoadStart(ctx, opts.Input)
	start := time.Now()

	doc, err := dmio.Import(opts.Input)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, opts.Input, 0, time.Since(start), err)
		return nil, nil, err
	}
	g, err := doc.Grid()
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, opts.Input, 0, time.Since(start), err)
		return nil, nil, err
	}

	observability.Pipeline().OnLoadComplete(ctx, opts.Input, g.Width()*g.Height(), time.Since(start), nil)
	return doc, g, nil
}

// BuildSymbol grows the border and stamps the alignment handles.
func (r *Runner) BuildSymbol(ctx context.Context, g *grid.Grid, regions int, opts Options) (*symbol.Symbol, error) {
	observability.Pipeline().OnBuildStart(ctx, regions)
	start := time.Now()

	sym, err := symbol.Build(g, regions, symbol.WithQuietZone(opts.QuietZone))
	observability.Pipeline().OnBuildComplete(ctx, regions, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return sym, nil
}

// Encode renders the symbol into every requested format. All formats are
// validated before any artifact is produced, so a bad format list fails
// without output.
func (r *Runner) Encode(ctx context.Context, sym *symbol.Symbol, opts Options) (map[string][]byte, error) {
	opts.SetEncodeDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	observability.Pipeline().OnEncodeStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := encodeArtifact(sym, format, opts)
		if err != nil {
			observability.Pipeline().OnEncodeComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, errors.Wrap(errors.CodeOrInternal(err), err, "format %s", format)
		}
		observability.Artifact().OnArtifact(ctx, format, len(data))
		r.Logger.Debug("encoded artifact", "format", format, "bytes", len(data))
		artifacts[format] = data
	}

	observability.Pipeline().OnEncodeComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
