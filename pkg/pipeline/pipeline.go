// Package pipeline provides the core rendering pipeline for dmrender.
//
// This package implements the complete load → build → encode pipeline that
// the CLI wraps. Centralizing it keeps behavior consistent across entry
// points and gives tests a single surface to drive.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a symbol document (JSON or TOML) and materialize the grid
//  2. Build: Grow the border and stamp the alignment handles
//  3. Encode: Generate output in the requested formats (PNG, BMP, ASCII, DXF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Input:   "symbol.json",
//	    Formats: []string{"png", "dxf"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	stdio "io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dmrender/pkg/errors"
	dmio "github.com/matzehuels/dmrender/pkg/io"
	"github.com/matzehuels/dmrender/pkg/render/symbol"
)

const (
	// DefaultCellSize is the pixel (or drawing unit) edge length of one
	// matrix cell in raster and vector output.
	DefaultCellSize = 5

	// DefaultUnits leaves the DXF drawing unit unspecified; CAD readers
	// treat unitless drawings as inches.
	DefaultUnits = ""
)

// Format constants for output formats.
const (
	FormatPNG   = "png"
	FormatBMP   = "bmp"
	FormatASCII = "ascii"
	FormatDXF   = "dxf"
	FormatJSON  = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:   true,
	FormatBMP:   true,
	FormatASCII: true,
	FormatDXF:   true,
	FormatJSON:  true,
}

// Extension returns the file extension for a format, without the dot. The
// artifact formats map onto extensions directly.
func Extension(format string) string {
	switch format {
	case FormatASCII:
		return "txt"
	default:
		return format
	}
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: png, bmp, ascii, dxf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for the rendering pipeline.
type Options struct {
	// Load options
	Input string `json:"input"` // path to a .json or .toml symbol document

	// Build options
	QuietZone int `json:"quiet_zone,omitempty"` // reserved blank margin, normally 0

	// Encode options
	Formats  []string `json:"formats,omitempty"`
	CellSize int      `json:"cell_size,omitempty"`
	Inverse  bool     `json:"inverse,omitempty"` // DXF only: draw background cells instead
	Units    string   `json:"units,omitempty"`   // DXF only: "mm" or unspecified

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidParameter, "input document path is required")
	}
	o.SetEncodeDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidateCellSize(o.CellSize); err != nil {
		return err
	}
	if err := errors.ValidateQuietZone(o.QuietZone); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetEncodeDefaults sets default values for encoding.
func (o *Options) SetEncodeDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if o.CellSize == 0 {
		o.CellSize = DefaultCellSize
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(stdio.Discard, log.Options{})
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the loaded input document.
	Document *dmio.Document

	// Symbol is the bordered and stamped symbol.
	Symbol *symbol.Symbol

	// Artifacts contains encoded outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Width      int // finished symbol width in cells
	Height     int // finished symbol height in cells
	Foreground int // black cell count in the finished symbol
	LoadTime   time.Duration
	BuildTime  time.Duration
	EncodeTime time.Duration
}
