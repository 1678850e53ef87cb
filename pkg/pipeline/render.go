package pipeline

import (
	"bytes"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/dmrender/pkg/errors"
	dmio "github.com/matzehuels/dmrender/pkg/io"
	"github.com/matzehuels/dmrender/pkg/render/symbol"
	"github.com/matzehuels/dmrender/pkg/render/symbol/sink"
)

// encodeArtifact renders one output format for the finished symbol.
func encodeArtifact(sym *symbol.Symbol, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatPNG:
		return sink.RenderPNG(sym.Grid, opts.CellSize)
	case FormatBMP:
		return encodeRaster(sym, imaging.BMP, opts)
	case FormatASCII:
		return []byte(sink.RenderASCII(sym.Grid)), nil
	case FormatDXF:
		return sink.RenderDXF(sym.Grid, opts.CellSize, dxfOptions(opts)...)
	case FormatJSON:
		var buf bytes.Buffer
		if err := dmio.WriteJSON(&buf, dmio.NewDocument(sym.Grid, sym.Layout.Regions)); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, ValidateFormat(format)
	}
}

// encodeRaster produces an in-memory image artifact in any codec format
// beyond the PNG fast path.
func encodeRaster(sym *symbol.Symbol, format imaging.Format, opts Options) ([]byte, error) {
	img, err := sink.RenderImage(sym.Grid, opts.CellSize)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode %s", format)
	}
	return buf.Bytes(), nil
}

// dxfOptions maps pipeline options onto the DXF sink's option set.
func dxfOptions(opts Options) []sink.DXFOption {
	var dxfOpts []sink.DXFOption
	if opts.Inverse {
		dxfOpts = append(dxfOpts, sink.WithInverse())
	}
	if opts.Units != "" {
		dxfOpts = append(dxfOpts, sink.WithUnits(opts.Units))
	}
	return dxfOpts
}
