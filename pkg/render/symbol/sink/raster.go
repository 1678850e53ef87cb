package sink

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/dmrender/pkg/errors"
	"github.com/matzehuels/dmrender/pkg/grid"
	"github.com/matzehuels/dmrender/pkg/render"
)

// pixel maps one cell to its 8-bit grayscale value.
func pixel(c grid.Cell) byte {
	switch c {
	case grid.White:
		return 0xFF
	case grid.Black:
		return 0x00
	default:
		panic("sink: invalid cell value")
	}
}

// PixelBuffer expands the grid into raw single-channel grayscale pixels,
// one byte per pixel. Each cell covers a cellSize x cellSize block. Rows
// are emitted bottom-up, the row origin convention of raw raster buffers,
// so the buffer holds the last grid row first.
func PixelBuffer(g *grid.Grid, cellSize int) ([]byte, error) {
	if err := errors.ValidateCellSize(cellSize); err != nil {
		return nil, err
	}

	stride := g.Width() * cellSize
	buf := make([]byte, 0, stride*g.Height()*cellSize)
	row := make([]byte, stride)
	for y := g.Height() - 1; y >= 0; y-- {
		expandRow(g, y, cellSize, row)
		for i := 0; i < cellSize; i++ {
			buf = append(buf, row...)
		}
	}
	return buf, nil
}

// expandRow fills dst with one grid row scaled horizontally by cellSize.
func expandRow(g *grid.Grid, y, cellSize int, dst []byte) {
	i := 0
	for x := 0; x < g.Width(); x++ {
		p := pixel(g.Get(x, y))
		for c := 0; c < cellSize; c++ {
			dst[i] = p
			i++
		}
	}
}

// RenderImage renders the grid as a top-down grayscale image of
// (width*cellSize) x (height*cellSize) pixels. It is the display-oriented
// counterpart of [PixelBuffer]: the same pixels with the row order flipped
// back to top-down.
func RenderImage(g *grid.Grid, cellSize int) (*image.Gray, error) {
	if err := errors.ValidateCellSize(cellSize); err != nil {
		return nil, err
	}

	w := g.Width() * cellSize
	h := g.Height() * cellSize
	img := image.NewGray(image.Rect(0, 0, w, h))
	row := make([]byte, w)
	for y := 0; y < g.Height(); y++ {
		expandRow(g, y, cellSize, row)
		for i := 0; i < cellSize; i++ {
			copy(img.Pix[(y*cellSize+i)*img.Stride:], row)
		}
	}
	return img, nil
}

// RenderPNG encodes the grid as PNG into an in-memory buffer.
func RenderPNG(g *grid.Grid, cellSize int) ([]byte, error) {
	img, err := RenderImage(g, cellSize)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode PNG")
	}
	return buf.Bytes(), nil
}

// WriteFile renders the grid and saves it to path, inferring the image
// format from the file extension (.png, .bmp, .jpg, .gif, .tif). The file
// is written atomically: on failure the destination is left untouched.
func WriteFile(g *grid.Grid, cellSize int, path string) error {
	if err := errors.ValidateCellSize(cellSize); err != nil {
		return err
	}

	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeUnsupportedFormat, err, "cannot infer image format from %q", path)
	}

	img, err := RenderImage(g, cellSize)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "failed to encode %s", path)
	}
	return render.WriteFileAtomic(path, buf.Bytes(), 0o644)
}
