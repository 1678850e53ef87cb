package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/dmrender/pkg/errors"
	"github.com/matzehuels/dmrender/pkg/grid"
	"github.com/matzehuels/dmrender/pkg/render/symbol"
	"github.com/matzehuels/dmrender/pkg/render/symbol/sink"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"png", false},
		{"bmp", false},
		{"ascii", false},
		{"dxf", false},
		{"json", false},
		{"svg", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestExtension(t *testing.T) {
	if got := Extension(FormatASCII); got != "txt" {
		t.Errorf("Extension(ascii) = %q, want %q", got, "txt")
	}
	if got := Extension(FormatDXF); got != "dxf" {
		t.Errorf("Extension(dxf) = %q, want %q", got, "dxf")
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{Input: "symbol.json"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if opts.CellSize != DefaultCellSize {
		t.Errorf("CellSize = %d, want %d", opts.CellSize, DefaultCellSize)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatPNG {
		t.Errorf("Formats = %v, want [png]", opts.Formats)
	}
}

func TestOptionsValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"missing input", Options{}, errors.ErrCodeInvalidParameter},
		{"bad format", Options{Input: "a.json", Formats: []string{"svg"}}, errors.ErrCodeInvalidFormat},
		{"negative cell size", Options{Input: "a.json", CellSize: -1}, errors.ErrCodeInvalidParameter},
		{"negative quiet zone", Options{Input: "a.json", QuietZone: -1}, errors.ErrCodeInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("ValidateAndSetDefaults() should fail")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "symbol.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExecute(t *testing.T) {
	rows := make([]string, 10)
	for i := range rows {
		rows[i] = strings.Repeat("0", 10)
	}
	input := writeDocument(t, `{"rows": ["`+strings.Join(rows, `", "`)+`"], "regions": 2}`)

	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), Options{
		Input:    input,
		Formats:  []string{FormatPNG, FormatASCII, FormatDXF, FormatJSON},
		CellSize: 2,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	// 10x10 with 2 regions grows to 14x14.
	if result.Stats.Width != 14 || result.Stats.Height != 14 {
		t.Errorf("symbol is %dx%d, want 14x14", result.Stats.Width, result.Stats.Height)
	}
	for _, format := range []string{FormatPNG, FormatASCII, FormatDXF, FormatJSON} {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("artifact %s is empty", format)
		}
	}

	// The ASCII artifact reconstructs the exact symbol grid.
	back, err := sink.ParseASCII(string(result.Artifacts[FormatASCII]))
	if err != nil {
		t.Fatalf("ParseASCII() error: %v", err)
	}
	if !back.Equal(result.Symbol.Grid) {
		t.Error("ascii artifact does not round-trip the symbol grid")
	}

	// One DXF SOLID entity per foreground cell.
	entities := bytes.Count(result.Artifacts[FormatDXF], []byte("SOLID"))
	if entities != result.Stats.Foreground {
		t.Errorf("DXF entity count = %d, want %d", entities, result.Stats.Foreground)
	}
}

func TestExecuteBadRegions(t *testing.T) {
	input := writeDocument(t, `{"rows": ["101", "010", "111"], "regions": 2}`)

	_, err := NewRunner(nil).Execute(context.Background(), Options{Input: input})
	if !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidLayout)
	}
}

func TestExecuteMissingInput(t *testing.T) {
	_, err := NewRunner(nil).Execute(context.Background(), Options{
		Input: filepath.Join(t.TempDir(), "missing.json"),
	})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestEncodeBMP(t *testing.T) {
	g, err := grid.Parse([]string{"10", "01"})
	if err != nil {
		t.Fatal(err)
	}
	sym, err := symbol.Build(g, 1)
	if err != nil {
		t.Fatal(err)
	}

	artifacts, err := NewRunner(nil).Encode(context.Background(), sym, Options{
		Formats:  []string{FormatBMP},
		CellSize: 1,
	})
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !bytes.HasPrefix(artifacts[FormatBMP], []byte("BM")) {
		t.Error("BMP artifact should start with the BM magic bytes")
	}
}

func TestEncodeInverseComplement(t *testing.T) {
	g, err := grid.Parse([]string{"10", "01"})
	if err != nil {
		t.Fatal(err)
	}
	sym, err := symbol.Build(g, 1)
	if err != nil {
		t.Fatal(err)
	}

	runner := NewRunner(nil)
	plain, err := runner.Encode(context.Background(), sym, Options{Formats: []string{FormatDXF}})
	if err != nil {
		t.Fatal(err)
	}
	inverse, err := runner.Encode(context.Background(), sym, Options{Formats: []string{FormatDXF}, Inverse: true})
	if err != nil {
		t.Fatal(err)
	}

	total := sym.Width() * sym.Height()
	got := bytes.Count(plain[FormatDXF], []byte("SOLID")) + bytes.Count(inverse[FormatDXF], []byte("SOLID"))
	if got != total {
		t.Errorf("plain + inverse entities = %d, want every cell once (%d)", got, total)
	}
}
