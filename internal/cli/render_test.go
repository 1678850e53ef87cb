package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/dmrender/pkg/errors"
	"github.com/matzehuels/dmrender/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to png", "", []string{"png"}},
		{"single format", "dxf", []string{"dxf"}},
		{"multiple formats", "png,ascii,dxf", []string{"png", "ascii", "dxf"}},
		{"bmp only", "bmp", []string{"bmp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"no output strips input extension", "", "symbol.json", "symbol"},
		{"no output with directory", "", "out/symbol.toml", "out/symbol"},
		{"output with artifact extension", "result.png", "symbol.json", "result"},
		{"output with ascii extension", "result.txt", "symbol.json", "result"},
		{"output without extension", "result", "symbol.json", "result"},
		{"output with unrelated extension", "result.out", "symbol.json", "result.out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestRunRenderMissingInput(t *testing.T) {
	input := filepath.Join(t.TempDir(), "missing.json")
	opts := renderOpts{formats: []string{pipeline.FormatPNG}, cellSize: pipeline.DefaultCellSize}

	err := runRender(context.Background(), input, &opts)
	if err == nil {
		t.Fatal("runRender() returned nil for a missing input document")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestRunRenderInvalidDocument(t *testing.T) {
	input := filepath.Join(t.TempDir(), "symbol.json")
	if err := os.WriteFile(input, []byte(`{"rows": ["101", "010", "111"], "regions": 2}`), 0o644); err != nil {
		t.Fatal(err)
	}
	opts := renderOpts{formats: []string{pipeline.FormatPNG}, cellSize: pipeline.DefaultCellSize}

	err := runRender(context.Background(), input, &opts)
	if err == nil {
		t.Fatal("runRender() returned nil for an invalid layout")
	}
	if !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidLayout)
	}
}

func TestRunRenderWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "symbol.json")
	if err := os.WriteFile(input, []byte(`{"rows": ["10", "01"], "regions": 1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	opts := renderOpts{
		output:   filepath.Join(dir, "out.png"),
		formats:  []string{pipeline.FormatPNG, pipeline.FormatASCII},
		cellSize: 2,
	}

	if err := runRender(context.Background(), input, &opts); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}
	for _, name := range []string{"out.png", "out.txt"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("artifact %s not written: %v", name, err)
		}
	}
}
