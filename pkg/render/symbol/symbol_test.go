package symbol

import (
	"testing"

	"github.com/matzehuels/dmrender/pkg/errors"
	"github.com/matzehuels/dmrender/pkg/grid"
)

func TestBuild(t *testing.T) {
	g, err := grid.New(10, 10)
	if err != nil {
		t.Fatalf("grid.New() error: %v", err)
	}

	sym, err := Build(g, 2)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if sym.Width() != 14 || sym.Height() != 14 {
		t.Errorf("symbol dimensions = %dx%d, want 14x14", sym.Width(), sym.Height())
	}
	if sym.Layout.Regions != 2 || sym.Layout.RegionSize != 5 {
		t.Errorf("layout = %+v, want Regions 2, RegionSize 5", sym.Layout)
	}

	want, err := grid.Parse(borderedHandlePattern)
	if err != nil {
		t.Fatalf("grid.Parse() error: %v", err)
	}
	if !sym.Grid.Equal(want) {
		t.Errorf("symbol grid mismatch:\ngot:\n%s\nwant:\n%s", sym.Grid, want)
	}
}

func TestBuildDimensionFormula(t *testing.T) {
	tests := []struct {
		size      int
		regions   int
		quietZone int
		want      int
	}{
		{10, 2, 0, 14},
		{10, 1, 0, 12},
		{12, 3, 0, 18},
		{16, 4, 0, 24},
		{10, 2, 1, 16},
		{8, 2, 4, 20},
	}

	for _, tt := range tests {
		g, err := grid.New(tt.size, tt.size)
		if err != nil {
			t.Fatalf("grid.New() error: %v", err)
		}
		sym, err := Build(g, tt.regions, WithQuietZone(tt.quietZone))
		if err != nil {
			t.Fatalf("Build(%d, %d) error: %v", tt.size, tt.regions, err)
		}
		if sym.Width() != tt.want || sym.Height() != tt.want {
			t.Errorf("Build(%d, %d, quiet %d) dimensions = %dx%d, want %dx%d",
				tt.size, tt.regions, tt.quietZone, sym.Width(), sym.Height(), tt.want, tt.want)
		}
	}
}

func TestBuildInvalid(t *testing.T) {
	square, err := grid.New(10, 10)
	if err != nil {
		t.Fatalf("grid.New() error: %v", err)
	}
	rect, err := grid.New(10, 8)
	if err != nil {
		t.Fatalf("grid.New() error: %v", err)
	}

	tests := []struct {
		name    string
		grid    *grid.Grid
		regions int
		opts    []Option
		code    errors.Code
	}{
		{"nil grid", nil, 1, nil, errors.ErrCodeInvalidLayout},
		{"zero regions", square, 0, nil, errors.ErrCodeInvalidLayout},
		{"negative regions", square, -2, nil, errors.ErrCodeInvalidLayout},
		{"non-divisible regions", square, 3, nil, errors.ErrCodeInvalidLayout},
		{"non-square matrix", rect, 2, nil, errors.ErrCodeInvalidLayout},
		{"negative quiet zone", square, 2, []Option{WithQuietZone(-1)}, errors.ErrCodeInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.grid, tt.regions, tt.opts...)
			if err == nil {
				t.Fatal("Build() expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestBuildDoesNotModifyInput(t *testing.T) {
	g, err := grid.Parse([]string{
		"10",
		"01",
	})
	if err != nil {
		t.Fatalf("grid.Parse() error: %v", err)
	}
	before := g.Clone()

	if _, err := Build(g, 1); err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if !g.Equal(before) {
		t.Error("Build modified the input matrix")
	}
}

func TestBuildDeterministic(t *testing.T) {
	g, err := grid.Parse([]string{
		"1010",
		"0101",
		"1010",
		"0101",
	})
	if err != nil {
		t.Fatalf("grid.Parse() error: %v", err)
	}

	a, err := Build(g, 2)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	b, err := Build(g, 2)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if !a.Grid.Equal(b.Grid) {
		t.Error("two builds of the same matrix differ")
	}
}
