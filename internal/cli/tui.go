package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/dmrender/pkg/grid"
	"github.com/matzehuels/dmrender/pkg/render/symbol"
)

var (
	previewBodyStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim)
	previewDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// previewModel is the bubbletea model for the interactive symbol viewer.
// The symbol is immutable; the model only tracks view state.
type previewModel struct {
	input   string
	regions int
	sym     *symbol.Symbol
	inverse bool
}

// newPreviewModel creates a viewer for a finished symbol.
func newPreviewModel(input string, regions int, sym *symbol.Symbol) previewModel {
	return previewModel{
		input:   input,
		regions: regions,
		sym:     sym,
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "i":
			m.inverse = !m.inverse
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Symbol Preview"))
	b.WriteString("  ")
	b.WriteString(previewDimStyle.Render(m.input))
	b.WriteString("\n")
	b.WriteString(previewDimStyle.Render("i toggle inverse  q quit"))
	b.WriteString("\n\n")

	b.WriteString(previewBodyStyle.Render(m.body()))
	b.WriteString("\n\n")
	b.WriteString(m.metadata())
	b.WriteString("\n")

	return b.String()
}

// body renders the symbol grid as two characters per cell, honouring the
// inverse toggle.
func (m previewModel) body() string {
	g := m.sym.Grid
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width(); x++ {
			if (g.Get(x, y) == grid.Black) != m.inverse {
				b.WriteString("XX")
			} else {
				b.WriteString("  ")
			}
		}
	}
	return b.String()
}

// metadata renders the symbol geometry as a small table.
func (m previewModel) metadata() string {
	l := m.sym.Layout

	view := "normal"
	if m.inverse {
		view = "inverse"
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(
			[]string{"Symbol", fmt.Sprintf("%d x %d cells", m.sym.Width(), m.sym.Height())},
			[]string{"Regions", fmt.Sprintf("%d x %d", m.regions, m.regions)},
			[]string{"Region size", fmt.Sprintf("%d cells", l.RegionSize)},
			[]string{"Quiet zone", fmt.Sprintf("%d cells", l.QuietZone)},
			[]string{"Foreground", fmt.Sprintf("%d cells", m.sym.Grid.Count(grid.Black))},
			[]string{"View", view},
		).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		})

	return t.Render()
}
