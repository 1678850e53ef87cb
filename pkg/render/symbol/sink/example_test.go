package sink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/dmrender/pkg/grid"
	"github.com/matzehuels/dmrender/pkg/render/symbol"
	"github.com/matzehuels/dmrender/pkg/render/symbol/sink"
)

func ExampleRenderASCII() {
	g, err := grid.Parse([]string{
		"11",
		"01",
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Print(sink.RenderASCII(g))
	// Output:
	// XXXX
	//   XX
}

func ExampleParseASCII() {
	g, err := grid.Parse([]string{"1"})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	sym, err := symbol.Build(g, 1)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	// The text form reconstructs the exact grid.
	back, err := sink.ParseASCII(sink.RenderASCII(sym.Grid))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(back.Equal(sym.Grid))
	// Output:
	// true
}

func ExampleRenderDXF() {
	g, err := grid.Parse([]string{
		"10",
		"11",
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	data, err := sink.RenderDXF(g, 10, sink.WithUnits("mm"))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	// One SOLID entity per foreground cell.
	fmt.Println(strings.Count(string(data), "SOLID"))
	// Output:
	// 3
}
