package grid

import "fmt"

// Cell is the value of one matrix position. Only the two named values are
// valid; constructors and setters reject anything else so encoders can map
// cells exhaustively without re-checking.
type Cell uint8

const (
	// White is the background value.
	White Cell = 0
	// Black is the foreground value.
	Black Cell = 1
)

// String returns a human-readable name for the cell value.
func (c Cell) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

func (c Cell) valid() bool {
	return c == White || c == Black
}
