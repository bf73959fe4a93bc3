// Package format turns standings and games into styled lines of fixed-width
// cells. It holds no terminal state; rendering lives in package render.
package format

type Style int

const (
	StylePlain Style = iota
	StyleHeader
	StylePlayoff
	StyleLottery
)

func (s Style) String() string {
	switch s {
	case StyleHeader:
		return "header"
	case StylePlayoff:
		return "playoff"
	case StyleLottery:
		return "lottery"
	default:
		return "plain"
	}
}

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Cell is padded to Width when Width is positive.
type Cell struct {
	Text  string
	Width int
	Align Align
}

type Line struct {
	Cells []Cell
	Style Style
}

// Notice is a single unstyled line of free text.
func Notice(s string) Line {
	return text(s)
}

func text(s string) Line {
	return Line{Cells: []Cell{{Text: s}}}
}

func left(s string, width int) Cell {
	return Cell{Text: s, Width: width, Align: AlignLeft}
}

func right(s string, width int) Cell {
	return Cell{Text: s, Width: width, Align: AlignRight}
}
