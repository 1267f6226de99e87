package core

import "fmt"

type Color byte

const (
	ColorBlack Color = iota + 1
	ColorWhite
)

func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "b"
	case ColorWhite:
		return "w"
	default:
		return "-"
	}
}

func (c Color) Valid() bool {
	return c == ColorBlack || c == ColorWhite
}

// Opposite returns the opposing color. Invalid colors map to themselves.
func (c Color) Opposite() Color {
	switch c {
	case ColorBlack:
		return ColorWhite
	case ColorWhite:
		return ColorBlack
	default:
		return c
	}
}

// Cell returns the cell value holding a disc of this color
func (c Color) Cell() Cell {
	switch c {
	case ColorBlack:
		return CellBlack
	case ColorWhite:
		return CellWhite
	default:
		return CellOutside
	}
}

// Cell is the content of one grid position. CellOutside is never stored,
// it is what lookups return for coordinates off the board.
type Cell byte

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
	CellOutside
)

// Valid reports whether c can be stored on a board
func (c Cell) Valid() bool {
	return c == CellEmpty || c == CellBlack || c == CellWhite
}

// Holds reports whether the cell carries a disc of the given color
func (c Cell) Holds(color Color) bool {
	return color.Valid() && c == color.Cell()
}

func (c Cell) Rune() rune {
	switch c {
	case CellEmpty:
		return '.'
	case CellBlack:
		return 'b'
	case CellWhite:
		return 'w'
	default:
		return '?'
	}
}

func CellFromRune(r rune) (Cell, bool) {
	switch r {
	case '.':
		return CellEmpty, true
	case 'b':
		return CellBlack, true
	case 'w':
		return CellWhite, true
	default:
		return CellOutside, false
	}
}

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellBlack:
		return "black"
	case CellWhite:
		return "white"
	case CellOutside:
		return "outside"
	default:
		return "unknown"
	}
}

// Position is a zero-indexed (row, column) pair
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}
