package board

import (
	"fmt"

	"reversi/internal/core"
)

const (
	DefaultRows    = 8
	DefaultColumns = 8
)

// Board is a fixed-size Reversi grid. It does not track whose turn it is.
// Mutations are not synchronized; see the session package for shared use.
type Board struct {
	rows    int
	columns int
	cells   []core.Cell // row-major
}

// New creates a board with the four starting discs in the center
func New(rows, columns int) (*Board, error) {
	dims := Dimensions{Rows: rows, Columns: columns}
	if err := dims.Validate(); err != nil {
		return nil, err
	}

	b := &Board{
		rows:    rows,
		columns: columns,
		cells:   make([]core.Cell, rows*columns),
	}

	cr, cc := rows/2, columns/2
	b.set(cr-1, cc-1, core.CellWhite)
	b.set(cr, cc, core.CellWhite)
	b.set(cr-1, cc, core.CellBlack)
	b.set(cr, cc-1, core.CellBlack)

	return b, nil
}

// NewDefault creates a standard 8x8 board
func NewDefault() *Board {
	b, err := New(DefaultRows, DefaultColumns)
	if err != nil {
		panic(fmt.Sprintf("default board dimensions rejected: %v", err))
	}
	return b
}

// Rows returns the number of rows
func (b *Board) Rows() int {
	return b.rows
}

// Columns returns the number of columns
func (b *Board) Columns() int {
	return b.columns
}

// Dimensions returns the board size
func (b *Board) Dimensions() Dimensions {
	return Dimensions{Rows: b.rows, Columns: b.columns}
}

// Load replaces the board contents with positions. The shape must match the
// board and every value must be storable, otherwise the board is unchanged.
// Game legality of the position is not checked.
func (b *Board) Load(positions [][]core.Cell) error {
	if len(positions) != b.rows {
		return fmt.Errorf("%w: %d rows given, %d expected", core.ErrDimensionMismatch, len(positions), b.rows)
	}
	for r, row := range positions {
		if len(row) != b.columns {
			return fmt.Errorf("%w: row %d has %d columns, %d expected", core.ErrDimensionMismatch, r, len(row), b.columns)
		}
		for c, cell := range row {
			if !cell.Valid() {
				return fmt.Errorf("%w: %s at (%d, %d)", core.ErrInvalidCell, cell, r, c)
			}
		}
	}

	for r, row := range positions {
		copy(b.cells[r*b.columns:(r+1)*b.columns], row)
	}
	return nil
}

// CellAt returns the cell at (row, column), or core.CellOutside when the
// coordinates are off the board
func (b *Board) CellAt(row, column int) core.Cell {
	if !b.inBounds(row, column) {
		return core.CellOutside
	}
	return b.cells[row*b.columns+column]
}

// Cells exports a row-major copy of the grid
func (b *Board) Cells() [][]core.Cell {
	out := make([][]core.Cell, b.rows)
	for r := range out {
		row := make([]core.Cell, b.columns)
		copy(row, b.cells[r*b.columns:(r+1)*b.columns])
		out[r] = row
	}
	return out
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	cells := make([]core.Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		rows:    b.rows,
		columns: b.columns,
		cells:   cells,
	}
}

func (b *Board) inBounds(row, column int) bool {
	return row >= 0 && row < b.rows && column >= 0 && column < b.columns
}

func (b *Board) set(row, column int, cell core.Cell) {
	b.cells[row*b.columns+column] = cell
}
