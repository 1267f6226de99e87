package board

import (
	"fmt"

	"reversi/internal/core"
)

type direction struct {
	row, column int
}

// directions holds the eight unit offsets, scanned in this order
var directions = [8]direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// run returns how many opposing discs lie between (row, column) and the first
// disc of color along d. It is 0 when the line ends on an empty cell or the
// board edge instead.
func (b *Board) run(row, column int, d direction, color core.Color) int {
	opponent := color.Opposite()
	r, c := row+d.row, column+d.column
	n := 0
	for b.CellAt(r, c).Holds(opponent) {
		r += d.row
		c += d.column
		n++
	}
	if n > 0 && b.CellAt(r, c).Holds(color) {
		return n
	}
	return 0
}

func (b *Board) canPlace(row, column int, color core.Color) bool {
	return color.Valid() && b.CellAt(row, column) == core.CellEmpty
}

// IsLegalMove reports whether color may place a disc at (row, column)
func (b *Board) IsLegalMove(row, column int, color core.Color) bool {
	if !b.canPlace(row, column, color) {
		return false
	}
	for _, d := range directions {
		if b.run(row, column, d, color) > 0 {
			return true
		}
	}
	return false
}

// Captures lists the discs a move at (row, column) would flip, direction by
// direction. It is empty when the move is illegal.
func (b *Board) Captures(row, column int, color core.Color) []core.Position {
	if !b.canPlace(row, column, color) {
		return nil
	}
	var captured []core.Position
	for _, d := range directions {
		n := b.run(row, column, d, color)
		for i := 1; i <= n; i++ {
			captured = append(captured, core.Position{Row: row + i*d.row, Column: column + i*d.column})
		}
	}
	return captured
}

// LegalMoves returns every legal move for color in row-major order
func (b *Board) LegalMoves(color core.Color) []core.Position {
	moves := []core.Position{}
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.columns; c++ {
			if b.IsLegalMove(r, c, color) {
				moves = append(moves, core.Position{Row: r, Column: c})
			}
		}
	}
	return moves
}

// HasAnyLegalMove reports whether color has at least one legal move
func (b *Board) HasAnyLegalMove(color core.Color) bool {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.columns; c++ {
			if b.IsLegalMove(r, c, color) {
				return true
			}
		}
	}
	return false
}

// Play places a disc for color and flips every captured line.
// An illegal move returns core.ErrIllegalMove and leaves the board untouched.
func (b *Board) Play(row, column int, color core.Color) (Distribution, error) {
	captured := b.Captures(row, column, color)
	if len(captured) == 0 {
		return Distribution{}, fmt.Errorf("%w: %s cannot play at (%d, %d)", core.ErrIllegalMove, color, row, column)
	}

	disc := color.Cell()
	b.set(row, column, disc)
	for _, p := range captured {
		b.set(p.Row, p.Column, disc)
	}

	return b.Distribution(), nil
}

// PlaceDisk is Play without the score
func (b *Board) PlaceDisk(row, column int, color core.Color) error {
	_, err := b.Play(row, column, color)
	return err
}
