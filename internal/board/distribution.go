package board

import "reversi/internal/core"

// Distribution counts cells per value. It doubles as the score.
type Distribution struct {
	Empty int `json:"empty"`
	Black int `json:"black"`
	White int `json:"white"`
}

func (d Distribution) Total() int {
	return d.Empty + d.Black + d.White
}

// Full reports whether no empty cell remains
func (d Distribution) Full() bool {
	return d.Empty == 0
}

func (d Distribution) Count(color core.Color) int {
	switch color {
	case core.ColorBlack:
		return d.Black
	case core.ColorWhite:
		return d.White
	default:
		return 0
	}
}

// Leader returns the color with more discs; ok is false on a tie
func (d Distribution) Leader() (color core.Color, ok bool) {
	switch {
	case d.Black > d.White:
		return core.ColorBlack, true
	case d.White > d.Black:
		return core.ColorWhite, true
	default:
		return 0, false
	}
}

func (b *Board) Distribution() Distribution {
	var d Distribution
	for _, cell := range b.cells {
		switch cell {
		case core.CellEmpty:
			d.Empty++
		case core.CellBlack:
			d.Black++
		case core.CellWhite:
			d.White++
		}
	}
	return d
}
