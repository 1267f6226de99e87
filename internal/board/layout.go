package board

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"reversi/internal/core"
)

// Layout rows are separated by '/', cells are '.', 'b' or 'w'.
const StartingLayout = "......../......../......../...wb.../...bw.../......../......../........"

// Snapshot is the persisted form of a board. Cells holds one layout row per
// grid row.
type Snapshot struct {
	Rows    int      `json:"rows"`
	Columns int      `json:"columns"`
	Cells   []string `json:"cells"`
}

func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Rows:    b.rows,
		Columns: b.columns,
		Cells:   b.layoutRows(),
	}
}

// FromSnapshot rebuilds a board. The cells must match the declared
// dimensions exactly, and those are validated as in New.
func FromSnapshot(s Snapshot) (*Board, error) {
	if len(s.Cells) != s.Rows {
		return nil, fmt.Errorf("%w: %d rows given, %d expected", core.ErrDimensionMismatch, len(s.Cells), s.Rows)
	}
	for r, row := range s.Cells {
		if n := utf8.RuneCountInString(row); n != s.Columns {
			return nil, fmt.Errorf("%w: row %d has %d columns, %d expected", core.ErrDimensionMismatch, r, n, s.Columns)
		}
	}

	b, err := New(s.Rows, s.Columns)
	if err != nil {
		return nil, err
	}

	positions, err := parseRows(s.Cells)
	if err != nil {
		return nil, err
	}
	if err := b.Load(positions); err != nil {
		return nil, err
	}
	return b, nil
}

// Layout encodes the grid in the layout text format
func (b *Board) Layout() string {
	return strings.Join(b.layoutRows(), "/")
}

func (b *Board) String() string {
	return b.Layout()
}

// ParseLayout builds a board from layout text, taking its dimensions from
// the text itself
func ParseLayout(layout string) (*Board, error) {
	rows := strings.Split(layout, "/")
	columns := utf8.RuneCountInString(rows[0])

	for r, row := range rows {
		if n := utf8.RuneCountInString(row); n != columns {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", core.ErrInvalidLayout, r, n, columns)
		}
	}

	b, err := New(len(rows), columns)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidLayout, err)
	}

	positions, err := parseRows(rows)
	if err != nil {
		return nil, err
	}
	if err := b.Load(positions); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) layoutRows() []string {
	rows := make([]string, b.rows)
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		sb.Reset()
		for c := 0; c < b.columns; c++ {
			sb.WriteRune(b.cells[r*b.columns+c].Rune())
		}
		rows[r] = sb.String()
	}
	return rows
}

func parseRows(rows []string) ([][]core.Cell, error) {
	positions := make([][]core.Cell, len(rows))
	for r, row := range rows {
		cells := make([]core.Cell, 0, len(row))
		for _, ch := range row {
			cell, ok := core.CellFromRune(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unexpected %q in row %d", core.ErrInvalidLayout, ch, r)
			}
			cells = append(cells, cell)
		}
		positions[r] = cells
	}
	return positions, nil
}
