package session

import (
	"sync"

	"reversi/internal/board"
	"reversi/internal/core"
)

// Session owns one board. Moves are applied one at a time while queries
// may run concurrently.
type Session struct {
	id    string
	mu    sync.RWMutex
	board *board.Board
}

func newSession(id string, b *board.Board) *Session {
	return &Session{id: id, board: b}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Play applies a move, see board.Board.Play
func (s *Session) Play(row, column int, color core.Color) (board.Distribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Play(row, column, color)
}

// Load replaces the board contents, see board.Board.Load
func (s *Session) Load(positions [][]core.Cell) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Load(positions)
}

// IsLegalMove reports whether color may play at (row, column)
func (s *Session) IsLegalMove(row, column int, color core.Color) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.IsLegalMove(row, column, color)
}

// LegalMoves returns the legal moves for color in row-major order
func (s *Session) LegalMoves(color core.Color) []core.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.LegalMoves(color)
}

// HasAnyLegalMove reports whether color has a move
func (s *Session) HasAnyLegalMove(color core.Color) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.HasAnyLegalMove(color)
}

// CellAt returns the cell at (row, column)
func (s *Session) CellAt(row, column int) core.Cell {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.CellAt(row, column)
}

// Distribution returns the current cell counts
func (s *Session) Distribution() board.Distribution {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Distribution()
}

// Snapshot exports the board in its persisted form
func (s *Session) Snapshot() board.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Snapshot()
}

// Board returns a copy of the current board
func (s *Session) Board() *board.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Clone()
}
