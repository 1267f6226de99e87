package session

import (
	"errors"
	"sync"
	"testing"

	"reversi/internal/board"
	"reversi/internal/core"
)

func newRegistry(t *testing.T, maxSessions int) *Registry {
	t.Helper()
	cfg := DefaultConfig()
	cfg.MaxSessions = maxSessions
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRegistryLifecycle(t *testing.T) {
	r := newRegistry(t, 0)

	s, err := r.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.ID() == "" {
		t.Fatalf("session has no id")
	}

	got, err := r.Get(s.ID())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != s {
		t.Fatalf("Get returned a different session")
	}
	if got.Snapshot().Rows != board.DefaultRows {
		t.Fatalf("rows = %d, want %d", got.Snapshot().Rows, board.DefaultRows)
	}

	if err := r.Delete(s.ID()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.Get(s.ID()); !errors.Is(err, core.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if err := r.Delete(s.ID()); !errors.Is(err, core.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on second delete, got %v", err)
	}
}

func TestRegistryCreateWithDimensions(t *testing.T) {
	r := newRegistry(t, 0)

	s, err := r.CreateWithDimensions(6, 10)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	snap := s.Snapshot()
	if snap.Rows != 6 || snap.Columns != 10 {
		t.Fatalf("dimensions = %dx%d, want 6x10", snap.Rows, snap.Columns)
	}

	if _, err := r.CreateWithDimensions(5, 10); !errors.Is(err, core.ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistryLimit(t *testing.T) {
	r := newRegistry(t, 2)

	for i := 0; i < 2; i++ {
		if _, err := r.Create(); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	if _, err := r.Create(); !errors.Is(err, core.ErrSessionLimit) {
		t.Fatalf("expected ErrSessionLimit, got %v", err)
	}
}

func TestRegistryRestore(t *testing.T) {
	r := newRegistry(t, 0)

	b := board.NewDefault()
	if _, err := b.Play(2, 3, core.ColorBlack); err != nil {
		t.Fatalf("play: %v", err)
	}

	s, err := r.Restore(b.Snapshot())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got := s.Board().Layout(); got != b.Layout() {
		t.Fatalf("restored layout = %s, want %s", got, b.Layout())
	}

	bad := b.Snapshot()
	bad.Cells = bad.Cells[1:]
	if _, err := r.Restore(bad); !errors.Is(err, core.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}

	huge := board.Snapshot{Rows: 1 << 31, Columns: 1 << 31, Cells: []string{}}
	if _, err := r.Restore(huge); !errors.Is(err, core.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch for oversized snapshot, got %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after failed restores", r.Len())
	}
}

func TestSessionPlay(t *testing.T) {
	r := newRegistry(t, 0)
	s, err := r.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if !s.HasAnyLegalMove(core.ColorBlack) {
		t.Fatalf("black has no opening move")
	}
	if !s.IsLegalMove(2, 3, core.ColorBlack) {
		t.Fatalf("(2, 3) should be legal for black")
	}

	d, err := s.Play(2, 3, core.ColorBlack)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if d != s.Distribution() {
		t.Fatalf("play result %+v differs from distribution %+v", d, s.Distribution())
	}
	if got := s.CellAt(3, 3); got != core.CellBlack {
		t.Fatalf("CellAt(3, 3) = %s, want black", got)
	}

	if _, err := s.Play(2, 3, core.ColorWhite); !errors.Is(err, core.ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}

	// Board returns a copy
	if err := s.Board().Load(board.NewDefault().Cells()); err != nil {
		t.Fatalf("load into copy: %v", err)
	}
	if got := s.CellAt(3, 3); got != core.CellBlack {
		t.Fatalf("session changed through copied board")
	}

	if err := s.Load(board.NewDefault().Cells()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := s.Board().Layout(); got != board.StartingLayout {
		t.Fatalf("layout after load = %s", got)
	}
}

func TestSessionConcurrentPlay(t *testing.T) {
	r := newRegistry(t, 0)
	s, err := r.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	moves := s.LegalMoves(core.ColorBlack)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for _, m := range moves {
		wg.Add(2)
		go func(p core.Position) {
			defer wg.Done()
			if _, err := s.Play(p.Row, p.Column, core.ColorBlack); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}(m)
		go func() {
			defer wg.Done()
			s.LegalMoves(core.ColorWhite)
			s.Distribution()
		}()
	}
	wg.Wait()

	if successes == 0 {
		t.Fatalf("no concurrent play succeeded")
	}
	d := s.Distribution()
	if d.Total() != 64 {
		t.Fatalf("total = %d, want 64", d.Total())
	}
	if d.Empty != 60-successes {
		t.Fatalf("empty = %d, want %d after %d moves", d.Empty, 60-successes, successes)
	}
}
