package session

import (
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"reversi/internal/board"
	"reversi/internal/core"
)

// Registry holds the live sessions keyed by id
type Registry struct {
	cfg      Config
	sessions map[string]*Session
	mu       sync.RWMutex
}

// New creates an empty registry after validating cfg
func New(cfg Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Registry{
		cfg:      cfg,
		sessions: make(map[string]*Session),
	}, nil
}

// Create starts a session on a new board with the configured dimensions
func (r *Registry) Create() (*Session, error) {
	return r.CreateWithDimensions(r.cfg.Rows, r.cfg.Columns)
}

// CreateWithDimensions starts a session on a new rows x columns board
func (r *Registry) CreateWithDimensions(rows, columns int) (*Session, error) {
	b, err := board.New(rows, columns)
	if err != nil {
		return nil, err
	}
	return r.add(b)
}

// Restore starts a session from a saved snapshot
func (r *Registry) Restore(snapshot board.Snapshot) (*Session, error) {
	b, err := board.FromSnapshot(snapshot)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	return r.add(b)
}

// Get retrieves a session by ID
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrSessionNotFound, id)
	}
	return s, nil
}

// Delete removes a session from the registry
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", core.ErrSessionNotFound, id)
	}
	delete(r.sessions, id)
	log.Printf("session %s deleted", id)
	return nil
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Close drops all sessions
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n := len(r.sessions); n > 0 {
		log.Printf("closing registry with %d sessions", n)
	}
	r.sessions = make(map[string]*Session)
	return nil
}

func (r *Registry) add(b *board.Board) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg.MaxSessions > 0 && len(r.sessions) >= r.cfg.MaxSessions {
		return nil, fmt.Errorf("%w: %d active", core.ErrSessionLimit, len(r.sessions))
	}

	// Regenerate on the unlikely uuid collision
	id := uuid.New().String()
	for {
		if _, exists := r.sessions[id]; !exists {
			break
		}
		id = uuid.New().String()
	}

	s := newSession(id, b)
	r.sessions[id] = s
	log.Printf("session %s created (%s)", id, b.Dimensions())
	return s, nil
}
