// Package server exposes move generation over HTTP. Each client plays
// against its own session identified by a UUID.
package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
)

// Session is one in-progress game held in memory.
type Session struct {
	ID        string
	Game      *chess.Game
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Manager owns all live sessions. Safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create starts a new game from the initial position and returns its
// session.
func (m *Manager) Create() *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Game:      chess.NewGame(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session with the given id, or ErrGameNotFound.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "session %q", id)
	}
	return s, nil
}

// Play applies a move to the session's game. The move must be legal
// for the side to move; otherwise the game is left unchanged and the
// error from Apply is returned.
func (m *Manager) Play(id string, mv chess.Move) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "session %q", id)
	}

	legal := false
	for _, candidate := range s.Game.ListMoves() {
		if candidate == mv {
			legal = true
			break
		}
	}
	if !legal {
		return nil, errors.Wrapf(errors.ErrIllegalMove, "move %s", mv)
	}
	if err := s.Game.Apply(mv); err != nil {
		return nil, err
	}
	s.UpdatedAt = time.Now()
	return s, nil
}

// Delete removes a session. Deleting an unknown id is not an error.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
