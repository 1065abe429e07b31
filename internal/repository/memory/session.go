package memory

import (
	"context"
	"log/slog"
	"sync"

	"pitchdeck/internal/domain/models/deck"
	"pitchdeck/internal/domain/repositories"
)

// SessionRepository implements repositories.SessionRepository in process memory
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*deck.Session
	logger   *slog.Logger
}

// NewSessionRepository creates a new in-memory session repository
func NewSessionRepository(config *RepositoryConfig) repositories.SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*deck.Session),
		logger:   config.Logger,
	}
}

// Get returns a copy of the session. Unknown ids yield an empty session
// that is not stored; only SetCurrent creates sessions.
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*deck.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return &deck.Session{ID: sessionID}, nil
	}
	out := *s
	return &out, nil
}

// SetCurrent points the session at deckID
func (r *SessionRepository) SetCurrent(ctx context.Context, sessionID, deckID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		s = &deck.Session{ID: sessionID}
		r.sessions[sessionID] = s
		r.logger.Debug("session created", "session_id", sessionID)
	}
	s.CurrentDeckID = deckID
	return nil
}

// Len is the number of stored sessions
func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
