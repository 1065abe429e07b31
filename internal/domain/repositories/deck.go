package repositories

import (
	"context"

	"pitchdeck/internal/domain/models/deck"
)

// DeckRepository defines data access operations for decks.
// Implementations store and return copies; callers never share state with the store.
type DeckRepository interface {
	// Create stores a new deck. Returns domain.ErrConflict if the id is taken.
	Create(ctx context.Context, d *deck.Deck) error

	// GetByID retrieves a deck by ID. Returns domain.ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*deck.Deck, error)

	// Update replaces an existing deck. Returns domain.ErrNotFound if absent.
	Update(ctx context.Context, d *deck.Deck) error

	// List returns all decks ordered by creation time.
	List(ctx context.Context) ([]deck.Deck, error)
}

// SessionRepository tracks which deck is current for each session.
type SessionRepository interface {
	// Get returns the session. An unknown id yields an empty session without storing it.
	Get(ctx context.Context, sessionID string) (*deck.Session, error)

	// SetCurrent points the session at deckID.
	SetCurrent(ctx context.Context, sessionID, deckID string) error
}
