package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"pitchdeck/internal/domain"
	"pitchdeck/internal/domain/models/deck"
	"pitchdeck/internal/domain/repositories"
)

// DeckRepository implements repositories.DeckRepository in process memory.
// State is lost on restart.
type DeckRepository struct {
	mu     sync.RWMutex
	decks  map[string]*deck.Deck
	logger *slog.Logger
}

// NewDeckRepository creates a new in-memory deck repository
func NewDeckRepository(config *RepositoryConfig) repositories.DeckRepository {
	return &DeckRepository{
		decks:  make(map[string]*deck.Deck),
		logger: config.Logger,
	}
}

// Create stores a copy of d
func (r *DeckRepository) Create(ctx context.Context, d *deck.Deck) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.decks[d.ID]; exists {
		return &domain.ConflictError{
			Message:      fmt.Sprintf("deck '%s' already exists", d.ID),
			ResourceType: "deck",
			ResourceID:   d.ID,
		}
	}

	r.decks[d.ID] = d.Clone()
	r.logger.Debug("deck stored", "deck_id", d.ID, "slide_count", len(d.Slides))
	return nil
}

// GetByID returns a copy of the deck
func (r *DeckRepository) GetByID(ctx context.Context, id string) (*deck.Deck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.decks[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("deck not found: %s", id)}
	}
	return d.Clone(), nil
}

// Update replaces the stored deck with a copy of d
func (r *DeckRepository) Update(ctx context.Context, d *deck.Deck) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.decks[d.ID]; !ok {
		return &domain.NotFoundError{Message: fmt.Sprintf("deck not found: %s", d.ID)}
	}

	r.decks[d.ID] = d.Clone()
	return nil
}

// List returns copies of all decks, oldest first
func (r *DeckRepository) List(ctx context.Context) ([]deck.Deck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]deck.Deck, 0, len(r.decks))
	for _, d := range r.decks {
		out = append(out, *d.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
