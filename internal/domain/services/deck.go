package services

import (
	"context"

	"pitchdeck/internal/domain/models/deck"
)

// DeckService holds the deck editing operations. Every mutating call targets
// the current deck of the given session and returns the whole deck afterwards.
type DeckService interface {
	// Generate builds a new nine-slide deck and makes it the session's current deck
	Generate(ctx context.Context, sessionID string, req *GenerateDeckRequest) (*deck.Deck, error)

	// UpdateSlide overwrites the non-empty provided fields of one slide
	UpdateSlide(ctx context.Context, sessionID string, req *UpdateSlideRequest) (*deck.Deck, error)

	// AddSlide inserts a slide at Position, or appends when Position is absent or invalid
	AddSlide(ctx context.Context, sessionID string, req *AddSlideRequest) (*deck.Deck, error)

	// RemoveSlide deletes one slide
	RemoveSlide(ctx context.Context, sessionID string, req *RemoveSlideRequest) (*deck.Deck, error)

	// ChangeTheme sets the deck theme
	ChangeTheme(ctx context.Context, sessionID string, req *ChangeThemeRequest) (*deck.Deck, error)

	// GetCurrent returns the session's current deck
	GetCurrent(ctx context.Context, sessionID string) (*deck.Deck, error)

	// GetDeck returns any deck by id, current or not
	GetDeck(ctx context.Context, id string) (*deck.Deck, error)

	// ListDecks returns every stored deck, oldest first, marking the session's current one
	ListDecks(ctx context.Context, sessionID string) ([]deck.Info, error)
}

// GenerateDeckRequest represents a deck generation request
type GenerateDeckRequest struct {
	CompanyName string  `json:"company_name"`
	Description string  `json:"description"`
	Industry    *string `json:"industry,omitempty"`   // default "technology"
	Stage       *string `json:"stage,omitempty"`      // default "Seed"
	AskAmount   *string `json:"ask_amount,omitempty"` // default "$2M"
	Traction    *string `json:"traction,omitempty"`   // default "Growing rapidly"
}

// UpdateSlideRequest represents a slide update. Fields that are unset or
// empty are left unchanged; there is no way to clear a field.
type UpdateSlideRequest struct {
	SlideIndex int
	Title      deck.Optional[string]
	Content    deck.Optional[string]
	Bullets    deck.Optional[[]string]
}

// AddSlideRequest represents a slide insertion
type AddSlideRequest struct {
	Title    string
	Content  string
	Kind     deck.Kind // empty means custom
	Position deck.Optional[int]
	Bullets  deck.Optional[[]string]
}

// RemoveSlideRequest represents a slide removal
type RemoveSlideRequest struct {
	SlideIndex int
}

// ChangeThemeRequest represents a theme change
type ChangeThemeRequest struct {
	Theme string
}
