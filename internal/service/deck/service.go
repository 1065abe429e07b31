package deck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"pitchdeck/internal/config"
	"pitchdeck/internal/domain"
	models "pitchdeck/internal/domain/models/deck"
	"pitchdeck/internal/domain/repositories"
	"pitchdeck/internal/domain/services"
)

// deckService implements the DeckService interface.
// mu serializes every operation: one read-validate-mutate-store transition at a time.
type deckService struct {
	mu          sync.Mutex
	deckRepo    repositories.DeckRepository
	sessionRepo repositories.SessionRepository
	generator   *Generator
	newID       func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewDeckService creates a new deck service
func NewDeckService(
	deckRepo repositories.DeckRepository,
	sessionRepo repositories.SessionRepository,
	generator *Generator,
	logger *slog.Logger,
) services.DeckService {
	return newDeckService(deckRepo, sessionRepo, generator, logger)
}

func newDeckService(
	deckRepo repositories.DeckRepository,
	sessionRepo repositories.SessionRepository,
	generator *Generator,
	logger *slog.Logger,
) *deckService {
	return &deckService{
		deckRepo:    deckRepo,
		sessionRepo: sessionRepo,
		generator:   generator,
		newID:       shortID,
		now:         time.Now,
		logger:      logger,
	}
}

// shortID returns the first eight hex characters of a random UUID
func shortID() string {
	return uuid.New().String()[:8]
}

// Generate creates a new deck from the canonical template and makes it current
func (s *deckService) Generate(ctx context.Context, sessionID string, req *services.GenerateDeckRequest) (*models.Deck, error) {
	sessionID = normalizeSessionID(sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()

	params := ParamsFromRequest(req.CompanyName, req.Description, req.Industry, req.Stage, req.AskAmount, req.Traction)
	slides, err := s.generator.Build(params, s.newID)
	if err != nil {
		return nil, fmt.Errorf("build deck: %w", err)
	}

	now := s.now()
	d := &models.Deck{
		CompanyName: req.CompanyName,
		Tagline:     req.Description,
		Theme:       models.DefaultTheme,
		Slides:      slides,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Deck ids are short; retry on the rare collision
	for attempt := 1; ; attempt++ {
		d.ID = s.newID()
		err = s.deckRepo.Create(ctx, d)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrConflict) || attempt >= config.MaxIDAttempts {
			return nil, fmt.Errorf("store deck: %w", err)
		}
		s.logger.Warn("deck id collision, retrying", "deck_id", d.ID, "attempt", attempt)
	}

	if err := s.sessionRepo.SetCurrent(ctx, sessionID, d.ID); err != nil {
		return nil, fmt.Errorf("set current deck: %w", err)
	}

	s.logger.Info("deck generated",
		"deck_id", d.ID,
		"session_id", sessionID,
		"company", d.CompanyName,
		"industry", params.Industry,
		"stage", params.Stage,
		"slide_count", len(d.Slides),
	)

	return d.Clone(), nil
}

// UpdateSlide overwrites the provided non-empty fields of one slide
func (s *deckService) UpdateSlide(ctx context.Context, sessionID string, req *services.UpdateSlideRequest) (*models.Deck, error) {
	sessionID = normalizeSessionID(sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.currentDeck(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := validateIndex(req.SlideIndex, len(d.Slides)); err != nil {
		return nil, err
	}

	// Empty values count as "not provided"
	slide := &d.Slides[req.SlideIndex]
	var changed []string
	if title, ok := req.Title.Get(); ok && title != "" {
		slide.Title = title
		changed = append(changed, "title")
	}
	if content, ok := req.Content.Get(); ok && content != "" {
		slide.Content = content
		changed = append(changed, "content")
	}
	if bullets, ok := req.Bullets.Get(); ok && len(bullets) > 0 {
		slide.Bullets = append([]string(nil), bullets...)
		changed = append(changed, "bullets")
	}

	if len(changed) == 0 {
		s.logger.Debug("slide update had no effect", "deck_id", d.ID, "slide_index", req.SlideIndex)
		return d, nil
	}

	if err := s.save(ctx, d); err != nil {
		return nil, err
	}

	s.logger.Info("slide updated",
		"deck_id", d.ID,
		"session_id", sessionID,
		"slide_index", req.SlideIndex,
		"slide_id", slide.ID,
		"fields", changed,
	)

	return d, nil
}

// AddSlide inserts a new slide at Position, appending when Position is absent or out of range
func (s *deckService) AddSlide(ctx context.Context, sessionID string, req *services.AddSlideRequest) (*models.Deck, error) {
	sessionID = normalizeSessionID(sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.currentDeck(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	kind := req.Kind
	if kind == "" {
		kind = models.KindCustom
	}

	slide := models.Slide{
		ID:      s.newSlideID(d),
		Kind:    kind,
		Title:   req.Title,
		Content: req.Content,
	}
	if bullets, ok := req.Bullets.Get(); ok && len(bullets) > 0 {
		slide.Bullets = append([]string(nil), bullets...)
	}

	position := -1
	if p, ok := req.Position.Get(); ok {
		position = p
	}
	index := d.InsertSlide(position, slide)

	if err := s.save(ctx, d); err != nil {
		return nil, err
	}

	s.logger.Info("slide added",
		"deck_id", d.ID,
		"session_id", sessionID,
		"slide_id", slide.ID,
		"kind", kind,
		"slide_index", index,
		"position_given", req.Position.Set,
		"slide_count", len(d.Slides),
	)

	return d, nil
}

// RemoveSlide deletes the slide at SlideIndex
func (s *deckService) RemoveSlide(ctx context.Context, sessionID string, req *services.RemoveSlideRequest) (*models.Deck, error) {
	sessionID = normalizeSessionID(sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.currentDeck(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := validateIndex(req.SlideIndex, len(d.Slides)); err != nil {
		return nil, err
	}

	removed := d.RemoveSlide(req.SlideIndex)

	if err := s.save(ctx, d); err != nil {
		return nil, err
	}

	s.logger.Info("slide removed",
		"deck_id", d.ID,
		"session_id", sessionID,
		"slide_index", req.SlideIndex,
		"slide_id", removed.ID,
		"slide_count", len(d.Slides),
	)

	return d, nil
}

// ChangeTheme sets the theme of the current deck
func (s *deckService) ChangeTheme(ctx context.Context, sessionID string, req *services.ChangeThemeRequest) (*models.Deck, error) {
	sessionID = normalizeSessionID(sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.currentDeck(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	theme, err := validateTheme(req.Theme)
	if err != nil {
		return nil, err
	}

	if d.Theme == theme {
		return d, nil
	}

	previous := d.Theme
	d.Theme = theme
	if err := s.save(ctx, d); err != nil {
		return nil, err
	}

	s.logger.Info("theme changed",
		"deck_id", d.ID,
		"session_id", sessionID,
		"from", previous,
		"theme", theme,
	)

	return d, nil
}

// GetCurrent returns the session's current deck
func (s *deckService) GetCurrent(ctx context.Context, sessionID string) (*models.Deck, error) {
	sessionID = normalizeSessionID(sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currentDeck(ctx, sessionID)
}

// GetDeck returns any stored deck by id
func (s *deckService) GetDeck(ctx context.Context, id string) (*models.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deckRepo.GetByID(ctx, id)
}

// ListDecks returns every stored deck, oldest first
func (s *deckService) ListDecks(ctx context.Context, sessionID string) ([]models.Info, error) {
	sessionID = normalizeSessionID(sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	decks, err := s.deckRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	infos := make([]models.Info, 0, len(decks))
	for i := range decks {
		info := decks[i].Info()
		info.Current = decks[i].ID == session.CurrentDeckID
		infos = append(infos, info)
	}
	return infos, nil
}

// currentDeck loads the session's current deck. Must be called with s.mu held.
func (s *deckService) currentDeck(ctx context.Context, sessionID string) (*models.Deck, error) {
	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if !session.HasCurrent() {
		return nil, domain.NewNoCurrentDeckError()
	}

	d, err := s.deckRepo.GetByID(ctx, session.CurrentDeckID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("current deck missing from store", "session_id", sessionID, "deck_id", session.CurrentDeckID)
			return nil, domain.NewNoCurrentDeckError()
		}
		return nil, fmt.Errorf("get current deck: %w", err)
	}
	return d, nil
}

// save stamps and stores d. Must be called with s.mu held.
func (s *deckService) save(ctx context.Context, d *models.Deck) error {
	d.UpdatedAt = s.now()
	if err := s.deckRepo.Update(ctx, d); err != nil {
		return fmt.Errorf("update deck: %w", err)
	}
	return nil
}

// newSlideID returns an id not yet used by any slide of d
func (s *deckService) newSlideID(d *models.Deck) string {
	id := s.newID()
	for d.HasSlideID(id) {
		id = s.newID()
	}
	return id
}

func normalizeSessionID(sessionID string) string {
	if sessionID == "" {
		return models.DefaultSessionID
	}
	return sessionID
}
