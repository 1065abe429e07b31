package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"pitchdeck/internal/domain"
	models "pitchdeck/internal/domain/models/deck"
	"pitchdeck/internal/domain/services"
	"pitchdeck/internal/httputil"
	"pitchdeck/internal/service/render"
)

// DeckHandler serves stored decks as pages, text and JSON
type DeckHandler struct {
	deckService services.DeckService
	presenter   *render.Presenter
	logger      *slog.Logger
}

// NewDeckHandler creates a new deck handler
func NewDeckHandler(deckService services.DeckService, presenter *render.Presenter, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{
		deckService: deckService,
		presenter:   presenter,
		logger:      logger,
	}
}

// RegisterRoutes mounts the deck routes on mux
func (h *DeckHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /deck", h.ViewCurrent)
	mux.HandleFunc("GET /deck/{id}", h.ViewDeck)
	mux.HandleFunc("GET /deck/{id}/summary", h.DeckSummary)
	mux.HandleFunc("GET /api/decks", h.ListDecks)
	mux.HandleFunc("GET /api/decks/current", h.GetCurrentDeck)
	mux.HandleFunc("GET /api/decks/{id}", h.GetDeck)
}

// Health reports liveness
// GET /health
func (h *DeckHandler) Health(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ViewCurrent renders the session's current deck as an interactive page
// GET /deck?session=
func (h *DeckHandler) ViewCurrent(w http.ResponseWriter, r *http.Request) {
	d, err := h.deckService.GetCurrent(r.Context(), httputil.GetSessionID(r))
	if err != nil {
		h.respondPageError(w, "", err)
		return
	}
	h.respondPage(w, d)
}

// ViewDeck renders a stored deck as an interactive page
// GET /deck/{id}
func (h *DeckHandler) ViewDeck(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	d, err := h.deckService.GetDeck(r.Context(), id)
	if err != nil {
		h.respondPageError(w, id, err)
		return
	}
	h.respondPage(w, d)
}

// DeckSummary returns the plain-text report of a stored deck
// GET /deck/{id}/summary
func (h *DeckHandler) DeckSummary(w http.ResponseWriter, r *http.Request) {
	d, err := h.deckService.GetDeck(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondText(w, http.StatusOK, h.presenter.Summary().Render(d))
}

// ListDecks returns every stored deck without slide bodies
// GET /api/decks?session=
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.deckService.ListDecks(r.Context(), httputil.GetSessionID(r))
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, decks)
}

// GetCurrentDeck returns the session's current deck as JSON
// GET /api/decks/current
func (h *DeckHandler) GetCurrentDeck(w http.ResponseWriter, r *http.Request) {
	d, err := h.deckService.GetCurrent(r.Context(), httputil.GetSessionID(r))
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, d)
}

// GetDeck returns a stored deck as JSON
// GET /api/decks/{id}
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	d, err := h.deckService.GetDeck(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, d)
}

func (h *DeckHandler) respondPage(w http.ResponseWriter, d *models.Deck) {
	page, err := h.presenter.Artifact().Render(d)
	if err != nil {
		h.logger.Error("failed to render deck", "deck_id", d.ID, "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	httputil.RespondHTML(w, http.StatusOK, page)
}

// respondPageError serves the not-found page for missing decks
func (h *DeckHandler) respondPageError(w http.ResponseWriter, id string, err error) {
	if !errors.Is(err, domain.ErrNotFound) {
		h.logger.Error("failed to load deck", "deck_id", id, "error", err)
		handleError(w, err)
		return
	}
	page, renderErr := h.presenter.Artifact().NotFoundPage(id)
	if renderErr != nil {
		h.logger.Error("failed to render not-found page", "error", renderErr)
		handleError(w, err)
		return
	}
	httputil.RespondHTML(w, http.StatusNotFound, page)
}
