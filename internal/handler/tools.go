package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"pitchdeck/internal/httputil"
	"pitchdeck/internal/service/render"
	"pitchdeck/internal/service/tools"
)

// ToolHandler exposes the tool registry over plain HTTP
type ToolHandler struct {
	registry  *tools.ToolRegistry
	presenter *render.Presenter
	logger    *slog.Logger
}

// NewToolHandler creates a new tool handler
func NewToolHandler(registry *tools.ToolRegistry, presenter *render.Presenter, logger *slog.Logger) *ToolHandler {
	return &ToolHandler{
		registry:  registry,
		presenter: presenter,
		logger:    logger,
	}
}

// RegisterRoutes mounts the tool routes on mux
func (h *ToolHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/tools", h.ListTools)
	mux.HandleFunc("POST /api/tools/{name}", h.InvokeTool)
}

// ToolResponse is the body returned by a successful tool call
type ToolResponse struct {
	Tool    string      `json:"tool"`
	Mode    string      `json:"mode"`
	Deck    interface{} `json:"deck"`
	Summary string      `json:"summary"`
	Link    string      `json:"link"`
	URI     string      `json:"uri"`
}

// ListTools returns the registered tool definitions
// GET /api/tools
func (h *ToolHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	defs := make([]tools.ToolDefinition, 0)
	for _, name := range h.registry.Names() {
		if def := tools.GetToolDefinitionByName(name); def != nil {
			defs = append(defs, *def)
		}
	}
	httputil.RespondJSON(w, http.StatusOK, defs)
}

// InvokeTool runs one tool with the JSON object body as its arguments
// POST /api/tools/{name}
func (h *ToolHandler) InvokeTool(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var input map[string]interface{}
	if err := httputil.ParseJSON(w, r, &input); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sessionID := httputil.GetSessionID(r)
	ctx := tools.WithSession(r.Context(), sessionID)

	result := h.registry.Execute(ctx, tools.ToolCall{Name: name, Input: input})
	if result.IsError {
		h.logger.Debug("tool call failed", "tool", name, "session_id", sessionID, "error", result.Error)
		handleError(w, result.Error)
		return
	}

	deckResult, ok := result.Result.(*tools.DeckResult)
	if !ok {
		h.logger.Error("unexpected tool result", "tool", name)
		handleError(w, errors.New("unexpected tool result"))
		return
	}

	// The page itself is served at Link; the summary travels inline in both modes
	out, err := h.presenter.Present(deckResult.Deck, deckResult.Mode)
	if err != nil {
		h.logger.Error("failed to present deck", "tool", name, "deck_id", deckResult.Deck.ID, "error", err)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, ToolResponse{
		Tool:    name,
		Mode:    out.Mode,
		Deck:    deckResult.Deck,
		Summary: out.Text,
		Link:    out.Link,
		URI:     out.URI,
	})
}
