// Package mcpserver exposes the deck tools over the Model Context Protocol.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pitchdeck/internal/domain"
	"pitchdeck/internal/service/render"
	"pitchdeck/internal/service/tools"
)

// Server identity reported to MCP clients
const (
	Name    = "pitch-deck-builder"
	Version = "1.0.0"
)

const instructions = "Build and edit an investor pitch deck. Start with generate_pitch_deck, " +
	"then refine it with update_slide, add_slide, remove_slide and change_theme. " +
	"Every tool returns the whole deck after the change."

// Server wraps the MCP server with the deck tool registry.
type Server struct {
	mcp       *server.MCPServer
	registry  *tools.ToolRegistry
	presenter *render.Presenter
	logger    *slog.Logger
}

// New creates the MCP server and registers every tool of the registry that has a definition.
func New(registry *tools.ToolRegistry, presenter *render.Presenter, logger *slog.Logger) (*Server, error) {
	s := &Server{
		mcp: server.NewMCPServer(
			Name,
			Version,
			server.WithToolCapabilities(true),
			server.WithRecovery(),
			server.WithInstructions(instructions),
		),
		registry:  registry,
		presenter: presenter,
		logger:    logger,
	}

	for _, def := range tools.Definitions() {
		if registry.Get(def.Name()) == nil {
			continue
		}
		tool, err := toMCPTool(def)
		if err != nil {
			return nil, err
		}
		s.mcp.AddTool(tool, s.handle(def.Name()))
	}

	return s, nil
}

// MCPServer returns the underlying protocol server
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// HTTPHandler serves the streamable HTTP transport
func (s *Server) HTTPHandler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp)
}

// ServeStdio serves the stdio transport until stdin closes or the process is signaled
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func toMCPTool(def tools.ToolDefinition) (mcp.Tool, error) {
	schema, err := def.SchemaJSON()
	if err != nil {
		return mcp.Tool{}, err
	}

	tool := mcp.NewToolWithRawSchema(def.Name(), def.Function.Description, schema)
	tool.Annotations = mcp.ToolAnnotation{
		Title:           def.Title,
		ReadOnlyHint:    boolPtr(def.Annotations.ReadOnlyHint),
		DestructiveHint: boolPtr(def.Annotations.DestructiveHint),
		IdempotentHint:  boolPtr(def.Annotations.IdempotentHint),
		OpenWorldHint:   boolPtr(def.Annotations.OpenWorldHint),
	}
	return tool, nil
}

func (s *Server) handle(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sessionID := sessionFromContext(ctx)
		ctx = tools.WithSession(ctx, sessionID)

		result := s.registry.Execute(ctx, tools.ToolCall{
			Name:  name,
			Input: req.GetArguments(),
		})
		if result.IsError {
			return s.errorResult(name, sessionID, result.Error), nil
		}

		dr, ok := result.Result.(*tools.DeckResult)
		if !ok {
			return nil, fmt.Errorf("tool %s returned %T", name, result.Result)
		}

		out, err := s.presenter.Present(dr.Deck, dr.Mode)
		if err != nil {
			s.logger.Error("failed to render deck", "tool", name, "deck_id", dr.Deck.ID, "error", err)
			return mcp.NewToolResultError("failed to render deck"), nil
		}

		s.logger.Debug("tool call served", "tool", name, "session_id", sessionID, "deck_id", out.DeckID, "mode", out.Mode)
		return toCallToolResult(out), nil
	}
}

// errorResult turns domain errors into tool errors the model can read and
// hides everything else behind a generic message
func (s *Server) errorResult(name, sessionID string, err error) *mcp.CallToolResult {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		s.logger.Info("tool call rejected", "tool", name, "session_id", sessionID, "error", err)
		return mcp.NewToolResultError(httpErr.Error())
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return mcp.NewToolResultError("request canceled")
	}

	s.logger.Error("tool call failed", "tool", name, "session_id", sessionID, "error", err)
	return mcp.NewToolResultError("internal error")
}

func toCallToolResult(out *render.Output) *mcp.CallToolResult {
	if out.HTML == nil {
		return mcp.NewToolResultText(out.Text)
	}

	status := fmt.Sprintf("Pitch deck %s updated. View it at %s", out.DeckID, out.Link)
	return mcp.NewToolResultResource(status, mcp.TextResourceContents{
		URI:      out.URI,
		MIMEType: render.ArtifactMIMEType,
		Text:     string(out.HTML),
	})
}

// sessionFromContext returns the MCP client session id, or "" outside a session
func sessionFromContext(ctx context.Context) string {
	if cs := server.ClientSessionFromContext(ctx); cs != nil {
		return cs.SessionID()
	}
	return ""
}

func boolPtr(b bool) *bool {
	return &b
}
