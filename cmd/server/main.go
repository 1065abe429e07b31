package main

import (
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"pitchdeck/internal/config"
	"pitchdeck/internal/handler"
	"pitchdeck/internal/httputil"
	"pitchdeck/internal/mcpserver"
	"pitchdeck/internal/middleware"
	"pitchdeck/internal/repository/memory"
	serviceDeck "pitchdeck/internal/service/deck"
	"pitchdeck/internal/service/render"
	"pitchdeck/internal/service/tools"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging. stdout carries the protocol in stdio mode.
	var logOut io.Writer = os.Stdout
	if cfg.MCPTransport == config.TransportStdio {
		logOut = os.Stderr
	}
	if cfg.LogDir != "" {
		logFile, err := config.OpenLogFile(cfg.LogDir)
		if err != nil {
			log.Fatalf("Failed to setup log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(logOut, logFile)
	}

	logger := config.NewLogger(cfg, logOut)
	slog.SetDefault(logger) // Set as default logger
	if cfg.LogDir != "" {
		config.PruneLogFiles(logger, cfg.LogDir, cfg.LogMaxFiles)
	}

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"render_mode", cfg.RenderMode,
		"mcp_transport", cfg.MCPTransport,
	)

	// Create repositories
	repoConfig := &memory.RepositoryConfig{
		Logger: logger,
	}
	deckRepo := memory.NewDeckRepository(repoConfig)
	sessionRepo := memory.NewSessionRepository(repoConfig)

	// Create deck service
	generator, err := serviceDeck.NewGenerator()
	if err != nil {
		log.Fatalf("Failed to load deck template: %v", err)
	}
	deckService := serviceDeck.NewDeckService(deckRepo, sessionRepo, generator, logger)

	// Tool registry
	registry := tools.NewToolRegistryBuilder().
		WithConfig(&tools.ToolConfig{RenderMode: cfg.RenderMode}).
		WithDeckTools(deckService).
		Build()

	// Renderers
	themes, err := render.LoadThemes()
	if err != nil {
		log.Fatalf("Failed to load themes: %v", err)
	}
	artifact, err := render.NewArtifactRenderer(themes)
	if err != nil {
		log.Fatalf("Failed to load deck page templates: %v", err)
	}
	presenter := render.NewPresenter(artifact, render.NewSummaryRenderer(), cfg.DeckURL)

	mcpServer, err := mcpserver.New(registry, presenter, logger)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	logger.Info("services initialized", "tools", registry.Names())

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()
	mux.Handle("/mcp", mcpServer.HTTPHandler())
	handler.NewDeckHandler(deckService, presenter, logger).RegisterRoutes(mux)
	handler.NewToolHandler(registry, presenter, logger).RegisterRoutes(mux)

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Logging → Recovery → Routes
	h = middleware.Recovery(logger)(h)
	h = middleware.Logging(logger)(h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", httputil.SessionHeader, "Mcp-Session-Id"},
		ExposedHeaders:   []string{"Mcp-Session-Id"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disabled to allow long-lived MCP streams
		IdleTimeout:  60 * time.Second,
	}

	if cfg.MCPTransport == config.TransportStdio {
		// The deck viewer still serves the links handed out in tool results
		go func() {
			logger.Info("deck viewer listening", "port", cfg.Port)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("deck viewer stopped", "error", err)
			}
		}()

		logger.Info("serving MCP over stdio")
		if err := mcpServer.ServeStdio(); err != nil {
			log.Fatalf("MCP stdio server failed: %v", err)
		}
		return
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
