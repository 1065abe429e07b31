package config

import (
	"os"
	"strconv"
	"strings"
)

// Render modes for tool results
const (
	RenderModeArtifact = "artifact" // interactive HTML viewer
	RenderModeSummary  = "summary"  // plain text plus a link to the viewer
)

// MCP transports
const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

type Config struct {
	Port        string
	Environment string
	BaseURL     string // Used to build human-followable links to /deck/{id}
	CORSOrigins string
	// Tool output
	RenderMode string
	// MCP
	MCPTransport string
	// Logging
	LogDir      string // Empty disables file logging
	LogMaxFiles int
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")
	port := getEnv("PORT", "3000")

	return &Config{
		Port:         port,
		Environment:  env,
		BaseURL:      strings.TrimRight(getEnv("BASE_URL", "http://localhost:"+port), "/"),
		CORSOrigins:  getEnv("CORS_ORIGINS", "*"),
		RenderMode:   getRenderMode(getEnv("RENDER_MODE", RenderModeArtifact)),
		MCPTransport: getTransport(getEnv("MCP_TRANSPORT", TransportHTTP)),
		LogDir:       getEnv("LOG_DIR", ""),
		LogMaxFiles:  getEnvInt("LOG_MAX_FILES", 10),
	}
}

// IsDev reports whether debug-level logging should be enabled
func (c *Config) IsDev() bool {
	return c.Environment == "dev"
}

// DeckURL returns the viewer link for a deck
func (c *Config) DeckURL(deckID string) string {
	return c.BaseURL + "/deck/" + deckID
}

// getRenderMode falls back to artifact for unknown values
func getRenderMode(mode string) string {
	switch strings.ToLower(mode) {
	case RenderModeSummary:
		return RenderModeSummary
	default:
		return RenderModeArtifact
	}
}

// getTransport falls back to http for unknown values
func getTransport(transport string) string {
	switch strings.ToLower(transport) {
	case TransportStdio:
		return TransportStdio
	default:
		return TransportHTTP
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
