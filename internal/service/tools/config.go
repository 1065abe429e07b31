package tools

import "pitchdeck/internal/config"

// ToolConfig centralizes configuration for the deck tools.
type ToolConfig struct {
	// RenderMode selects how callers present DeckResult:
	// config.RenderModeArtifact or config.RenderModeSummary
	RenderMode string
}

// DefaultToolConfig returns the default tool configuration.
func DefaultToolConfig() *ToolConfig {
	return &ToolConfig{
		RenderMode: config.RenderModeArtifact,
	}
}
