package tools

import (
	"pitchdeck/internal/domain/services"
)

// ToolRegistryBuilder provides a fluent API for building tool registries.
type ToolRegistryBuilder struct {
	registry *ToolRegistry
	config   *ToolConfig
}

// NewToolRegistryBuilder creates a new builder with a fresh registry.
func NewToolRegistryBuilder() *ToolRegistryBuilder {
	return &ToolRegistryBuilder{
		registry: NewToolRegistry(),
		config:   DefaultToolConfig(),
	}
}

// WithConfig sets custom tool configuration.
// If not called, defaults will be used.
func (b *ToolRegistryBuilder) WithConfig(config *ToolConfig) *ToolRegistryBuilder {
	if config != nil {
		b.config = config
	}
	return b
}

// WithDeckTools registers the five deck editing tools.
func (b *ToolRegistryBuilder) WithDeckTools(service services.DeckService) *ToolRegistryBuilder {
	b.registry.Register(ToolGenerateDeck, NewGenerateDeckTool(service, b.config))
	b.registry.Register(ToolUpdateSlide, NewUpdateSlideTool(service, b.config))
	b.registry.Register(ToolAddSlide, NewAddSlideTool(service, b.config))
	b.registry.Register(ToolRemoveSlide, NewRemoveSlideTool(service, b.config))
	b.registry.Register(ToolChangeTheme, NewChangeThemeTool(service, b.config))
	return b
}

// Build returns the constructed tool registry.
func (b *ToolRegistryBuilder) Build() *ToolRegistry {
	return b.registry
}
