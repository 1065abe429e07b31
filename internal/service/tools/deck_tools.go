package tools

import (
	"context"

	models "pitchdeck/internal/domain/models/deck"
	"pitchdeck/internal/domain/services"
)

// deckTool holds what every deck tool needs
type deckTool struct {
	name    string
	service services.DeckService
	config  *ToolConfig
}

func newDeckTool(name string, service services.DeckService, config *ToolConfig) deckTool {
	if config == nil {
		config = DefaultToolConfig()
	}
	return deckTool{name: name, service: service, config: config}
}

func (t deckTool) result(d *models.Deck) *DeckResult {
	return &DeckResult{Tool: t.name, Mode: t.config.RenderMode, Deck: d}
}

// GenerateDeckTool implements 'generate_pitch_deck'.
type GenerateDeckTool struct{ deckTool }

// NewGenerateDeckTool creates a new GenerateDeckTool instance.
func NewGenerateDeckTool(service services.DeckService, config *ToolConfig) *GenerateDeckTool {
	return &GenerateDeckTool{newDeckTool(ToolGenerateDeck, service, config)}
}

// Execute implements ToolExecutor interface.
// Input parameters:
//   - company_name (string, required)
//   - description (string, required)
//   - industry, stage, ask_amount, traction (string, optional)
func (t *GenerateDeckTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var (
		req services.GenerateDeckRequest
		err error
	)
	if req.CompanyName, err = requireString(input, "company_name"); err != nil {
		return nil, err
	}
	if req.Description, err = requireString(input, "description"); err != nil {
		return nil, err
	}
	if req.Industry, err = optionalStringPtr(input, "industry"); err != nil {
		return nil, err
	}
	if req.Stage, err = optionalStringPtr(input, "stage"); err != nil {
		return nil, err
	}
	if req.AskAmount, err = optionalStringPtr(input, "ask_amount"); err != nil {
		return nil, err
	}
	if req.Traction, err = optionalStringPtr(input, "traction"); err != nil {
		return nil, err
	}

	d, err := t.service.Generate(ctx, SessionFromContext(ctx), &req)
	if err != nil {
		return nil, err
	}
	return t.result(d), nil
}

// UpdateSlideTool implements 'update_slide'.
type UpdateSlideTool struct{ deckTool }

// NewUpdateSlideTool creates a new UpdateSlideTool instance.
func NewUpdateSlideTool(service services.DeckService, config *ToolConfig) *UpdateSlideTool {
	return &UpdateSlideTool{newDeckTool(ToolUpdateSlide, service, config)}
}

// Execute implements ToolExecutor interface.
// Input parameters:
//   - slide_index (integer, required)
//   - title, content (string, optional)
//   - bullets ([]string, optional)
func (t *UpdateSlideTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var (
		req services.UpdateSlideRequest
		err error
	)
	if req.SlideIndex, err = requireInt(input, "slide_index"); err != nil {
		return nil, err
	}
	if req.Title, err = optionalString(input, "title"); err != nil {
		return nil, err
	}
	if req.Content, err = optionalString(input, "content"); err != nil {
		return nil, err
	}
	if req.Bullets, err = optionalStringList(input, "bullets"); err != nil {
		return nil, err
	}

	d, err := t.service.UpdateSlide(ctx, SessionFromContext(ctx), &req)
	if err != nil {
		return nil, err
	}
	return t.result(d), nil
}

// AddSlideTool implements 'add_slide'.
type AddSlideTool struct{ deckTool }

// NewAddSlideTool creates a new AddSlideTool instance.
func NewAddSlideTool(service services.DeckService, config *ToolConfig) *AddSlideTool {
	return &AddSlideTool{newDeckTool(ToolAddSlide, service, config)}
}

// Execute implements ToolExecutor interface.
// Input parameters:
//   - title, content (string, required)
//   - slide_type (string, optional, default "custom")
//   - position (integer, optional)
//   - bullets ([]string, optional)
func (t *AddSlideTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var (
		req services.AddSlideRequest
		err error
	)
	if req.Title, err = requireString(input, "title"); err != nil {
		return nil, err
	}
	if req.Content, err = requireString(input, "content"); err != nil {
		return nil, err
	}
	kind, err := optionalString(input, "slide_type")
	if err != nil {
		return nil, err
	}
	req.Kind = models.Kind(kind.Value)
	if req.Position, err = optionalInt(input, "position"); err != nil {
		return nil, err
	}
	if req.Bullets, err = optionalStringList(input, "bullets"); err != nil {
		return nil, err
	}

	d, err := t.service.AddSlide(ctx, SessionFromContext(ctx), &req)
	if err != nil {
		return nil, err
	}
	return t.result(d), nil
}

// RemoveSlideTool implements 'remove_slide'.
type RemoveSlideTool struct{ deckTool }

// NewRemoveSlideTool creates a new RemoveSlideTool instance.
func NewRemoveSlideTool(service services.DeckService, config *ToolConfig) *RemoveSlideTool {
	return &RemoveSlideTool{newDeckTool(ToolRemoveSlide, service, config)}
}

// Execute implements ToolExecutor interface.
// Input parameters:
//   - slide_index (integer, required)
func (t *RemoveSlideTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	index, err := requireInt(input, "slide_index")
	if err != nil {
		return nil, err
	}

	d, err := t.service.RemoveSlide(ctx, SessionFromContext(ctx), &services.RemoveSlideRequest{SlideIndex: index})
	if err != nil {
		return nil, err
	}
	return t.result(d), nil
}

// ChangeThemeTool implements 'change_theme'.
type ChangeThemeTool struct{ deckTool }

// NewChangeThemeTool creates a new ChangeThemeTool instance.
func NewChangeThemeTool(service services.DeckService, config *ToolConfig) *ChangeThemeTool {
	return &ChangeThemeTool{newDeckTool(ToolChangeTheme, service, config)}
}

// Execute implements ToolExecutor interface.
// Input parameters:
//   - theme (string, required): one of midnight, clean, sunset, forest, electric
func (t *ChangeThemeTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	theme, err := requireString(input, "theme")
	if err != nil {
		return nil, err
	}

	d, err := t.service.ChangeTheme(ctx, SessionFromContext(ctx), &services.ChangeThemeRequest{Theme: theme})
	if err != nil {
		return nil, err
	}
	return t.result(d), nil
}
