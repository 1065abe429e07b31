package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	models "pitchdeck/internal/domain/models/deck"
)

// Tool names
const (
	ToolGenerateDeck = "generate_pitch_deck"
	ToolUpdateSlide  = "update_slide"
	ToolAddSlide     = "add_slide"
	ToolRemoveSlide  = "remove_slide"
	ToolChangeTheme  = "change_theme"
)

// FunctionDetails represents the function definition (OpenAI format)
type FunctionDetails struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// ToolAnnotations are behavior hints for clients. They describe, they don't enforce.
type ToolAnnotations struct {
	ReadOnlyHint    bool `json:"readOnlyHint"`
	DestructiveHint bool `json:"destructiveHint"`
	IdempotentHint  bool `json:"idempotentHint"`
	OpenWorldHint   bool `json:"openWorldHint"`
}

// ToolDefinition is the static description of one tool.
type ToolDefinition struct {
	Type        string           `json:"type"`
	Title       string           `json:"title"`
	Function    *FunctionDetails `json:"function"`
	Annotations ToolAnnotations  `json:"annotations"`
}

// Name returns the tool name
func (d ToolDefinition) Name() string {
	return d.Function.Name
}

// SchemaJSON returns the parameter schema as JSON
func (d ToolDefinition) SchemaJSON() (json.RawMessage, error) {
	data, err := json.Marshal(d.Function.Parameters)
	if err != nil {
		return nil, fmt.Errorf("marshal %s schema: %w", d.Function.Name, err)
	}
	return data, nil
}

// Definitions returns the deck tool definitions in registration order.
func Definitions() []ToolDefinition {
	return []ToolDefinition{
		getGenerateDeckDefinition(),
		getUpdateSlideDefinition(),
		getAddSlideDefinition(),
		getRemoveSlideDefinition(),
		getChangeThemeDefinition(),
	}
}

// GetToolDefinitionByName returns the definition for name, or nil.
func GetToolDefinitionByName(name string) *ToolDefinition {
	for _, def := range Definitions() {
		if def.Name() == name {
			return &def
		}
	}
	return nil
}

func stringParam(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

func integerParam(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

func getGenerateDeckDefinition() ToolDefinition {
	return ToolDefinition{
		Type:  "function",
		Title: "Generate Pitch Deck",
		Function: &FunctionDetails{
			Name: ToolGenerateDeck,
			Description: "Generate a complete pitch deck from a startup description. " +
				"Returns an interactive slide viewer with nine professionally designed slides. " +
				"Use this when the user wants to create a pitch deck, investor presentation, or startup slides.",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"company_name": stringParam("Name of the company/startup"),
					"description":  stringParam("What the company does, its value proposition"),
					"industry":     stringParam("Industry/vertical (e.g. fintech, healthtech, edtech). Default: technology"),
					"stage":        stringParam("Funding stage (e.g. pre-seed, seed, Series A). Default: Seed"),
					"ask_amount":   stringParam("How much they're raising (e.g. $2M). Default: $2M"),
					"traction":     stringParam("Key traction metrics (e.g. 50K users, $1M ARR)"),
				},
				"required": []string{"company_name", "description"},
			},
		},
		Annotations: ToolAnnotations{ReadOnlyHint: false, IdempotentHint: false},
	}
}

func getUpdateSlideDefinition() ToolDefinition {
	return ToolDefinition{
		Type:  "function",
		Title: "Update Slide",
		Function: &FunctionDetails{
			Name: ToolUpdateSlide,
			Description: "Update the content of a specific slide in the current pitch deck. " +
				"Can modify title, content, or bullets. Empty values leave the field unchanged.",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"slide_index": integerParam("0-based index of the slide to update"),
					"title":       stringParam("New title for the slide"),
					"content":     stringParam("New body content"),
					"bullets": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "New bullet points (replaces the existing list)",
					},
				},
				"required": []string{"slide_index"},
			},
		},
		Annotations: ToolAnnotations{ReadOnlyHint: false, DestructiveHint: true, IdempotentHint: true},
	}
}

func getAddSlideDefinition() ToolDefinition {
	kinds := make([]string, 0, len(models.Kinds()))
	for _, k := range models.Kinds() {
		if !k.IsTitle() {
			kinds = append(kinds, string(k))
		}
	}

	return ToolDefinition{
		Type:  "function",
		Title: "Add Slide",
		Function: &FunctionDetails{
			Name:        ToolAddSlide,
			Description: "Add a new slide to the current pitch deck at a given position.",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"title":   stringParam("Title of the new slide"),
					"content": stringParam("Body content of the slide"),
					"slide_type": map[string]interface{}{
						"type":        "string",
						"description": "Slide type, e.g. " + strings.Join(kinds, ", ") + ". Default: custom",
						"default":     string(models.KindCustom),
					},
					"position": integerParam("0-based position to insert at. Appends to end if omitted or out of range."),
					"bullets": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Optional bullet points",
					},
				},
				"required": []string{"title", "content"},
			},
		},
		Annotations: ToolAnnotations{ReadOnlyHint: false, IdempotentHint: false},
	}
}

func getRemoveSlideDefinition() ToolDefinition {
	return ToolDefinition{
		Type:  "function",
		Title: "Remove Slide",
		Function: &FunctionDetails{
			Name:        ToolRemoveSlide,
			Description: "Remove a slide from the current pitch deck by its index.",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"slide_index": integerParam("0-based index of the slide to remove"),
				},
				"required": []string{"slide_index"},
			},
		},
		Annotations: ToolAnnotations{ReadOnlyHint: false, DestructiveHint: true, IdempotentHint: false},
	}
}

func getChangeThemeDefinition() ToolDefinition {
	return ToolDefinition{
		Type:  "function",
		Title: "Change Theme",
		Function: &FunctionDetails{
			Name: ToolChangeTheme,
			Description: "Change the visual theme of the pitch deck. Options: midnight (dark navy), " +
				"clean (white minimal), sunset (warm gradient), forest (deep green), electric (neon cyberpunk).",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"theme": map[string]interface{}{
						"type":        "string",
						"enum":        models.ThemeNames(),
						"description": "Theme name: " + models.ThemeList(),
					},
				},
				"required": []string{"theme"},
			},
		},
		Annotations: ToolAnnotations{ReadOnlyHint: false, IdempotentHint: true},
	}
}
