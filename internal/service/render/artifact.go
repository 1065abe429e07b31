package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	models "pitchdeck/internal/domain/models/deck"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

// ArtifactMIMEType is the content type of rendered artifacts
const ArtifactMIMEType = "text/html"

// ArtifactRenderer renders a deck as a single self-contained HTML slide viewer.
// It never mutates the deck and identical decks produce identical bytes.
type ArtifactRenderer struct {
	themes *ThemeTable
	tmpl   *template.Template
}

// NewArtifactRenderer parses the embedded viewer templates
func NewArtifactRenderer(themes *ThemeTable) (*ArtifactRenderer, error) {
	tmpl, err := template.ParseFS(templateFiles, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse viewer templates: %w", err)
	}
	return &ArtifactRenderer{themes: themes, tmpl: tmpl}, nil
}

type slideView struct {
	Index  int
	Active bool
	Hero   bool
	Slide  models.Slide
}

type themeDot struct {
	Name   string
	Swatch template.CSS
	Active bool
}

type deckPage struct {
	Deck     *models.Deck
	Slides   []slideView
	Total    int
	Counter  string
	RootCSS  template.CSS
	Themes   []themeDot
	ThemesJS map[string]ThemeTokens
	Theme    string
}

// Render produces the viewer page for d
func (r *ArtifactRenderer) Render(d *models.Deck) ([]byte, error) {
	page := deckPage{
		Deck:     d,
		Slides:   make([]slideView, len(d.Slides)),
		Total:    len(d.Slides),
		ThemesJS: r.themes.TokenMap(),
		Theme:    string(d.Theme),
	}

	for i, s := range d.Slides {
		page.Slides[i] = slideView{
			Index:  i,
			Active: i == 0,
			Hero:   s.Kind.IsTitle(),
			Slide:  s,
		}
	}

	page.Counter = "0 / 0"
	if page.Total > 0 {
		page.Counter = fmt.Sprintf("1 / %d", page.Total)
	}

	// Unknown themes keep the stylesheet defaults
	if tokens, ok := r.themes.Lookup(d.Theme); ok {
		page.RootCSS = tokens.RootCSS()
	}

	for _, e := range r.themes.Entries() {
		page.Themes = append(page.Themes, themeDot{
			Name:   string(e.Name),
			Swatch: template.CSS(e.Swatch),
			Active: e.Name == d.Theme,
		})
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "deck", page); err != nil {
		return nil, fmt.Errorf("render deck %s: %w", d.ID, err)
	}
	return buf.Bytes(), nil
}

// NotFoundPage renders the page shown when no deck matches id.
// An empty id means the session has no current deck.
func (r *ArtifactRenderer) NotFoundPage(id string) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "notfound", struct{ ID string }{id}); err != nil {
		return nil, fmt.Errorf("render not found page: %w", err)
	}
	return buf.Bytes(), nil
}
