package render

import (
	"fmt"

	"pitchdeck/internal/config"
	models "pitchdeck/internal/domain/models/deck"
)

// ResourceURI is the artifact resource address for a deck
func ResourceURI(deckID string) string {
	return "ui://pitch-deck/" + deckID
}

// Output is a deck rendered for delivery to a tool caller
type Output struct {
	Mode   string
	DeckID string
	URI    string // artifact resource address
	Link   string // human-followable viewer URL
	HTML   []byte // artifact mode only
	Text   string // summary report, with the link in summary mode
}

// Presenter picks the output mode and runs the matching renderer
type Presenter struct {
	artifact *ArtifactRenderer
	summary  *SummaryRenderer
	deckURL  func(deckID string) string
}

// NewPresenter creates a presenter. deckURL builds the viewer link for a deck id.
func NewPresenter(artifact *ArtifactRenderer, summary *SummaryRenderer, deckURL func(string) string) *Presenter {
	return &Presenter{artifact: artifact, summary: summary, deckURL: deckURL}
}

// Present renders d in mode. Unknown modes render as artifacts.
func (p *Presenter) Present(d *models.Deck, mode string) (*Output, error) {
	out := &Output{
		Mode:   mode,
		DeckID: d.ID,
		URI:    ResourceURI(d.ID),
		Link:   p.deckURL(d.ID),
		Text:   p.summary.Render(d),
	}

	if mode == config.RenderModeSummary {
		out.Text = fmt.Sprintf("%s\nView the interactive deck: %s\n", out.Text, out.Link)
		return out, nil
	}

	out.Mode = config.RenderModeArtifact
	html, err := p.artifact.Render(d)
	if err != nil {
		return nil, err
	}
	out.HTML = html
	return out, nil
}

// Artifact exposes the HTML renderer for routes that serve pages directly
func (p *Presenter) Artifact() *ArtifactRenderer {
	return p.artifact
}

// Summary exposes the text renderer
func (p *Presenter) Summary() *SummaryRenderer {
	return p.summary
}
