package render

import (
	"fmt"
	"strings"

	models "pitchdeck/internal/domain/models/deck"
)

// SummaryRenderer linearizes a deck into a plain text report for callers that
// cannot display the HTML viewer. No theme is applied.
type SummaryRenderer struct{}

// NewSummaryRenderer creates a summary renderer
func NewSummaryRenderer() *SummaryRenderer {
	return &SummaryRenderer{}
}

// Render returns the text report for d
func (SummaryRenderer) Render(d *models.Deck) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Pitch Deck: %s", d.CompanyName)
	if d.Tagline != "" {
		fmt.Fprintf(&b, " | %s", d.Tagline)
	}
	fmt.Fprintf(&b, " | Theme: %s | %d %s\n", d.Theme, len(d.Slides), plural(len(d.Slides), "slide", "slides"))

	for i, s := range d.Slides {
		b.WriteString("\n")
		fmt.Fprintf(&b, "Slide %d:", i)
		if s.Icon != "" {
			fmt.Fprintf(&b, " %s", s.Icon)
		}
		fmt.Fprintf(&b, " %s [%s]\n", s.Title, s.Kind)

		if s.Subtitle != "" {
			fmt.Fprintf(&b, "  %s\n", s.Subtitle)
		}
		if s.Content != "" {
			fmt.Fprintf(&b, "  %s\n", s.Content)
		}
		for _, bullet := range s.Bullets {
			fmt.Fprintf(&b, "  - %s\n", bullet)
		}
		for _, m := range s.Metrics {
			b.WriteString("  * ")
			b.WriteString(FormatMetric(m))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// FormatMetric formats m as "label: value (description)"; the parenthesis is
// omitted when there is no description
func FormatMetric(m models.Metric) string {
	if m.Description == "" {
		return fmt.Sprintf("%s: %s", m.Label, m.Value)
	}
	return fmt.Sprintf("%s: %s (%s)", m.Label, m.Value, m.Description)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
