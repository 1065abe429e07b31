package viewer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"

	models "pitchdeck/internal/domain/models/deck"
	"pitchdeck/internal/service/render"
)

// Markdown writes the deck as a markdown outline, one section per slide
func Markdown(d *models.Deck) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", d.CompanyName)
	if d.Tagline != "" {
		fmt.Fprintf(&b, "_%s_\n\n", d.Tagline)
	}
	fmt.Fprintf(&b, "Theme: **%s** · %d slides\n", d.Theme, len(d.Slides))

	for i, s := range d.Slides {
		b.WriteString("\n## ")
		fmt.Fprintf(&b, "%d. ", i)
		if s.Icon != "" {
			b.WriteString(s.Icon + " ")
		}
		fmt.Fprintf(&b, "%s\n\n", s.Title)

		if s.Subtitle != "" {
			fmt.Fprintf(&b, "_%s_\n\n", s.Subtitle)
		}
		if s.Content != "" {
			fmt.Fprintf(&b, "%s\n\n", s.Content)
		}
		for _, bullet := range s.Bullets {
			fmt.Fprintf(&b, "- %s\n", bullet)
		}
		if len(s.Bullets) > 0 {
			b.WriteString("\n")
		}
		if len(s.Metrics) > 0 {
			b.WriteString("| Metric | Value | |\n|---|---|---|\n")
			for _, m := range s.Metrics {
				fmt.Fprintf(&b, "| %s | **%s** | %s |\n", m.Label, m.Value, m.Description)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderMarkdown renders the deck outline for the terminal. A style of ""
// picks dark or light from the terminal background.
func RenderMarkdown(d *models.Deck, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(Markdown(d))
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// GlamourStyle picks the standard glamour style matching a theme's background
func GlamourStyle(t render.ThemeTokens) string {
	hex := strings.TrimPrefix(t.Bg, "#")
	if len(hex) != 6 {
		return "dark"
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return "dark"
	}
	r, g, b := float64(rgb>>16&0xff), float64(rgb>>8&0xff), float64(rgb&0xff)
	if 0.299*r+0.587*g+0.114*b > 128 {
		return "light"
	}
	return "dark"
}
