package viewer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pitchdeck/internal/service/render"
)

// Styles are the terminal rendition of one theme
type Styles struct {
	Page     lipgloss.Style
	Title    lipgloss.Style
	Hero     lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Bullet   lipgloss.Style
	Metric   lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Status   lipgloss.Style
	Dot      lipgloss.Style
	DotOn    lipgloss.Style
}

// NewStyles builds styles from theme tokens. Only hex tokens translate to the
// terminal; rgba tokens fall back to the nearest solid token.
func NewStyles(t render.ThemeTokens) Styles {
	bg := color(t.Bg, "#0f172a")
	text := color(t.Text, "#ffffff")
	accent := color(t.Accent, "#3b82f6")
	muted := color(t.TextSecondary, string(text))

	base := lipgloss.NewStyle().Background(bg).Foreground(text)

	return Styles{
		Page:     base.Padding(1, 4),
		Title:    base.Bold(true).Foreground(accent).MarginBottom(1),
		Hero:     base.Bold(true).Foreground(text).Align(lipgloss.Center),
		Subtitle: base.Italic(true).Foreground(accent).Align(lipgloss.Center),
		Body:     base,
		Bullet:   base.PaddingLeft(2),
		Metric:   base.Bold(true).Foreground(accent),
		Label:    base.Foreground(muted).Faint(true),
		Muted:    base.Foreground(muted).Faint(true),
		Status:   lipgloss.NewStyle().Foreground(text).Background(accent).Padding(0, 1),
		Dot:      base.Foreground(muted).Faint(true),
		DotOn:    base.Foreground(accent),
	}
}

func color(value, fallback string) lipgloss.Color {
	if strings.HasPrefix(value, "#") {
		return lipgloss.Color(value)
	}
	return lipgloss.Color(fallback)
}
