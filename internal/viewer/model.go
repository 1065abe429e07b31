// Package viewer pages through a deck in the terminal.
package viewer

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	models "pitchdeck/internal/domain/models/deck"
	"pitchdeck/internal/service/render"
)

const helpText = "←/→ navigate · 1-9 jump · t theme · q quit"

// Model is the bubbletea model of the deck pager
type Model struct {
	deck     *models.Deck
	nav      Navigator
	themes   []render.ThemeEntry
	themeIdx int
	styles   Styles
	width    int
	height   int
}

// New creates a pager positioned on the first slide, styled with the deck's theme
func New(d *models.Deck, themes *render.ThemeTable) Model {
	m := Model{
		deck:   d,
		nav:    NewNavigator(len(d.Slides)),
		themes: themes.Entries(),
		width:  80,
		height: 24,
	}
	for i, e := range m.themes {
		if e.Name == d.Theme {
			m.themeIdx = i
			break
		}
	}
	m.applyTheme()
	return m
}

// Index is the visible slide
func (m Model) Index() int { return m.nav.Index() }

// Theme is the theme currently applied
func (m Model) Theme() models.Theme {
	if len(m.themes) == 0 {
		return m.deck.Theme
	}
	return m.themes[m.themeIdx].Name
}

func (m *Model) applyTheme() {
	if len(m.themes) == 0 {
		m.styles = NewStyles(render.ThemeTokens{})
		return
	}
	m.styles = NewStyles(m.themes[m.themeIdx].Tokens)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyRight, tea.KeySpace, tea.KeyPgDown:
			m.nav.Next()
			return m, nil
		case tea.KeyLeft, tea.KeyPgUp:
			m.nav.Prev()
			return m, nil
		case tea.KeyHome:
			m.nav.First()
			return m, nil
		case tea.KeyEnd:
			m.nav.Last()
			return m, nil
		}

		switch key := msg.String(); key {
		case "q":
			return m, tea.Quit
		case "l", "n":
			m.nav.Next()
		case "h", "p":
			m.nav.Prev()
		case "g":
			m.nav.First()
		case "G":
			m.nav.Last()
		case "t":
			// Theme changes never move the position
			if len(m.themes) > 0 {
				m.themeIdx = (m.themeIdx + 1) % len(m.themes)
				m.applyTheme()
			}
		default:
			if d, err := strconv.Atoi(key); err == nil && d >= 1 && d <= 9 && d <= m.nav.Total() {
				m.nav.Go(d - 1)
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	s := m.styles
	width := max(m.width-8, 20)

	var body string
	if m.nav.Total() == 0 {
		body = s.Muted.Render("This deck has no slides.")
	} else {
		body = m.slideView(m.deck.Slides[m.nav.Index()], width)
	}

	header := s.Muted.Render(m.deck.CompanyName)
	if m.deck.Tagline != "" {
		header += s.Muted.Render(" · " + m.deck.Tagline)
	}

	status := lipgloss.JoinHorizontal(lipgloss.Top,
		s.Status.Render(m.nav.Indicator()),
		" ",
		s.Muted.Render(string(m.Theme())),
		"  ",
		m.dots(),
	)

	page := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		body,
		"",
		status,
		s.Muted.Render(helpText),
	)
	return s.Page.Width(m.width).Render(page)
}

func (m Model) slideView(slide models.Slide, width int) string {
	s := m.styles
	var lines []string

	title := slide.Title
	if slide.Icon != "" {
		title = slide.Icon + "  " + title
	}

	if slide.Kind.IsTitle() {
		lines = append(lines, s.Hero.Width(width).Render(title))
		if slide.Subtitle != "" {
			lines = append(lines, s.Subtitle.Width(width).Render(slide.Subtitle))
		}
		if slide.Content != "" {
			lines = append(lines, "", s.Body.Width(width).Align(lipgloss.Center).Render(slide.Content))
		}
	} else {
		lines = append(lines, s.Title.Render(title))
		if slide.Content != "" {
			lines = append(lines, s.Body.Width(width).Render(slide.Content))
		}
	}

	if len(slide.Bullets) > 0 {
		lines = append(lines, "")
		for _, b := range slide.Bullets {
			lines = append(lines, s.Bullet.Width(width).Render("• "+b))
		}
	}

	if len(slide.Metrics) > 0 {
		cards := make([]string, 0, len(slide.Metrics))
		for _, metric := range slide.Metrics {
			card := []string{s.Metric.Render(metric.Value), s.Label.Render(metric.Label)}
			if metric.Description != "" {
				card = append(card, s.Muted.Render(metric.Description))
			}
			cards = append(cards, s.Body.PaddingRight(4).Render(strings.Join(card, "\n")))
		}
		lines = append(lines, "", lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return strings.Join(lines, "\n")
}

func (m Model) dots() string {
	var b strings.Builder
	for i := 0; i < m.nav.Total(); i++ {
		if i == m.nav.Index() {
			b.WriteString(m.styles.DotOn.Render("●"))
		} else {
			b.WriteString(m.styles.Dot.Render("○"))
		}
	}
	return b.String()
}
