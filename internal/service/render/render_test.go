package render

import (
	"bytes"
	"strings"
	"testing"

	models "pitchdeck/internal/domain/models/deck"
)

func testDeck(theme models.Theme) *models.Deck {
	return &models.Deck{
		ID:          "abc12345",
		CompanyName: "Acme",
		Tagline:     "Sells widgets",
		Theme:       theme,
		Slides: []models.Slide{
			{ID: "s1", Kind: models.KindTitle, Title: "Acme", Subtitle: "Sells widgets", Icon: "🚀"},
			{ID: "s2", Kind: models.KindProblem, Title: "The Problem", Content: "It hurts.", Bullets: []string{"one", "two"}, Icon: "🔥"},
			{ID: "s3", Kind: models.KindMarket, Title: "Market", Metrics: []models.Metric{
				{Label: "TAM", Value: "$50B+", Description: "Total addressable market"},
				{Label: "SAM", Value: "$8B"},
			}},
			{ID: "s4", Kind: "appendix", Title: "Notes <b>bold</b>"},
		},
	}
}

func newArtifactRenderer(t *testing.T) *ArtifactRenderer {
	t.Helper()
	themes, err := LoadThemes()
	if err != nil {
		t.Fatalf("LoadThemes: %v", err)
	}
	r, err := NewArtifactRenderer(themes)
	if err != nil {
		t.Fatalf("NewArtifactRenderer: %v", err)
	}
	return r
}

func TestLoadThemes(t *testing.T) {
	themes, err := LoadThemes()
	if err != nil {
		t.Fatalf("LoadThemes: %v", err)
	}

	entries := themes.Entries()
	if len(entries) != 5 {
		t.Fatalf("expected 5 themes, got %d", len(entries))
	}
	for i, name := range models.Themes() {
		if entries[i].Name != name {
			t.Errorf("entry %d: got %s, want %s", i, entries[i].Name, name)
		}
		if _, ok := themes.Lookup(name); !ok {
			t.Errorf("Lookup(%s) missed", name)
		}
	}

	sunset, _ := themes.Lookup(models.ThemeSunset)
	if !strings.HasPrefix(sunset.PageBackground(), "linear-gradient") {
		t.Errorf("sunset page background: %q", sunset.PageBackground())
	}
	midnight, _ := themes.Lookup(models.ThemeMidnight)
	if midnight.PageBackground() != "#0f172a" {
		t.Errorf("midnight page background: %q", midnight.PageBackground())
	}

	if _, ok := themes.Lookup("neon"); ok {
		t.Error("Lookup(neon) should miss")
	}
}

func TestParseThemes_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "themes: ["},
		{"missing themes", "themes:\n  - name: midnight\n    tokens: {bg: x, bgSecondary: x, text: x, textSecondary: x, accent: x, accentGlow: x, cardBg: x, cardBorder: x, navBg: x, navHover: x, dotInactive: x, gradient: none}\n"},
		{"missing token", "themes:\n  - name: midnight\n    tokens: {bg: x}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseThemes([]byte(tt.data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestArtifactRenderer_Structure(t *testing.T) {
	r := newArtifactRenderer(t)
	out, err := r.Render(testDeck(models.ThemeForest))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)

	mustContain := []string{
		"<!DOCTYPE html>",
		"fonts.googleapis.com/css2?family=Montserrat",
		`<div class="slide slide-title active" data-index="0">`,
		"<h1>Acme</h1>",
		`<p class="subtitle">Sells widgets</p>`,
		`<div class="slide slide-content" data-index="1" data-kind="problem">`,
		"<li>one</li>",
		`<div class="metric-value">$8B</div>`,
		`<div class="metric-desc">Total addressable market</div>`,
		`data-kind="appendix"`,
		"Notes &lt;b&gt;bold&lt;/b&gt;",
		`<div class="slide-counter">1 / 4</div>`,
		`<div class="theme-dot active" data-theme="forest"`,
		"--accent: #fbbf24;",
	}
	for _, want := range mustContain {
		if !strings.Contains(html, want) {
			t.Errorf("artifact missing %q", want)
		}
	}

	dots := strings.Count(html, `<div class="dot" data-index=`) + strings.Count(html, `<div class="dot active" data-index=`)
	if dots != 4 {
		t.Errorf("expected 4 position dots, got %d", dots)
	}
	if !strings.Contains(html, `<div class="dot active" data-index="0">`) {
		t.Error("expected the first position dot to be active")
	}
	if strings.Count(html, `class="slide slide-`) != 4 {
		t.Errorf("expected 4 slides, got %d", strings.Count(html, `class="slide slide-`))
	}
	if strings.Count(html, " active\"") != 3 {
		// first slide, first dot, active theme dot
		t.Errorf("expected exactly 3 active markers, got %d", strings.Count(html, " active\""))
	}
}

func TestArtifactRenderer_SectionsFollowData(t *testing.T) {
	r := newArtifactRenderer(t)
	d := &models.Deck{
		ID:    "d",
		Theme: models.ThemeMidnight,
		Slides: []models.Slide{
			{ID: "a", Kind: models.KindMarket, Title: "No metrics here"},
			{ID: "b", Kind: models.KindCustom, Title: "Has metrics", Metrics: []models.Metric{{Label: "L", Value: "V"}}},
		},
	}
	out, err := r.Render(d)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)

	if strings.Count(html, `<div class="metrics-row">`) != 1 {
		t.Errorf("metric rows must follow data, not kind")
	}
	if strings.Contains(html, `<ul class="bullet-list">`) {
		t.Errorf("bullet list rendered without bullets")
	}
}

func TestArtifactRenderer_UnknownThemeKeepsDefaults(t *testing.T) {
	r := newArtifactRenderer(t)

	known, err := r.Render(testDeck(models.ThemeClean))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	unknown, err := r.Render(testDeck("neon"))
	if err != nil {
		t.Fatalf("Render with unknown theme: %v", err)
	}

	if got := strings.Count(string(known), ":root {"); got != 2 {
		t.Errorf("known theme: expected default and override :root rules, got %d", got)
	}
	if got := strings.Count(string(unknown), ":root {"); got != 1 {
		t.Errorf("unknown theme: expected only the default :root rule, got %d", got)
	}
	if strings.Contains(string(unknown), "theme-dot active") {
		t.Error("unknown theme marked a theme dot active")
	}
}

func TestArtifactRenderer_Deterministic(t *testing.T) {
	r := newArtifactRenderer(t)
	d := testDeck(models.ThemeSunset)

	first, err := r.Render(d)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := r.Render(d)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("render output differs between calls")
		}
	}
}

func TestArtifactRenderer_DoesNotMutate(t *testing.T) {
	r := newArtifactRenderer(t)
	d := testDeck(models.ThemeElectric)
	before := d.Clone()

	if _, err := r.Render(d); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if d.Theme != before.Theme || len(d.Slides) != len(before.Slides) || d.Slides[1].Bullets[0] != "one" {
		t.Error("Render mutated the deck")
	}
}

func TestArtifactRenderer_EmptyDeck(t *testing.T) {
	r := newArtifactRenderer(t)
	out, err := r.Render(&models.Deck{ID: "d", Theme: models.ThemeMidnight})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "This deck has no slides.") || !strings.Contains(html, "0 / 0") {
		t.Error("empty deck not rendered as empty state")
	}
}

func TestNotFoundPage(t *testing.T) {
	r := newArtifactRenderer(t)

	out, err := r.NotFoundPage("zzz<>")
	if err != nil {
		t.Fatalf("NotFoundPage: %v", err)
	}
	if !strings.Contains(string(out), "Deck not found") || !strings.Contains(string(out), "zzz&lt;&gt;") {
		t.Errorf("unexpected page: %s", out)
	}

	out, err = r.NotFoundPage("")
	if err != nil {
		t.Fatalf("NotFoundPage: %v", err)
	}
	if !strings.Contains(string(out), "Generate a pitch deck first") {
		t.Errorf("unexpected page without id: %s", out)
	}
}

func TestSummaryRenderer(t *testing.T) {
	got := NewSummaryRenderer().Render(testDeck(models.ThemeMidnight))

	want := `Pitch Deck: Acme | Sells widgets | Theme: midnight | 4 slides

Slide 0: 🚀 Acme [title]
  Sells widgets

Slide 1: 🔥 The Problem [problem]
  It hurts.
  - one
  - two

Slide 2: Market [market]
  * TAM: $50B+ (Total addressable market)
  * SAM: $8B

Slide 3: Notes <b>bold</b> [appendix]
`
	if got != want {
		t.Errorf("summary mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatMetric(t *testing.T) {
	tests := []struct {
		metric models.Metric
		want   string
	}{
		{models.Metric{Label: "ACV", Value: "$12K", Description: "Average contract value"}, "ACV: $12K (Average contract value)"},
		{models.Metric{Label: "Users", Value: "10K+"}, "Users: 10K+"},
	}
	for _, tt := range tests {
		if got := FormatMetric(tt.metric); got != tt.want {
			t.Errorf("FormatMetric(%+v) = %q, want %q", tt.metric, got, tt.want)
		}
	}
}
