package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"gopkg.in/yaml.v3"

	models "pitchdeck/internal/domain/models/deck"
)

//go:embed themes.yaml
var themeFiles embed.FS

// ThemeTokens are the twelve presentation tokens of one theme
type ThemeTokens struct {
	Bg            string `yaml:"bg" json:"bg"`
	BgSecondary   string `yaml:"bgSecondary" json:"bgSecondary"`
	Text          string `yaml:"text" json:"text"`
	TextSecondary string `yaml:"textSecondary" json:"textSecondary"`
	Accent        string `yaml:"accent" json:"accent"`
	AccentGlow    string `yaml:"accentGlow" json:"accentGlow"`
	CardBg        string `yaml:"cardBg" json:"cardBg"`
	CardBorder    string `yaml:"cardBorder" json:"cardBorder"`
	NavBg         string `yaml:"navBg" json:"navBg"`
	NavHover      string `yaml:"navHover" json:"navHover"`
	DotInactive   string `yaml:"dotInactive" json:"dotInactive"`
	Gradient      string `yaml:"gradient" json:"gradient"`
}

// PageBackground is the gradient when the theme has one, otherwise the solid background
func (t ThemeTokens) PageBackground() string {
	if t.Gradient != "" && t.Gradient != "none" {
		return t.Gradient
	}
	return t.Bg
}

// cssVars returns the custom property assignments in stylesheet order
func (t ThemeTokens) cssVars() [][2]string {
	return [][2]string{
		{"--bg", t.Bg},
		{"--bg-secondary", t.BgSecondary},
		{"--text", t.Text},
		{"--text-secondary", t.TextSecondary},
		{"--accent", t.Accent},
		{"--accent-glow", t.AccentGlow},
		{"--card-bg", t.CardBg},
		{"--card-border", t.CardBorder},
		{"--nav-bg", t.NavBg},
		{"--nav-hover", t.NavHover},
		{"--dot-inactive", t.DotInactive},
		{"--gradient", t.Gradient},
		{"--page-bg", t.PageBackground()},
	}
}

// RootCSS renders the tokens as a :root rule
func (t ThemeTokens) RootCSS() template.CSS {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, kv := range t.cssVars() {
		fmt.Fprintf(&b, "    %s: %s;\n", kv[0], kv[1])
	}
	b.WriteString("  }")
	return template.CSS(b.String())
}

func (t ThemeTokens) missing() []string {
	var out []string
	for _, kv := range t.cssVars() {
		if kv[1] == "" {
			out = append(out, kv[0])
		}
	}
	return out
}

// ThemeEntry is one named theme with the swatch shown in the theme switcher
type ThemeEntry struct {
	Name   models.Theme `yaml:"name"`
	Swatch string       `yaml:"swatch"`
	Tokens ThemeTokens  `yaml:"tokens"`
}

type themeFile struct {
	Themes []ThemeEntry `yaml:"themes"`
}

// ThemeTable is the fixed, read-only table of theme definitions
type ThemeTable struct {
	entries []ThemeEntry
	byName  map[models.Theme]int
}

// LoadThemes loads the embedded theme table
func LoadThemes() (*ThemeTable, error) {
	data, err := themeFiles.ReadFile("themes.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read themes.yaml: %w", err)
	}
	return parseThemes(data)
}

func parseThemes(data []byte) (*ThemeTable, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal themes.yaml: %w", err)
	}

	t := &ThemeTable{
		entries: file.Themes,
		byName:  make(map[models.Theme]int, len(file.Themes)),
	}
	for i, e := range file.Themes {
		if _, dup := t.byName[e.Name]; dup {
			return nil, fmt.Errorf("duplicate theme %q", e.Name)
		}
		if missing := e.Tokens.missing(); len(missing) > 0 {
			return nil, fmt.Errorf("theme %q missing tokens: %s", e.Name, strings.Join(missing, ", "))
		}
		t.byName[e.Name] = i
	}

	for _, name := range models.Themes() {
		if _, ok := t.byName[name]; !ok {
			return nil, fmt.Errorf("theme %q not defined", name)
		}
	}

	return t, nil
}

// Lookup returns the tokens for name. A miss is not an error.
func (t *ThemeTable) Lookup(name models.Theme) (ThemeTokens, bool) {
	i, ok := t.byName[name]
	if !ok {
		return ThemeTokens{}, false
	}
	return t.entries[i].Tokens, true
}

// Entries returns the themes in table order
func (t *ThemeTable) Entries() []ThemeEntry {
	return append([]ThemeEntry(nil), t.entries...)
}

// TokenMap returns every theme's tokens keyed by name, for the page script
func (t *ThemeTable) TokenMap() map[string]ThemeTokens {
	out := make(map[string]ThemeTokens, len(t.entries))
	for _, e := range t.entries {
		out[string(e.Name)] = e.Tokens
	}
	return out
}
