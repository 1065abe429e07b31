package deck

import "strings"

// Theme names a fixed palette applied to the whole artifact.
type Theme string

const (
	ThemeMidnight Theme = "midnight"
	ThemeClean    Theme = "clean"
	ThemeSunset   Theme = "sunset"
	ThemeForest   Theme = "forest"
	ThemeElectric Theme = "electric"

	DefaultTheme = ThemeMidnight
)

var themes = []Theme{ThemeMidnight, ThemeClean, ThemeSunset, ThemeForest, ThemeElectric}

// Themes returns the valid theme names in canonical order.
func Themes() []Theme {
	return append([]Theme(nil), themes...)
}

// ThemeNames returns Themes() as plain strings (for validation and schemas).
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = string(t)
	}
	return names
}

// ParseTheme matches name exactly against the valid themes.
func ParseTheme(name string) (Theme, bool) {
	for _, t := range themes {
		if string(t) == name {
			return t, true
		}
	}
	return "", false
}

// ThemeList is the human-readable list used in error messages.
func ThemeList() string {
	return strings.Join(ThemeNames(), ", ")
}
