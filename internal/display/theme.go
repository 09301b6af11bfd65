// Package display renders an engine.Position and search progress to the
// terminal. It is adapted from the teacher's internal/ui board renderer:
// the same lipgloss theming approach, generalized to drive off
// engine.Position instead of a flat engine.Board.
package display

import "github.com/charmbracelet/lipgloss"

// ThemeName names one of the built-in color themes.
type ThemeName int

const (
	ThemeClassic ThemeName = iota
	ThemeModern
)

const (
	ThemeNameClassic = "classic"
	ThemeNameModern  = "modern"
)

// String returns the TOML-serializable name of the theme.
func (t ThemeName) String() string {
	if t == ThemeModern {
		return ThemeNameModern
	}
	return ThemeNameClassic
}

// ParseThemeName converts a string to a ThemeName, defaulting to
// ThemeClassic for anything unrecognized.
func ParseThemeName(s string) ThemeName {
	if s == ThemeNameModern {
		return ThemeModern
	}
	return ThemeClassic
}

// Theme holds the color values the Renderer applies to board output.
type Theme struct {
	Name string

	LightSquare lipgloss.Color
	DarkSquare  lipgloss.Color
	LightPiece  lipgloss.Color
	DarkPiece   lipgloss.Color

	Border    lipgloss.Color
	TitleText lipgloss.Color
	HelpText  lipgloss.Color
	ErrorText lipgloss.Color
	InfoText  lipgloss.Color
}

var themes = map[ThemeName]Theme{
	ThemeClassic: {
		Name:        ThemeNameClassic,
		LightSquare: lipgloss.Color("15"),
		DarkSquare:  lipgloss.Color("8"),
		LightPiece:  lipgloss.Color("15"),
		DarkPiece:   lipgloss.Color("8"),
		Border:      lipgloss.Color("#FAFAFA"),
		TitleText:   lipgloss.Color("#FAFAFA"),
		HelpText:    lipgloss.Color("#626262"),
		ErrorText:   lipgloss.Color("#FF5555"),
		InfoText:    lipgloss.Color("#50FA7B"),
	},
	ThemeModern: {
		Name:        ThemeNameModern,
		LightSquare: lipgloss.Color("255"),
		DarkSquare:  lipgloss.Color("237"),
		LightPiece:  lipgloss.Color("255"),
		DarkPiece:   lipgloss.Color("240"),
		Border:      lipgloss.Color("#89B4FA"),
		TitleText:   lipgloss.Color("#89B4FA"),
		HelpText:    lipgloss.Color("#6C7086"),
		ErrorText:   lipgloss.Color("#F38BA8"),
		InfoText:    lipgloss.Color("#A6E3A1"),
	},
}

// GetTheme returns the theme for name, falling back to ThemeClassic.
func GetTheme(name ThemeName) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[ThemeClassic]
}
