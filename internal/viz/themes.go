package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/algoviz/internal/step"
)

// Theme defines the colors of one palette
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Error  lipgloss.Color
	Bars   map[step.Color]lipgloss.Color
}

// Bar resolves a frame color tag; unknown tags fall back to the default bar.
func (t Theme) Bar(c step.Color) lipgloss.Color {
	if col, ok := t.Bars[c]; ok {
		return col
	}
	return t.Bars[step.ColorDefault]
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:   "classic",
		Title:  lipgloss.Color("#ffffff"),
		Text:   lipgloss.Color("#dddddd"),
		Muted:  lipgloss.Color("#777777"),
		Accent: lipgloss.Color("#00afff"),
		Error:  lipgloss.Color("#ff5f5f"),
		Bars: map[step.Color]lipgloss.Color{
			step.ColorDefault:   lipgloss.Color("#0000ff"),
			step.ColorHighlight: lipgloss.Color("#ff0000"),
			step.ColorOdd:       lipgloss.Color("#00c000"),
			step.ColorComposite: lipgloss.Color("#ffa500"),
		},
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Title:  lipgloss.Color("#e0f0ff"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Accent: lipgloss.Color("#ffd700"),
		Error:  lipgloss.Color("#ff4444"),
		Bars: map[step.Color]lipgloss.Color{
			step.ColorDefault:   lipgloss.Color("#0077be"),
			step.ColorHighlight: lipgloss.Color("#ff6b6b"),
			step.ColorOdd:       lipgloss.Color("#00ff88"),
			step.ColorComposite: lipgloss.Color("#feca57"),
		},
	}

	ThemeMono = Theme{
		Name:   "mono",
		Title:  lipgloss.Color("255"),
		Text:   lipgloss.Color("252"),
		Muted:  lipgloss.Color("242"),
		Accent: lipgloss.Color("255"),
		Error:  lipgloss.Color("255"),
		Bars: map[step.Color]lipgloss.Color{
			step.ColorDefault:   lipgloss.Color("240"),
			step.ColorHighlight: lipgloss.Color("255"),
			step.ColorOdd:       lipgloss.Color("250"),
			step.ColorComposite: lipgloss.Color("245"),
		},
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeOcean,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, or the classic one
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
