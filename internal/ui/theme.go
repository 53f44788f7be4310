package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	TopBar    lipgloss.Style
	TabActive lipgloss.Style
	Tab       lipgloss.Style
	StatusBar lipgloss.Style
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Card      lipgloss.Style
	Selected  lipgloss.Style
	Quote     lipgloss.Style
	Hint      lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Chart     lipgloss.Style

	// glamour style used for exercise details
	Markdown string
}

func newTheme(name, accent, status, bg string) Theme {
	return Theme{
		Name:      name,
		TopBar:    lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color(accent)).Bold(true).Padding(0, 1),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Padding(0, 1),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color(status)).Background(lipgloss.Color(bg)).Padding(0, 1),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		Label:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
		Value:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F2CDCD")),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#585b70")).Padding(0, 1),
		Selected:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(accent)).Bold(true).Padding(0, 1),
		Quote:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#CBA6F7")).Padding(0, 1),
		Hint:      lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
		Success:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		Chart:     lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
		Markdown:  "dark",
	}
}

var themes = map[string]Theme{
	"default": newTheme("default", "#89B4FA", "#a6adc8", "#313244"),
	"green":   newTheme("green", "#a6e3a1", "#94e2d5", "#1e1e2e"),
	"purple":  newTheme("purple", "#cba6f7", "#f5c2e7", "#313244"),
}

// ThemeNamed returns the named theme, falling back to the default one.
func ThemeNamed(name string) Theme {
	if t, ok := themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return themes["default"]
}
