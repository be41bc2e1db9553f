package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the colors used to draw the navigation sidebar.
type Theme struct {
	Name      string
	Border    lipgloss.Color
	Title     lipgloss.Color
	Item      lipgloss.Color
	Active    lipgloss.Color
	ActiveBg  lipgloss.Color
	Indicator lipgloss.Color
	Muted     lipgloss.Color
}

var themes = map[string]Theme{
	"default": {
		Name:      "default",
		Border:    lipgloss.Color("240"),
		Title:     lipgloss.Color("245"),
		Item:      lipgloss.Color("252"),
		Active:    lipgloss.Color("15"),
		ActiveBg:  lipgloss.Color("24"),
		Indicator: lipgloss.Color("39"),
		Muted:     lipgloss.Color("241"),
	},
	"mono": {
		Name:      "mono",
		Border:    lipgloss.Color("7"),
		Title:     lipgloss.Color("7"),
		Item:      lipgloss.Color("7"),
		Active:    lipgloss.Color("0"),
		ActiveBg:  lipgloss.Color("7"),
		Indicator: lipgloss.Color("0"),
		Muted:     lipgloss.Color("8"),
	},
}

// ThemeNames lists the available skins.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns the named skin. Unknown names return the default
// skin together with an error so callers can warn and continue.
func ThemeByName(name string) (Theme, error) {
	if t, ok := themes[name]; ok {
		return t, nil
	}
	return themes["default"], fmt.Errorf("unknown skin %q (available: %v)", name, ThemeNames())
}
