package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinytelemetry/sidenav/internal/sidenav"

	tea "github.com/charmbracelet/bubbletea"
)

func TestApp_RoutesToNavigationPage(t *testing.T) {
	t.Parallel()

	m := NewNavigationModel(sidenav.Default(), Options{})
	app := NewApp(NewNavigationPage(m))
	assert.Equal(t, "navigation", app.ActivePageID())
	assert.Nil(t, app.Init())

	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	app.Update(tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.Equal(t, "my-asset", m.Navigation().Active().ID)
	assert.Equal(t, 1, strings.Count(app.View(), indicatorGlyph))
}

func TestApp_NoPages(t *testing.T) {
	t.Parallel()

	app := NewApp()
	assert.Equal(t, "No active page", app.View())
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	th, err := ThemeByName("mono")
	assert.NoError(t, err)
	assert.Equal(t, "mono", th.Name)

	th, err = ThemeByName("neon")
	assert.Error(t, err)
	assert.Equal(t, "default", th.Name)
	assert.Equal(t, []string{"default", "mono"}, ThemeNames())
}
