package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/sidenav/internal/model"
	"github.com/tinytelemetry/sidenav/internal/sidenav"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) *NavigationModel {
	t.Helper()
	m := NewNavigationModel(sidenav.Default(), Options{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func click(m *NavigationModel, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// rowY returns the screen row of the item at flat index idx.
func rowY(t *testing.T, m *NavigationModel, idx int) int {
	t.Helper()
	_, rowToIndex := m.buildSidebarLines()
	for line, i := range rowToIndex {
		if i == idx {
			return line + sidebarTopRows
		}
	}
	t.Fatalf("row %d not rendered", idx)
	return -1
}

func TestNewNavigationModel_Defaults(t *testing.T) {
	t.Parallel()

	m := NewNavigationModel(sidenav.Default(), Options{})
	assert.Equal(t, model.DefaultSidebarWidth, m.sidebarWidth)
	assert.Equal(t, model.DefaultSkin, m.theme.Name)
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, "dashboard", m.Navigation().Active().ID)
}

func TestBuildSidebarLines_Layout(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	lines, rowToIndex := m.buildSidebarLines()

	// MENU + 5 rows, spacer, GENERAL + 3 rows.
	require.Len(t, lines, 11)
	assert.Len(t, rowToIndex, 8)
	assert.Contains(t, lines[0], "MENU")
	assert.Contains(t, lines[7], "GENERAL")
	assert.Equal(t, 0, rowToIndex[1])
	assert.Equal(t, 5, rowToIndex[8])

	indicators := 0
	for _, l := range lines {
		indicators += strings.Count(l, indicatorGlyph)
	}
	assert.Equal(t, 1, indicators)
	assert.Contains(t, lines[1], indicatorGlyph)
	assert.Contains(t, lines[1], "Dashboard")
}

func TestMouseClick_SelectsRow(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	click(m, 2, rowY(t, m, 1))

	assert.Equal(t, "My Asset", m.nav.Active().Label)
	assert.Equal(t, 1, m.cursor)

	lines, _ := m.buildSidebarLines()
	assert.Contains(t, lines[2], indicatorGlyph)
	assert.NotContains(t, lines[1], indicatorGlyph)
}

func TestMouseClick_IndicatorFollowsSelection(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	click(m, 2, rowY(t, m, 2))

	view := m.View()
	assert.Equal(t, 1, strings.Count(view, indicatorGlyph))
	assert.Equal(t, "Analytics", m.nav.Active().Label)

	lines, _ := m.buildSidebarLines()
	assert.Contains(t, lines[3], indicatorGlyph)
	assert.Contains(t, lines[3], "Analytics")
}

func TestMouseClick_IgnoresTitlesAndOutside(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	lines, _ := m.buildSidebarLines()

	// Top border, MENU title, spacer, GENERAL title, below the list.
	for _, y := range []int{0, sidebarTopRows, sidebarTopRows + 6, sidebarTopRows + 7, sidebarTopRows + len(lines) + 2} {
		click(m, 2, y)
	}
	// Content pane, on the same row as an item.
	click(m, m.sidebarWidth+1, rowY(t, m, 3))

	assert.Equal(t, "dashboard", m.nav.Active().ID)
}

func TestMouseClick_ActiveRowIsIdempotent(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	click(m, 2, rowY(t, m, 4))
	before := m.View()
	state := m.nav.State()

	click(m, 2, rowY(t, m, 4))
	assert.Equal(t, state, m.nav.State())
	assert.Equal(t, before, m.View())
}

func TestKeys_CursorThenSelect(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	// Moving the cursor alone does not change the active item.
	assert.Equal(t, 2, m.cursor)
	assert.Equal(t, "dashboard", m.nav.Active().ID)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "analytics", m.nav.Active().ID)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor, "cursor clamps at the first row")
}

func TestKeys_Quit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMouseWheel_MovesCursor(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 1, m.cursor)

	m.reverseScrollWheel = true
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 0, m.cursor)
}

func TestView_TooSmall(t *testing.T) {
	t.Parallel()

	m := NewNavigationModel(sidenav.Default(), Options{})
	assert.Equal(t, "Initializing...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 30, Height: 5})
	assert.Contains(t, m.View(), "Terminal too small")
}

func TestView_ShowsActiveLabel(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	click(m, 2, rowY(t, m, 6))

	view := m.View()
	assert.Contains(t, view, "GENERAL /")
	assert.Contains(t, view, "Help")
}
