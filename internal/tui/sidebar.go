package tui

import (
	"github.com/tinytelemetry/sidenav/internal/sidenav"

	"github.com/charmbracelet/lipgloss"
)

const (
	// Rows drawn above the first sidebar line (top border).
	sidebarTopRows = 1
	indicatorGlyph = "▌"
)

func (m *NavigationModel) clampCursor() {
	n := m.nav.Len()
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

func (m *NavigationModel) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

// buildSidebarLines renders the widget tree into terminal lines and maps
// each line that holds an item row to that row's flat index.
func (m *NavigationModel) buildSidebarLines() ([]string, map[int]int) {
	root := m.nav.Render()
	rowToIndex := make(map[int]int)
	lines := make([]string, 0, m.nav.Len()+2*len(root.Children))

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Title)
	itemStyle := lipgloss.NewStyle().Foreground(m.theme.Item)
	cursorStyle := lipgloss.NewStyle().Foreground(m.theme.Indicator).Bold(true)
	activeStyle := lipgloss.NewStyle().Foreground(m.theme.Active).Background(m.theme.ActiveBg).Bold(true)
	indicatorStyle := lipgloss.NewStyle().Foreground(m.theme.Indicator).Background(m.theme.ActiveBg)

	maxLabelWidth := m.sidebarWidth - 6
	row := 0

	for i, section := range root.FindAll(sidenav.ClassSection) {
		if i > 0 {
			lines = append(lines, "")
		}
		if title := section.Find(sidenav.ClassSectionTitle); title != nil {
			lines = append(lines, titleStyle.Render(title.TextContent()))
		}

		for _, item := range section.FindAll(sidenav.ClassMenuItem) {
			label := truncateLabel(item.Find(sidenav.ClassMenuItemText).TextContent(), maxLabelWidth)

			var line string
			switch {
			case item.Find(sidenav.ClassIndicator) != nil:
				line = indicatorStyle.Render(indicatorGlyph) + activeStyle.Render(" "+label+" ")
			case row == m.cursor:
				line = "  " + cursorStyle.Render(label)
			default:
				line = "  " + itemStyle.Render(label)
			}

			rowToIndex[len(lines)] = row
			lines = append(lines, line)
			row++
		}
	}

	return lines, rowToIndex
}

// sidebarRowAtMouse resolves a mouse row to an item index.
func (m *NavigationModel) sidebarRowAtMouse(y int) (int, bool) {
	_, rowToIndex := m.buildSidebarLines()
	idx, ok := rowToIndex[y-sidebarTopRows]
	return idx, ok
}

// renderSidebar draws the navigation in a bordered column of the given
// outer height.
func (m *NavigationModel) renderSidebar(height int) string {
	m.clampCursor()

	style := lipgloss.NewStyle().
		Width(m.sidebarWidth-2).
		Height(max(height-2, 1)).
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)

	lines, _ := m.buildSidebarLines()
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func truncateLabel(label string, width int) string {
	r := []rune(label)
	if width > 3 && len(r) > width {
		return string(r[:width-1]) + "~"
	}
	return label
}
