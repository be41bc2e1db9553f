package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const minContentWidth = 20

// minHeight is the smallest terminal that fits every sidebar line, its
// border and the help line.
func (m *NavigationModel) minHeight() int {
	lines, _ := m.buildSidebarLines()
	return len(lines) + 3
}

// View renders the sidebar, the active item pane and the help line.
func (m *NavigationModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing..."
	}

	if m.width < m.sidebarWidth+minContentWidth || m.height < m.minHeight() {
		return fmt.Sprintf("Terminal too small. Resize to at least %dx%d.", m.sidebarWidth+minContentWidth, m.minHeight())
	}

	bodyHeight := m.height - 1
	sidebar := m.renderSidebar(bodyHeight)
	content := m.renderContent(m.width-m.sidebarWidth, bodyHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keys))
}

// renderContent shows which item is active. Selection has no routing
// effect so this is all the main pane does.
func (m *NavigationModel) renderContent(width, height int) string {
	active := m.nav.Active()

	var sectionTitle string
	for _, s := range m.nav.Sections() {
		if s.ID == active.SectionID {
			sectionTitle = s.Title
			break
		}
	}

	crumb := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(sectionTitle + " /")
	label := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Active).Render(active.Label)

	return lipgloss.NewStyle().
		Width(width-2).
		Height(max(height-2, 1)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, crumb, label))
}
