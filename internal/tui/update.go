package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages
func (m *NavigationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)
	}

	return m, nil
}

func (m *NavigationModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Select):
		m.activate(m.cursor)
	}
	return m, nil
}

// handleMouseEvent processes mouse interactions
func (m *NavigationModel) handleMouseEvent(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		return m.handleMouseClick(msg.X, msg.Y)

	case tea.MouseButtonWheelUp:
		if m.reverseScrollWheel {
			m.moveCursor(1)
		} else {
			m.moveCursor(-1)
		}

	case tea.MouseButtonWheelDown:
		if m.reverseScrollWheel {
			m.moveCursor(-1)
		} else {
			m.moveCursor(1)
		}
	}

	return m, nil
}

// handleMouseClick selects the item row under the pointer. Clicks outside
// the sidebar or on titles and spacing are ignored.
func (m *NavigationModel) handleMouseClick(x, y int) (tea.Model, tea.Cmd) {
	if x >= m.sidebarWidth {
		return m, nil
	}
	if idx, ok := m.sidebarRowAtMouse(y); ok {
		m.activate(idx)
	}
	return m, nil
}

func (m *NavigationModel) activate(idx int) {
	prev := m.nav.Active()
	changed, err := m.nav.SelectIndex(idx)
	if err != nil {
		log.Printf("tui: %v", err)
		return
	}
	m.cursor = idx
	if changed {
		log.Printf("tui: active item %s -> %s", prev.ID, m.nav.Active().ID)
	}
}
