package tui

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

const (
	tabsHeight   = 2
	statusHeight = 1
)

func (m *Model) resizeComponents() tea.Cmd {
	body := m.bodyHeight()
	return tea.Batch(
		m.login.SetSize(m.width, m.height-statusHeight),
		m.sidebar.SetSize(m.sidebarWidth(), body),
		m.results.SetSize(m.mainWidth()-1, body),
		m.history.SetSize(m.mainWidth()-1, body),
		m.statusBar.SetSize(m.width, statusHeight),
		m.dialogManager.SetSize(m.width, m.height),
	)
}

func (m *Model) sidebarWidth() int {
	switch {
	case m.width < 80:
		return 24
	case m.width < 120:
		return 30
	}
	return 36
}

func (m *Model) mainWidth() int {
	return max(10, m.width-m.sidebarWidth())
}

func (m *Model) bodyHeight() int {
	return max(3, m.height-tabsHeight-statusHeight)
}
