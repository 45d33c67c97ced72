package core

import tea "github.com/charmbracelet/bubbletea/v2"

// SizeableBase is embedded by components that only record their size.
type SizeableBase struct {
	Width  int
	Height int
}

func (s *SizeableBase) SetSize(width, height int) tea.Cmd {
	s.Width = width
	s.Height = height
	return nil
}
