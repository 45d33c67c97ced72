package dialog

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

// Dialog represents a modal dialog component
type Dialog interface {
	Init() tea.Cmd
	Update(tea.Msg) (tea.Model, tea.Cmd)
	View() string
	SetSize(width, height int) tea.Cmd

	IsOpen() bool
	Open() tea.Cmd
	Close() tea.Cmd

	// Result is the dialog's answer once it has closed. Its type depends
	// on the dialog.
	Result() any
	IsCancelled() bool
}
