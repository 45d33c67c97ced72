// Package login is the access key screen shown before admission.
package login

import (
	"github.com/billie-coop/skillrack/internal/tui/components/core"
	"github.com/billie-coop/skillrack/internal/tui/components/dialog"
	"github.com/billie-coop/skillrack/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

const DeniedText = "Invalid access key"

// SubmitMsg carries the key the operator entered.
type SubmitMsg struct {
	Secret string
}

// Model holds the masked key field.
type Model struct {
	core.SizeableBase

	input  *dialog.SimpleTextInput
	denied bool
}

var (
	_ core.Component = (*Model)(nil)
	_ core.Sizeable  = (*Model)(nil)
)

func New() *Model {
	input := dialog.NewSimpleTextInput()
	input.Mask('•')
	input.Placeholder("access key")
	input.Focus()
	return &Model{input: input}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Update edits the key; enter submits it and clears the field.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "enter" {
		secret := m.input.Value()
		m.input.Reset()
		return m, func() tea.Msg { return SubmitMsg{Secret: secret} }
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		m.denied = false
	}
	return m, m.input.Update(msg)
}

// SetDenied shows or hides the rejection message.
func (m *Model) SetDenied(denied bool) {
	m.denied = denied
}

func (m *Model) Denied() bool {
	return m.denied
}

// Reset clears the field and the rejection message.
func (m *Model) Reset() {
	m.input.Reset()
	m.denied = false
}

func (m *Model) View() string {
	s := styles.CurrentTheme().S()

	status := s.Subtle.Render("enter to continue • ctrl+c to quit")
	if m.denied {
		status = s.Error.Render(styles.ErrorIcon + " " + DeniedText)
	}

	box := s.BorderFocused.Padding(1, 3).Width(44).Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.RenderThemeGradient("Skillrack Analytics"),
		s.Muted.Render("Results analysis dashboard"),
		"",
		s.Text.Render(styles.LockIcon+" Access key"),
		s.Border.Width(36).Padding(0, 1).Render(m.input.View()),
		"",
		status,
	))

	if m.Width == 0 || m.Height == 0 {
		return box
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}
