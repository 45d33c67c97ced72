package dialog

import (
	"github.com/billie-coop/skillrack/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// ConfirmDialog asks a yes/no question. The result is true when the
// operator confirms. "No" is selected when it opens.
type ConfirmDialog struct {
	*BaseDialog

	question   string
	selectedNo bool
	// repeatKey confirms immediately, so pressing the key that opened the
	// dialog twice acts like a double ctrl+c.
	repeatKey string
}

// NewConfirmDialog creates a confirmation dialog.
func NewConfirmDialog(title, question, repeatKey string) *ConfirmDialog {
	return &ConfirmDialog{
		BaseDialog: NewBaseDialog(title),
		question:   question,
		selectedNo: true,
		repeatKey:  repeatKey,
	}
}

// NewQuitDialog confirms leaving the dashboard.
func NewQuitDialog() *ConfirmDialog {
	return NewConfirmDialog("Quit Skillrack?", "Are you sure you want to quit?", "ctrl+c")
}

// NewLogoutDialog confirms ending the session.
func NewLogoutDialog() *ConfirmDialog {
	return NewConfirmDialog("Logout", "Log out and discard the current results?", "")
}

func (d *ConfirmDialog) Open() tea.Cmd {
	d.selectedNo = true
	return d.BaseDialog.Open()
}

func (d *ConfirmDialog) Init() tea.Cmd {
	return nil
}

func (d *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch key := msg.String(); {
		case d.repeatKey != "" && key == d.repeatKey:
			return d, d.confirm()
		case key == "esc" || key == "n" || key == "N":
			return d, d.Cancel()
		case key == "y" || key == "Y":
			return d, d.confirm()
		case key == "left" || key == "right" || key == "tab" || key == "h" || key == "l":
			d.selectedNo = !d.selectedNo
		case key == "enter" || key == "space":
			if d.selectedNo {
				return d, d.Cancel()
			}
			return d, d.confirm()
		}
	}
	return d, nil
}

func (d *ConfirmDialog) confirm() tea.Cmd {
	d.SetResult(true)
	return d.Close()
}

func (d *ConfirmDialog) View() string {
	if !d.isOpen {
		return ""
	}

	s := styles.CurrentTheme().S()
	question := s.Subtitle.Render(d.question)

	yes, no := s.Button, s.ButtonFocused
	if !d.selectedNo {
		yes, no = s.ButtonFocused, s.Button
	}
	buttons := lipgloss.NewStyle().
		Width(lipgloss.Width(question)).
		Align(lipgloss.Right).
		Render(lipgloss.JoinHorizontal(lipgloss.Center, yes.Render("Yes"), "  ", no.Render("No")))

	help := "y/n • ←/→ to choose • esc to cancel"
	if d.repeatKey != "" {
		help = d.repeatKey + " again to confirm • " + help
	}

	return d.RenderDialog(lipgloss.JoinVertical(lipgloss.Center,
		question,
		"",
		buttons,
		"",
		s.Subtle.Italic(true).Render(help),
	))
}
