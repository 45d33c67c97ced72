package dialog

import (
	"github.com/billie-coop/skillrack/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// NoticeDialog shows a blocking message the operator has to acknowledge.
type NoticeDialog struct {
	*BaseDialog
	message string
}

func NewNoticeDialog() *NoticeDialog {
	return &NoticeDialog{BaseDialog: NewBaseDialog("Notice")}
}

// SetMessage sets the text shown the next time the dialog opens.
func (d *NoticeDialog) SetMessage(message string) {
	d.message = message
}

func (d *NoticeDialog) Message() string {
	return d.message
}

func (d *NoticeDialog) Init() tea.Cmd {
	return nil
}

func (d *NoticeDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "esc", "space", "q":
			return d, d.Close()
		}
	}
	return d, nil
}

func (d *NoticeDialog) View() string {
	if !d.isOpen {
		return ""
	}
	s := styles.CurrentTheme().S()

	width := 60
	if d.Width > 0 {
		width = min(width, d.Width-8)
	}
	return d.RenderDialog(lipgloss.JoinVertical(lipgloss.Left,
		s.Warning.Width(width).Render(styles.WarningIcon+" "+d.message),
		"",
		s.Subtle.Italic(true).Render("enter to dismiss"),
	))
}
