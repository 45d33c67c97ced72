package dialog

import (
	"github.com/billie-coop/skillrack/internal/tui/components/core"
	"github.com/billie-coop/skillrack/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// BaseDialog provides common dialog functionality
type BaseDialog struct {
	core.SizeableBase

	title     string
	isOpen    bool
	result    any
	cancelled bool
}

// NewBaseDialog creates a new base dialog
func NewBaseDialog(title string) *BaseDialog {
	return &BaseDialog{title: title}
}

func (d *BaseDialog) IsOpen() bool {
	return d.isOpen
}

// Open opens the dialog and clears any previous answer.
func (d *BaseDialog) Open() tea.Cmd {
	d.isOpen = true
	d.cancelled = false
	d.result = nil
	return nil
}

func (d *BaseDialog) Close() tea.Cmd {
	d.isOpen = false
	return nil
}

// Cancel closes the dialog as cancelled
func (d *BaseDialog) Cancel() tea.Cmd {
	d.cancelled = true
	return d.Close()
}

func (d *BaseDialog) Result() any {
	return d.result
}

func (d *BaseDialog) IsCancelled() bool {
	return d.cancelled
}

func (d *BaseDialog) SetResult(result any) {
	d.result = result
}

func (d *BaseDialog) SetTitle(title string) {
	d.title = title
}

// RenderDialog centers the framed content in the dialog's area.
func (d *BaseDialog) RenderDialog(content string) string {
	if !d.isOpen {
		return ""
	}

	s := styles.CurrentTheme().S()
	if d.title != "" {
		content = lipgloss.JoinVertical(lipgloss.Left,
			s.Title.MarginBottom(1).Render(d.title),
			content,
		)
	}
	framed := s.BorderFocused.Padding(1, 2).Render(content)

	if d.Width == 0 || d.Height == 0 {
		return framed
	}
	return lipgloss.Place(d.Width, d.Height, lipgloss.Center, lipgloss.Center, framed)
}

// HandleEscape handles the escape key
func (d *BaseDialog) HandleEscape() tea.Cmd {
	if d.isOpen {
		return d.Cancel()
	}
	return nil
}
