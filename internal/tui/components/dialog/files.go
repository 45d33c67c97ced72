package dialog

import (
	"strings"

	"github.com/billie-coop/skillrack/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// FilesDialog collects the paths of the files to analyze. The result is
// the list of entries the operator typed, split on commas.
type FilesDialog struct {
	*BaseDialog
	input *SimpleTextInput
}

func NewFilesDialog() *FilesDialog {
	input := NewSimpleTextInput()
	input.Placeholder("~/reports/*.xlsx, ./day1.csv")
	return &FilesDialog{
		BaseDialog: NewBaseDialog(styles.FolderIcon + " Select files"),
		input:      input,
	}
}

func (d *FilesDialog) Open() tea.Cmd {
	d.input.Reset()
	d.input.Focus()
	return d.BaseDialog.Open()
}

func (d *FilesDialog) Init() tea.Cmd {
	return nil
}

func (d *FilesDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			d.input.Blur()
			return d, d.Cancel()
		case "enter":
			paths := SplitPaths(d.input.Value())
			if len(paths) == 0 {
				return d, nil
			}
			d.SetResult(paths)
			d.input.Blur()
			return d, d.Close()
		}
	}
	return d, d.input.Update(msg)
}

func (d *FilesDialog) View() string {
	if !d.isOpen {
		return ""
	}
	s := styles.CurrentTheme().S()

	width := 64
	if d.Width > 0 {
		width = min(width, d.Width-8)
	}
	return d.RenderDialog(lipgloss.JoinVertical(lipgloss.Left,
		s.Muted.Render("Files, directories or globs, separated by commas."),
		s.Muted.Render("Accepted: .xlsx .xls .csv"),
		"",
		s.Border.Width(width).Padding(0, 1).Render(d.input.View()),
		"",
		s.Subtle.Italic(true).Render("enter to select • esc to cancel"),
	))
}

// SplitPaths splits comma separated input, dropping blank entries.
func SplitPaths(input string) []string {
	var out []string
	for _, p := range strings.Split(input, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
