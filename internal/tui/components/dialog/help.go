package dialog

import (
	"fmt"
	"strings"

	"github.com/billie-coop/skillrack/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// HelpSection groups key bindings under a heading.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// HelpDialog renders the key bindings as markdown tables.
type HelpDialog struct {
	*BaseDialog

	sections []HelpSection
	viewport viewport.Model
}

func NewHelpDialog(sections []HelpSection) *HelpDialog {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	return &HelpDialog{
		BaseDialog: NewBaseDialog("Help"),
		sections:   sections,
		viewport:   vp,
	}
}

func (d *HelpDialog) Init() tea.Cmd {
	return nil
}

// Open renders the help text for the current size and theme.
func (d *HelpDialog) Open() tea.Cmd {
	d.render()
	return d.BaseDialog.Open()
}

func (d *HelpDialog) SetSize(width, height int) tea.Cmd {
	d.BaseDialog.SetSize(width, height)
	if d.isOpen {
		d.render()
	}
	return nil
}

func (d *HelpDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "?":
			return d, d.Close()
		}
	}
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

func (d *HelpDialog) View() string {
	if !d.isOpen {
		return ""
	}
	s := styles.CurrentTheme().S()
	return d.RenderDialog(d.viewport.View() + "\n" + s.Subtle.Italic(true).Render("↑/↓ to scroll • esc to close"))
}

func (d *HelpDialog) render() {
	width, height := 70, 20
	if d.Width > 0 {
		width = min(width, d.Width-8)
	}
	if d.Height > 0 {
		height = max(5, min(height, d.Height-10))
	}

	md := HelpMarkdown(d.sections)
	content := md
	if r, err := styles.MarkdownRenderer(width); err == nil {
		if out, err := r.Render(md); err == nil {
			content = strings.TrimRight(out, "\n")
		}
	}

	d.viewport = viewport.New(viewport.WithWidth(width), viewport.WithHeight(height))
	d.viewport.MouseWheelEnabled = true
	d.viewport.SetContent(content)
	d.viewport.GotoTop()
}

// HelpMarkdown lays the bindings out as one table per section.
func HelpMarkdown(sections []HelpSection) string {
	var b strings.Builder
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n| Key | Action |\n| --- | --- |\n", sec.Title)
		for _, kb := range sec.Bindings {
			h := kb.Help()
			if h.Key == "" {
				continue
			}
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}
	return b.String()
}
