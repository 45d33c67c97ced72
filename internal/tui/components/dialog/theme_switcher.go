package dialog

import (
	"strings"

	"github.com/billie-coop/skillrack/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// ThemeSwitcherDialog previews themes as the cursor moves. The result is
// the chosen theme name; cancelling restores the theme it opened with.
type ThemeSwitcherDialog struct {
	*BaseDialog
	themes   []string
	selected int
	original string
}

func NewThemeSwitcher() *ThemeSwitcherDialog {
	return &ThemeSwitcherDialog{BaseDialog: NewBaseDialog("Theme")}
}

func (d *ThemeSwitcherDialog) Init() tea.Cmd {
	return nil
}

func (d *ThemeSwitcherDialog) Open() tea.Cmd {
	manager := styles.DefaultManager()
	d.themes = manager.List()
	d.original = manager.Current().Name
	d.selected = 0
	for i, name := range d.themes {
		if name == d.original {
			d.selected = i
			break
		}
	}
	return d.BaseDialog.Open()
}

func (d *ThemeSwitcherDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if d.selected > 0 {
				d.selected--
				d.preview()
			}
		case "down", "j":
			if d.selected < len(d.themes)-1 {
				d.selected++
				d.preview()
			}
		case "enter":
			d.SetResult(d.themes[d.selected])
			return d, d.Close()
		case "esc", "ctrl+c":
			styles.DefaultManager().SetTheme(d.original)
			return d, d.Cancel()
		}
	}
	return d, nil
}

func (d *ThemeSwitcherDialog) preview() {
	styles.DefaultManager().SetTheme(d.themes[d.selected])
}

func (d *ThemeSwitcherDialog) View() string {
	if !d.isOpen {
		return ""
	}
	s := styles.CurrentTheme().S()

	lines := []string{s.Subtle.Render("↑/↓ to preview • enter to apply • esc to cancel"), ""}
	for i, name := range d.themes {
		label := name
		if name == d.original {
			label += " (current)"
		}
		if i == d.selected {
			lines = append(lines, styles.RenderThemeGradient(styles.CursorIcon+" "+label))
			continue
		}
		lines = append(lines, s.Muted.Render("  "+label))
	}

	lines = append(lines, "",
		s.Success.Render("Success")+" "+
			s.Warning.Render("Warning")+" "+
			s.Error.Render("Error")+" "+
			s.Podium[0].Render("1")+s.Podium[1].Render("2")+s.Podium[2].Render("3"),
	)
	return d.RenderDialog(strings.Join(lines, "\n"))
}
