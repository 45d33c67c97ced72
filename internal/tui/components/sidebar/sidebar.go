// Package sidebar shows the file selection, performance controls and the
// actions available for the current state.
package sidebar

import (
	"fmt"
	"strings"

	"github.com/billie-coop/skillrack/internal/session"
	"github.com/billie-coop/skillrack/internal/tui/components/core"
	"github.com/billie-coop/skillrack/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// maxFiles caps the file names listed before collapsing to a count.
const maxFiles = 8

type Model struct {
	core.SizeableBase

	state   session.State
	service string
}

var (
	_ core.Component = (*Model)(nil)
	_ core.Sizeable  = (*Model)(nil)
)

func New(service string) *Model {
	return &Model{service: service}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

func (m *Model) SetState(st session.State) {
	m.state = st
}

func (m *Model) View() string {
	s := styles.CurrentTheme().S()
	inner := max(10, m.Width-4)
	st := m.state

	var b strings.Builder
	b.WriteString(styles.RenderThemeGradient("Skillrack"))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("Results analysis"))
	b.WriteString("\n\n")

	b.WriteString(s.Subtitle.Render(fmt.Sprintf("%s Files (%d)", styles.FolderIcon, len(st.Files))))
	b.WriteString("\n")
	if len(st.Files) == 0 {
		b.WriteString(s.Subtle.Render("  none selected"))
		b.WriteString("\n")
	}
	for i, f := range st.Files {
		if i == maxFiles {
			b.WriteString(s.Subtle.Render(fmt.Sprintf("  +%d more", len(st.Files)-maxFiles)))
			b.WriteString("\n")
			break
		}
		name := lipgloss.NewStyle().MaxWidth(inner - 4).Render(f.Name)
		b.WriteString(s.Text.Render("  " + styles.DocumentIcon + " " + name))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.Subtitle.Render("Performance"))
	b.WriteString("\n")
	b.WriteString(row(s, "[ ]", "Branch", string(st.Query.Branch)))
	b.WriteString(row(s, "- +", "Top N", fmt.Sprintf("%d", st.Query.TopN)))
	b.WriteString("\n")

	ready := st.Admitted && st.Tab == session.TabGenerate && !st.Request.InFlight && len(st.Files) > 0
	b.WriteString(s.Subtitle.Render("Analyze"))
	b.WriteString("\n")
	b.WriteString(action(s, "d", "Daily analysis", ready))
	b.WriteString(action(s, "w", "Weekly leaderboard", ready))
	b.WriteString(action(s, "p", "Performance ranking", ready))
	b.WriteString("\n")

	idle := !st.Request.InFlight
	b.WriteString(action(s, "f", "Select files", true))
	b.WriteString(action(s, "x", "Clear files", len(st.Files) > 0))
	b.WriteString(action(s, "r", "Reset", idle))
	b.WriteString("\n")

	if m.service != "" {
		b.WriteString(s.Subtle.Render("Service"))
		b.WriteString("\n")
		b.WriteString(s.Muted.Render(lipgloss.NewStyle().MaxWidth(inner).Render(m.service)))
	}

	box := s.Border.Padding(0, 1)
	if m.Width > 0 {
		box = box.Width(m.Width)
	}
	if m.Height > 0 {
		box = box.Height(m.Height)
	}
	return box.Render(strings.TrimRight(b.String(), "\n"))
}

func row(s *styles.Styles, keys, label, value string) string {
	return "  " + s.Key.Render(keys) + " " + s.Muted.Render(label+": ") + s.Bold.Render(value) + "\n"
}

func action(s *styles.Styles, key, label string, enabled bool) string {
	if !enabled {
		return "  " + s.Subtle.Render(key+" "+label) + "\n"
	}
	return "  " + s.Key.Render(key) + " " + s.Text.Render(label) + "\n"
}
