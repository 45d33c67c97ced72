// Package history renders the cached list of past analyses with a cursor.
package history

import (
	"strconv"

	"github.com/billie-coop/skillrack/internal/api"
	"github.com/billie-coop/skillrack/internal/tui/components/core"
	"github.com/billie-coop/skillrack/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
)

var headers = []string{"Date", "Students", "Generated At", ""}

// chrome is the number of lines around the visible rows: title, blank,
// table borders, header and the footer hint.
const chrome = 7

// Model is the history tab.
type Model struct {
	core.SizeableBase

	entries []api.HistoryEntry
	cursor  int
	offset  int
}

var (
	_ core.Component = (*Model)(nil)
	_ core.Sizeable  = (*Model)(nil)
)

func New() *Model {
	return &Model{}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// SetEntries replaces the rows. The cursor stays on the same entry id when
// it is still listed.
func (m *Model) SetEntries(entries []api.HistoryEntry) {
	var selected int64 = -1
	if e, ok := m.Selected(); ok {
		selected = e.ID
	}
	m.entries = entries
	m.cursor = 0
	for i, e := range entries {
		if e.ID == selected {
			m.cursor = i
			break
		}
	}
	m.scroll()
}

// Move shifts the cursor by delta, clamped to the list.
func (m *Model) Move(delta int) {
	if len(m.entries) == 0 {
		return
	}
	m.cursor = max(0, min(len(m.entries)-1, m.cursor+delta))
	m.scroll()
}

// Selected returns the entry under the cursor.
func (m *Model) Selected() (api.HistoryEntry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return api.HistoryEntry{}, false
	}
	return m.entries[m.cursor], true
}

func (m *Model) visibleRows() int {
	if m.Height <= chrome {
		return max(1, len(m.entries))
	}
	return m.Height - chrome
}

func (m *Model) scroll() {
	n := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+n {
		m.offset = m.cursor - n + 1
	}
	m.offset = max(0, min(m.offset, max(0, len(m.entries)-n)))
}

func (m *Model) View() string {
	s := styles.CurrentTheme().S()
	title := s.Title.Render(styles.ClockIcon + " Analysis History")

	if len(m.entries) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, "",
			s.Muted.Render("No saved analyses yet. Daily and weekly runs are recorded here."),
		)
	}

	end := min(len(m.entries), m.offset+m.visibleRows())
	visible := m.entries[m.offset:end]
	rows := make([][]string, len(visible))
	for i, e := range visible {
		action := ""
		if m.offset+i == m.cursor {
			action = "enter to view"
		}
		rows[i] = []string{e.AnalysisDate, strconv.Itoa(e.TotalStudents), e.Timestamp, action}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.TableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.TableHeader
			case m.offset+row == m.cursor:
				return s.TableSelected
			}
			return s.TableCell
		})

	footer := s.Subtle.Render(strconv.Itoa(m.cursor+1) + "/" + strconv.Itoa(len(m.entries)) +
		" • j/k to move • enter to view • R to refresh")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", t.Render(), footer)
}
