// Package results renders the active analysis result of the generate tab.
package results

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/billie-coop/skillrack/internal/export"
	"github.com/billie-coop/skillrack/internal/session"
	"github.com/billie-coop/skillrack/internal/tui/components/core"
	"github.com/billie-coop/skillrack/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
)

const (
	PlaceholderText  = "Upload files on the left to see results here."
	ProgressText     = "Analyzing performance data, please wait..."
	NoPerformersText = "No Performers Found"
)

// Model is a scrollable view of the session's active result.
type Model struct {
	viewport viewport.Model
	state    session.State
	width    int
	height   int
}

var (
	_ core.Component = (*Model)(nil)
	_ core.Sizeable  = (*Model)(nil)
)

func New() *Model {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	return &Model{viewport: vp}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// SetState re-renders for st. The scroll position resets when the visible
// result changes.
func (m *Model) SetState(st session.State) {
	changed := !sameResult(m.state, st)
	m.state = st
	m.viewport.SetContent(Render(st, m.width))
	if changed {
		m.viewport.GotoTop()
	}
}

func (m *Model) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height
	m.viewport = viewport.New(viewport.WithWidth(width), viewport.WithHeight(height))
	m.viewport.MouseWheelEnabled = true
	m.viewport.SetContent(Render(m.state, width))
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	return m.viewport.View()
}

func sameResult(a, b session.State) bool {
	if a.Result == nil || b.Result == nil {
		return a.Result == nil && b.Result == nil
	}
	return a.Result.Variant() == b.Result.Variant() && a.Result.Len() == b.Result.Len() &&
		a.Query == b.Query
}

// Render draws the generate tab for st at the given width.
func Render(st session.State, width int) string {
	s := styles.CurrentTheme().S()
	var parts []string

	if st.Request.LastError != "" {
		parts = append(parts, s.Error.Render(styles.ErrorIcon+" "+st.Request.LastError), "")
	}

	switch {
	case st.ShowPerformanceProgress():
		parts = append(parts, s.Info.Render(ProgressText))
		return strings.Join(parts, "\n")
	case st.ShowPlaceholder():
		parts = append(parts,
			s.Muted.Render(PlaceholderText),
			s.Subtle.Render("Press f to select files, then d, w or p to analyze."),
		)
		return placeCenter(strings.Join(parts, "\n"), width)
	}

	switch r := st.Result.(type) {
	case session.DailyReports:
		parts = append(parts, dailyView(r))
	case session.WeeklyLeaderboard:
		parts = append(parts, weeklyView(r))
	case session.PerformanceRanking:
		parts = append(parts, performanceView(r, st.NoPerformersFound()))
	}

	if mode, ok := st.DownloadMode(); ok {
		parts = append(parts, "",
			s.Key.Render("D")+s.Muted.Render(fmt.Sprintf(" download %s spreadsheet", mode))+"   "+
				s.Key.Render("e")+s.Muted.Render(" export locally"),
		)
	}
	return strings.Join(parts, "\n")
}

func placeCenter(content string, width int) string {
	if width <= 0 {
		return content
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

func dailyView(r session.DailyReports) string {
	s := styles.CurrentTheme().S()
	var blocks []string
	for _, rep := range r.Reports {
		title := s.Title.Render(styles.ChartIcon + " " + rep.Date)
		if rep.YearsText != "" {
			title += s.Muted.Render("  " + rep.YearsText)
		}

		rows := make([][]string, len(rep.Rows))
		for i, row := range rep.Rows {
			rows[i] = []string{
				row.Branch, row.Year,
				itoa(row.Registered), itoa(row.Appeared), itoa(row.Absent),
				itoa(row.ZeroSolved), itoa(row.OneSolved), itoa(row.TwoSolved), itoa(row.ThreeOrMoreSolved),
			}
		}
		t := newTable(export.DailyHeaders, rows, func(row int) lipgloss.Style {
			if row < len(rep.Rows) && rep.Rows[row].IsTotal() {
				return s.TableTotal
			}
			return s.TableCell
		})
		blocks = append(blocks, title, t.Render(), "")
	}
	if len(blocks) == 0 {
		return s.Muted.Render("No reports returned.")
	}
	return strings.Join(blocks[:len(blocks)-1], "\n")
}

func weeklyView(r session.WeeklyLeaderboard) string {
	s := styles.CurrentTheme().S()
	title := s.Title.Render(styles.TrophyIcon + " Weekly Leaderboard")
	if len(r.Rows) == 0 {
		return title + "\n" + s.Muted.Render("No students on the leaderboard.")
	}

	rows := make([][]string, 0, len(r.Rows))
	for _, rk := range session.Rank(r.Rows) {
		rows = append(rows, []string{
			itoa(rk.Rank), rk.Row.Name, rk.Row.Branch, rk.Row.Year,
			itoa(rk.Row.DaysAppeared), itoa(rk.Row.TotalSolved), itoa(rk.Row.TotalSubmissions),
		})
	}
	t := newTable(export.WeeklyHeaders, rows, func(int) lipgloss.Style { return s.TableCell })
	return title + "\n" + t.Render()
}

func performanceView(r session.PerformanceRanking, empty bool) string {
	s := styles.CurrentTheme().S()
	header := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(fmt.Sprintf("%s Top %d Performers", styles.TrophyIcon, r.Query.TopN)),
		s.Subtitle.Render(fmt.Sprintf("%s Rankings", r.Query.Branch)),
	)
	if empty {
		return header + "\n\n" + s.Warning.Render(NoPerformersText)
	}

	rows := make([][]string, 0, len(r.Rows))
	for _, rk := range session.Rank(r.Rows) {
		rows = append(rows, []string{
			itoa(rk.Rank), rk.Row.DisplayRegNo(), rk.Row.Name, rk.Row.Branch, rk.Row.Year,
			itoa(rk.Row.SolvedCount), itoa(rk.Row.TotalSubmissions), rk.Row.DisplayActiveUtilisation(),
		})
	}
	t := newTable(export.PerformanceHeaders, rows, func(row int) lipgloss.Style {
		if row < len(s.Podium) {
			return s.Podium[row]
		}
		return s.TableCell
	})
	return header + "\n" + t.Render()
}

// newTable builds a bordered table; rowStyle gets the zero-based data row.
func newTable(headers []string, rows [][]string, rowStyle func(row int) lipgloss.Style) *table.Table {
	s := styles.CurrentTheme().S()
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.TableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			return rowStyle(row)
		})
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
