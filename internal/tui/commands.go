package tui

import (
	"errors"
	"fmt"

	"github.com/billie-coop/skillrack/internal/session"
	"github.com/billie-coop/skillrack/internal/tui/components/dialog"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// completionMsg carries a finished request back to the update loop.
type completionMsg struct {
	completion session.Completion
}

// run turns a session request into a command. A nil request is a refused
// operation and yields no command.
func (m *Model) run(req session.Request) tea.Cmd {
	if req == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return completionMsg{completion: req(ctx)}
	}
}

// dispatch runs a user-triggered request and shows it as the running
// activity.
func (m *Model) dispatch(req session.Request, label string) tea.Cmd {
	if req == nil {
		return nil
	}
	return tea.Batch(m.statusBar.StartActivity(label), m.run(req))
}

// background runs a request without marking the dashboard busy.
func (m *Model) background(req session.Request) tea.Cmd {
	return m.run(req)
}

func (m *Model) complete(msg completionMsg) tea.Cmd {
	out := m.app.Session.Apply(msg.completion)
	if !m.app.Session.Busy() && m.statusBar.Activity() != "" {
		elapsed := m.statusBar.StopActivity()
		m.log.Debug().Dur("elapsed", elapsed).Msg("activity finished")
	}
	cmd := m.handleOutcome(out)
	m.sync()
	return cmd
}

func (m *Model) handleOutcome(out session.Outcome) tea.Cmd {
	var cmds []tea.Cmd
	if out.Notice != "" {
		cmds = append(cmds, m.dialogManager.Notify(out.Notice))
	}
	if out.Status != "" {
		cmds = append(cmds, m.statusBar.ShowSuccess(out.Status))
	}
	cmds = append(cmds, m.background(out.Follow))
	return tea.Batch(cmds...)
}

// handleKey runs the binding for msg. It reports false for keys it does not
// own so they can reach the focused view.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	s := m.app.Session
	st := s.State()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.dialogManager.OpenDialog(dialog.QuitDialogType), true
	case key.Matches(msg, m.keys.Help):
		return m.dialogManager.OpenDialog(dialog.HelpDialogType), true
	case key.Matches(msg, m.keys.Theme):
		return m.dialogManager.OpenDialog(dialog.ThemeDialogType), true
	case key.Matches(msg, m.keys.Logout):
		return m.dialogManager.OpenDialog(dialog.LogoutDialogType), true

	case key.Matches(msg, m.keys.NextTab):
		if st.Tab == session.TabGenerate {
			s.SetTab(session.TabHistory)
		} else {
			s.SetTab(session.TabGenerate)
		}
		return nil, true
	case key.Matches(msg, m.keys.GenerateTab):
		s.SetTab(session.TabGenerate)
		return nil, true
	case key.Matches(msg, m.keys.HistoryTab):
		s.SetTab(session.TabHistory)
		return nil, true

	case key.Matches(msg, m.keys.SelectFiles):
		return m.dialogManager.OpenDialog(dialog.FilesDialogType), true
	case key.Matches(msg, m.keys.ClearFiles):
		s.ClearFiles()
		return nil, true
	case key.Matches(msg, m.keys.Reset):
		if !s.Reset() {
			return nil, true
		}
		return m.statusBar.ShowInfo("Cleared files and results"), true

	// New results only come from the generate tab.
	case key.Matches(msg, m.keys.Daily, m.keys.Weekly, m.keys.Performance) && st.Tab != session.TabGenerate:
		return nil, true
	case key.Matches(msg, m.keys.Daily):
		return m.dispatch(s.RunDaily(), "Running daily analysis"), true
	case key.Matches(msg, m.keys.Weekly):
		return m.dispatch(s.RunWeekly(), "Running weekly analysis"), true
	case key.Matches(msg, m.keys.Performance):
		q := st.Query
		return m.dispatch(s.RunPerformance(), fmt.Sprintf("Ranking %s top %d", q.Branch, q.TopN)), true

	case key.Matches(msg, m.keys.PrevBranch):
		s.CycleBranch(-1)
		return nil, true
	case key.Matches(msg, m.keys.NextBranch):
		s.CycleBranch(1)
		return nil, true
	case key.Matches(msg, m.keys.LessTopN):
		s.StepTopN(-1)
		return nil, true
	case key.Matches(msg, m.keys.MoreTopN):
		s.StepTopN(1)
		return nil, true

	case key.Matches(msg, m.keys.Download):
		mode, ok := st.DownloadMode()
		if !ok || st.Tab != session.TabGenerate {
			return nil, true
		}
		return m.handleOutcome(s.Download(mode)), true
	case key.Matches(msg, m.keys.Export):
		if st.Tab == session.TabGenerate {
			m.app.Exports.Export(st.Result)
		}
		return nil, true
	}

	if st.Tab != session.TabHistory {
		return nil, false
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		m.history.Move(-1)
		return nil, true
	case key.Matches(msg, m.keys.Down):
		m.history.Move(1)
		return nil, true
	case key.Matches(msg, m.keys.Open):
		entry, ok := m.history.Selected()
		if !ok {
			return nil, true
		}
		return m.dispatch(s.LoadHistoryEntry(entry.ID), "Loading report for "+entry.AnalysisDate), true
	case key.Matches(msg, m.keys.RefreshHistory):
		return tea.Batch(m.background(s.RefreshHistory()), m.statusBar.ShowInfo("Refreshing history")), true
	}
	return nil, false
}

func (m *Model) handleDialogClosed(msg dialog.ClosedMsg) tea.Cmd {
	if msg.Cancelled {
		return nil
	}

	switch msg.Type {
	case dialog.QuitDialogType:
		if ok, _ := msg.Result.(bool); ok {
			m.cancel()
			return tea.Quit
		}
	case dialog.LogoutDialogType:
		if ok, _ := msg.Result.(bool); ok {
			return m.logout()
		}
	case dialog.FilesDialogType:
		if paths, ok := msg.Result.([]string); ok {
			return m.selectFiles(paths)
		}
	case dialog.ThemeDialogType:
		if name, ok := msg.Result.(string); ok && name != "" {
			if err := m.app.Settings.SetTheme(name); err != nil {
				m.log.Error().Err(err).Msg("theme not saved")
			}
		}
	}
	return nil
}

// selectFiles expands typed paths and replaces the selection. Nothing is
// replaced when expansion fails or finds no files.
func (m *Model) selectFiles(paths []string) tea.Cmd {
	files, err := session.ExpandPaths(paths)
	switch {
	case errors.Is(err, session.ErrNoMatch):
		return m.dialogManager.Notify(err.Error())
	case err != nil:
		m.log.Warn().Err(err).Strs("paths", paths).Msg("file selection failed")
		return m.dialogManager.Notify("Could not read selection: " + err.Error())
	case len(files) == 0:
		return m.dialogManager.Notify("No spreadsheet files found")
	}

	m.app.Session.SetFiles(files)
	m.sync()
	return m.statusBar.ShowSuccess(fmt.Sprintf("Selected %d file(s)", len(files)))
}
