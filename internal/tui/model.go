// Package tui is the dashboard's Bubble Tea program. All session state is
// mutated here, on the update loop; network calls run as commands and come
// back as completions.
package tui

import (
	"context"

	"github.com/billie-coop/skillrack/internal/app"
	"github.com/billie-coop/skillrack/internal/session"
	"github.com/billie-coop/skillrack/internal/tui/components/core"
	"github.com/billie-coop/skillrack/internal/tui/components/dialog"
	"github.com/billie-coop/skillrack/internal/tui/components/history"
	"github.com/billie-coop/skillrack/internal/tui/components/login"
	"github.com/billie-coop/skillrack/internal/tui/components/results"
	"github.com/billie-coop/skillrack/internal/tui/components/sidebar"
	"github.com/billie-coop/skillrack/internal/tui/components/status"
	"github.com/billie-coop/skillrack/internal/tui/events"
	"github.com/billie-coop/skillrack/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/rs/zerolog"
)

// Model is the root model.
type Model struct {
	width  int
	height int

	app  *app.App
	keys KeyMap
	log  zerolog.Logger

	// ctx is cancelled on logout so abandoned requests stop early.
	ctx    context.Context
	cancel context.CancelFunc

	login         *login.Model
	sidebar       *sidebar.Model
	results       *results.Model
	history       *history.Model
	statusBar     *status.Component
	dialogManager *dialog.Manager

	eventBroker *events.Broker
	eventSub    <-chan events.Event
}

// New creates the root model for an app instance.
func New(a *app.App) *Model {
	styles.SetDefaultManager(styles.NewManager(a.Config.Get().Theme))

	keys := DefaultKeyMap()
	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		app:           a,
		keys:          keys,
		log:           a.Log.With().Str("component", "tui").Logger(),
		ctx:           ctx,
		cancel:        cancel,
		login:         login.New(),
		sidebar:       sidebar.New(a.Client.BaseURL()),
		results:       results.New(),
		history:       history.New(),
		statusBar:     status.New(),
		dialogManager: dialog.NewManager(a.EventBroker, keys.HelpSections()),
		eventBroker:   a.EventBroker,
	}
	m.eventSub = a.EventBroker.Subscribe()
	m.sync()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.dialogManager.Init(),
		m.statusBar.Init(),
		m.listenForEvents(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case events.Event:
		cmd := m.handleEvent(msg)
		return m, tea.Batch(cmd, m.listenForEvents())

	case completionMsg:
		return m, m.complete(msg)

	case dialog.ClosedMsg:
		return m, m.handleDialogClosed(msg)

	case login.SubmitMsg:
		return m, m.submitSecret(msg.Secret)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.resizeComponents()

	case core.TickMsg:
		_, cmd := m.statusBar.Update(msg)
		return m, cmd
	}

	if m.dialogManager.IsDialogOpen() {
		_, cmd := m.dialogManager.Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, cmd
		}
		_, statusCmd := m.statusBar.Update(msg)
		return m, tea.Batch(cmd, statusCmd)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if !m.app.Session.Admitted() {
			return m, m.handleLoginKey(keyMsg)
		}
		if cmd, handled := m.handleKey(keyMsg); handled {
			m.sync()
			return m, cmd
		}
	}

	var cmds []tea.Cmd
	_, cmd := m.statusBar.Update(msg)
	cmds = append(cmds, cmd)
	if m.app.Session.State().Tab == session.TabGenerate {
		_, cmd = m.results.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleLoginKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return m.dialogManager.OpenDialog(dialog.QuitDialogType)
	}
	_, cmd := m.login.Update(msg)
	return cmd
}

func (m *Model) submitSecret(secret string) tea.Cmd {
	adm, refresh := m.app.Session.SubmitSecret(secret)
	if adm == session.Denied {
		m.login.SetDenied(true)
		return nil
	}
	m.login.Reset()
	m.sync()
	return tea.Batch(
		m.background(refresh),
		m.statusBar.ShowSuccess("Welcome. Press ? for help."),
	)
}

// logout drops the session and abandons in-flight requests.
func (m *Model) logout() tea.Cmd {
	m.cancel()
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.app.Session.Logout()
	m.dialogManager.CloseAll()
	m.statusBar.StopActivity()
	m.login.Reset()
	m.sync()
	return m.statusBar.ShowInfo("Logged out")
}

// sync pushes the session snapshot into the components.
func (m *Model) sync() {
	st := m.app.Session.State()
	m.sidebar.SetState(st)
	m.results.SetState(st)
	m.history.SetEntries(st.History)

	switch {
	case !st.Admitted:
		m.statusBar.SetHint("locked")
	case st.Tab == session.TabHistory:
		m.statusBar.SetHint("j/k move • enter view • R refresh • ? help")
	default:
		m.statusBar.SetHint("f files • d/w/p analyze • ? help")
	}
}

func (m *Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m *Model) render() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.dialogManager.IsDialogOpen() {
		if v := m.dialogManager.View(); v != "" {
			return v
		}
	}

	statusView := m.statusBar.View()
	if !m.app.Session.Admitted() {
		return lipgloss.JoinVertical(lipgloss.Left, m.login.View(), statusView)
	}

	st := m.app.Session.State()
	main := m.results.View()
	if st.Tab == session.TabHistory {
		main = m.history.View()
	}
	mainView := lipgloss.NewStyle().
		Width(m.mainWidth()).
		Height(m.bodyHeight()).
		PaddingLeft(1).
		Render(main)

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), mainView)
	return lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(st.Tab), body, statusView)
}

func (m *Model) renderTabs(active session.Tab) string {
	s := styles.CurrentTheme().S()
	tabs := []struct {
		tab   session.Tab
		label string
	}{
		{session.TabGenerate, "1 Generate Report"},
		{session.TabHistory, "2 History"},
	}

	var out []string
	for _, t := range tabs {
		style := s.Button
		if t.tab == active {
			style = s.ButtonFocused
		}
		out = append(out, style.Render(t.label))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, out[0], " ", out[1])
	return lipgloss.NewStyle().Width(m.width).MarginBottom(1).Render(bar)
}
