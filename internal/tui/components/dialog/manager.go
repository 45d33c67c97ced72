package dialog

import (
	"github.com/billie-coop/skillrack/internal/tui/events"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// DialogType identifies the type of dialog
type DialogType string

const (
	QuitDialogType   DialogType = "quit"
	LogoutDialogType DialogType = "logout"
	NoticeDialogType DialogType = "notice"
	FilesDialogType  DialogType = "files"
	HelpDialogType   DialogType = "help"
	ThemeDialogType  DialogType = "theme"
)

// ClosedMsg is delivered to the program when a dialog closes.
type ClosedMsg struct {
	Type      DialogType
	Result    any
	Cancelled bool
}

// Manager owns the dialogs and routes input to the open one. Only one
// dialog is open at a time; notices raised meanwhile wait their turn.
type Manager struct {
	dialogs      map[DialogType]Dialog
	notice       *NoticeDialog
	activeDialog DialogType
	pending      []string
	eventBroker  *events.Broker
	width        int
	height       int
}

// NewManager creates a new dialog manager
func NewManager(eventBroker *events.Broker, help []HelpSection) *Manager {
	notice := NewNoticeDialog()
	return &Manager{
		dialogs: map[DialogType]Dialog{
			QuitDialogType:   NewQuitDialog(),
			LogoutDialogType: NewLogoutDialog(),
			NoticeDialogType: notice,
			FilesDialogType:  NewFilesDialog(),
			HelpDialogType:   NewHelpDialog(help),
			ThemeDialogType:  NewThemeSwitcher(),
		},
		notice:      notice,
		eventBroker: eventBroker,
	}
}

func (m *Manager) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, d := range m.dialogs {
		cmds = append(cmds, d.Init())
	}
	return tea.Batch(cmds...)
}

// Update forwards msg to the open dialog and reports when it closes.
func (m *Manager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		return m, m.SetSize(wsm.Width, wsm.Height)
	}
	if m.activeDialog == "" {
		return m, nil
	}

	id := m.activeDialog
	model, cmd := m.dialogs[id].Update(msg)
	d, ok := model.(Dialog)
	if !ok {
		return m, cmd
	}
	m.dialogs[id] = d
	if d.IsOpen() {
		return m, cmd
	}

	m.activeDialog = ""
	closed := ClosedMsg{Type: id, Result: d.Result(), Cancelled: d.IsCancelled()}
	m.eventBroker.Publish(events.Event{
		Type: events.DialogCloseEvent,
		Payload: events.DialogPayload{
			DialogID:  string(id),
			Data:      closed.Result,
			Cancelled: closed.Cancelled,
		},
	})

	cmds := []tea.Cmd{cmd, func() tea.Msg { return closed }}
	if len(m.pending) > 0 {
		next := m.pending[0]
		m.pending = m.pending[1:]
		cmds = append(cmds, m.openNotice(next))
	}
	return m, tea.Batch(cmds...)
}

func (m *Manager) View() string {
	if m.activeDialog == "" {
		return ""
	}
	return m.dialogs[m.activeDialog].View()
}

func (m *Manager) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height

	var cmds []tea.Cmd
	for _, d := range m.dialogs {
		cmds = append(cmds, d.SetSize(width, height))
	}
	return tea.Batch(cmds...)
}

// OpenDialog opens a dialog unless another one is already open.
func (m *Manager) OpenDialog(dialogType DialogType) tea.Cmd {
	d, ok := m.dialogs[dialogType]
	if !ok || m.activeDialog != "" {
		return nil
	}
	m.activeDialog = dialogType
	m.eventBroker.Publish(events.Event{
		Type:    events.DialogOpenEvent,
		Payload: events.DialogPayload{DialogID: string(dialogType)},
	})
	return d.Open()
}

// Notify shows message in the notice dialog now, or after the open dialog
// closes.
func (m *Manager) Notify(message string) tea.Cmd {
	if m.activeDialog != "" {
		m.pending = append(m.pending, message)
		return nil
	}
	return m.openNotice(message)
}

func (m *Manager) openNotice(message string) tea.Cmd {
	m.notice.SetMessage(message)
	return m.OpenDialog(NoticeDialogType)
}

// CloseAll closes the open dialog without reporting a result and drops
// queued notices.
func (m *Manager) CloseAll() tea.Cmd {
	m.pending = nil
	if m.activeDialog == "" {
		return nil
	}
	d := m.dialogs[m.activeDialog]
	m.activeDialog = ""
	return d.Close()
}

func (m *Manager) IsDialogOpen() bool {
	return m.activeDialog != ""
}

func (m *Manager) ActiveDialog() DialogType {
	return m.activeDialog
}

// NoticeMessage returns the message of the notice dialog.
func (m *Manager) NoticeMessage() string {
	return m.notice.Message()
}
