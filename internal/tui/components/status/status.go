package status

import (
	"strings"
	"time"

	"github.com/billie-coop/skillrack/internal/tui/components/core"
	"github.com/billie-coop/skillrack/internal/tui/events"
	"github.com/billie-coop/skillrack/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/spinner"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

const timerID = "status.activity"

// Message is a transient status bar message.
type Message struct {
	Content   string
	Type      events.StatusType
	Timestamp time.Time
}

// Component is the bottom bar. The left side shows the running request
// with a spinner and elapsed time; the right side shows the latest
// message until it expires.
type Component struct {
	message  *Message
	activity string
	hint     string
	width    int

	clearAfter time.Duration
	spinner    spinner.Model
	timer      *core.Timer
	now        func() time.Time
}

var (
	_ core.Component = (*Component)(nil)
	_ core.Sizeable  = (*Component)(nil)
)

// New creates a new status bar component
func New() *Component {
	return &Component{
		clearAfter: 5 * time.Second,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		timer:      core.NewTimer(timerID, 100*time.Millisecond),
		now:        time.Now,
	}
}

// clearMessageMsg is sent when a status message should be cleared
type clearMessageMsg struct {
	timestamp time.Time
}

// SetMessage shows content until a newer message replaces it or it expires.
func (c *Component) SetMessage(content string, t events.StatusType) tea.Cmd {
	stamp := c.now()
	c.message = &Message{Content: content, Type: t, Timestamp: stamp}
	return tea.Tick(c.clearAfter, func(time.Time) tea.Msg {
		return clearMessageMsg{timestamp: stamp}
	})
}

func (c *Component) ShowInfo(message string) tea.Cmd {
	return c.SetMessage(message, events.StatusInfo)
}

func (c *Component) ShowError(message string) tea.Cmd {
	return c.SetMessage(message, events.StatusError)
}

func (c *Component) ShowSuccess(message string) tea.Cmd {
	return c.SetMessage(message, events.StatusSuccess)
}

// Message returns the visible message, if any.
func (c *Component) Message() (Message, bool) {
	if c.message == nil {
		return Message{}, false
	}
	return *c.message, true
}

// StartActivity shows label with a spinner and a running clock.
func (c *Component) StartActivity(label string) tea.Cmd {
	wasIdle := c.activity == ""
	c.activity = label
	if !wasIdle {
		return nil
	}
	return tea.Batch(c.timer.Start(), c.spinner.Tick)
}

// StopActivity clears the activity and returns how long it ran.
func (c *Component) StopActivity() time.Duration {
	if c.activity == "" {
		return 0
	}
	c.activity = ""
	c.timer.Stop()
	return c.timer.Elapsed()
}

// Activity returns the running activity label.
func (c *Component) Activity() string {
	return c.activity
}

// SetHint sets the idle left side text.
func (c *Component) SetHint(hint string) {
	c.hint = hint
}

func (c *Component) SetSize(width, height int) tea.Cmd {
	c.width = width
	return nil
}

func (c *Component) Init() tea.Cmd {
	return nil
}

func (c *Component) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearMessageMsg:
		if c.message != nil && msg.timestamp.Equal(c.message.Timestamp) {
			c.message = nil
		}
	case spinner.TickMsg:
		if c.activity != "" {
			var cmd tea.Cmd
			c.spinner, cmd = c.spinner.Update(msg)
			return c, cmd
		}
	case core.TickMsg:
		return c, c.timer.Update(msg)
	}
	return c, nil
}

func (c *Component) View() string {
	if c.width == 0 {
		return ""
	}

	theme := styles.CurrentTheme()
	s := theme.S()

	bar := lipgloss.NewStyle().
		Width(c.width).
		MaxHeight(1).
		Background(theme.BgSubtle).
		Foreground(theme.FgBase).
		Padding(0, 1)

	left := s.Muted.Render(c.hint)
	if c.activity != "" {
		left = c.spinner.View() + " " + c.activity + " " +
			s.Muted.Render(core.FormatSeconds(c.timer.Elapsed()))
	}

	right := c.formatMessage()
	avail := c.width - 2
	if lipgloss.Width(right) > avail/2 {
		right = lipgloss.NewStyle().MaxWidth(avail / 2).Render(right)
	}
	if lipgloss.Width(left)+lipgloss.Width(right) >= avail {
		left = lipgloss.NewStyle().MaxWidth(max(0, avail-lipgloss.Width(right)-1)).Render(left)
	}

	gap := max(1, avail-lipgloss.Width(left)-lipgloss.Width(right))
	return bar.Render(left + strings.Repeat(" ", gap) + right)
}

func (c *Component) formatMessage() string {
	if c.message == nil {
		return ""
	}

	s := styles.CurrentTheme().S()
	switch c.message.Type {
	case events.StatusSuccess:
		return s.Success.Render(styles.CheckIcon + " " + c.message.Content)
	case events.StatusWarning:
		return s.Warning.Render(styles.WarningIcon + " " + c.message.Content)
	case events.StatusError:
		return s.Error.Render(styles.ErrorIcon + " " + c.message.Content)
	default:
		return s.Info.Render(c.message.Content)
	}
}
