package dialog

import (
	"strings"
	"unicode"

	"github.com/billie-coop/skillrack/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// SimpleTextInput is a single-line text field. With a mask set, the value
// is drawn as that rune repeated.
type SimpleTextInput struct {
	value       []rune
	placeholder string
	mask        rune
	focused     bool
	cursorPos   int
}

// NewSimpleTextInput creates a new text input
func NewSimpleTextInput() *SimpleTextInput {
	return &SimpleTextInput{}
}

func (t *SimpleTextInput) Value() string {
	return string(t.value)
}

func (t *SimpleTextInput) SetValue(value string) {
	t.value = []rune(value)
	t.cursorPos = len(t.value)
}

func (t *SimpleTextInput) Reset() {
	t.SetValue("")
}

func (t *SimpleTextInput) Placeholder(placeholder string) {
	t.placeholder = placeholder
}

// Mask hides the value behind r. Zero shows the value.
func (t *SimpleTextInput) Mask(r rune) {
	t.mask = r
}

func (t *SimpleTextInput) Focus() {
	t.focused = true
}

func (t *SimpleTextInput) Blur() {
	t.focused = false
}

func (t *SimpleTextInput) Focused() bool {
	return t.focused
}

// Update edits the value. Keys it does not use are ignored.
func (t *SimpleTextInput) Update(msg tea.Msg) tea.Cmd {
	if !t.focused {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "backspace":
			if t.cursorPos > 0 {
				t.value = append(t.value[:t.cursorPos-1], t.value[t.cursorPos:]...)
				t.cursorPos--
			}
		case "delete":
			if t.cursorPos < len(t.value) {
				t.value = append(t.value[:t.cursorPos], t.value[t.cursorPos+1:]...)
			}
		case "left":
			if t.cursorPos > 0 {
				t.cursorPos--
			}
		case "right":
			if t.cursorPos < len(t.value) {
				t.cursorPos++
			}
		case "home", "ctrl+a":
			t.cursorPos = 0
		case "end", "ctrl+e":
			t.cursorPos = len(t.value)
		case "ctrl+u":
			t.value = t.value[t.cursorPos:]
			t.cursorPos = 0
		case "space":
			t.insert([]rune{' '})
		default:
			r := []rune(key)
			if len(r) == 1 && unicode.IsPrint(r[0]) {
				t.insert(r)
			}
		}
	}
	return nil
}

func (t *SimpleTextInput) insert(r []rune) {
	tail := append([]rune(nil), t.value[t.cursorPos:]...)
	t.value = append(append(t.value[:t.cursorPos], r...), tail...)
	t.cursorPos += len(r)
}

func (t *SimpleTextInput) View() string {
	theme := styles.CurrentTheme()
	style := lipgloss.NewStyle().Foreground(theme.FgBase)

	display := t.value
	if t.mask != 0 {
		display = []rune(strings.Repeat(string(t.mask), len(t.value)))
	}

	if !t.focused {
		if len(display) == 0 && t.placeholder != "" {
			return theme.S().Subtle.Render(t.placeholder)
		}
		return style.Render(string(display))
	}

	cursor := lipgloss.NewStyle().Background(theme.Accent).Foreground(theme.FgInverted)
	if len(display) == 0 && t.placeholder != "" {
		return cursor.Render(" ") + theme.S().Subtle.Render(t.placeholder)
	}
	if t.cursorPos < len(display) {
		return style.Render(string(display[:t.cursorPos])) +
			cursor.Render(string(display[t.cursorPos])) +
			style.Render(string(display[t.cursorPos+1:]))
	}
	return style.Render(string(display)) + cursor.Render(" ")
}
