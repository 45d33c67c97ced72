package core

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// TickMsg is sent periodically while a timer runs.
type TickMsg struct {
	Time    time.Time
	Elapsed time.Duration
	ID      string
}

// Timer measures how long something has been running and keeps the view
// refreshing while it does.
type Timer struct {
	id        string
	interval  time.Duration
	startTime time.Time
	running   bool
	elapsed   time.Duration
}

// NewTimer creates a timer ticking every interval (100ms if unset).
func NewTimer(id string, interval time.Duration) *Timer {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Timer{id: id, interval: interval}
}

// Start restarts the timer from zero.
func (t *Timer) Start() tea.Cmd {
	t.startTime = time.Now()
	t.running = true
	t.elapsed = 0
	return t.tick()
}

// Stop halts the timer and keeps the elapsed time.
func (t *Timer) Stop() {
	if t.running {
		t.elapsed = time.Since(t.startTime)
		t.running = false
	}
}

func (t *Timer) Running() bool {
	return t.running
}

func (t *Timer) Elapsed() time.Duration {
	if t.running {
		return time.Since(t.startTime)
	}
	return t.elapsed
}

// Update keeps ticking while the timer runs. Ticks for other timers are
// ignored.
func (t *Timer) Update(msg tea.Msg) tea.Cmd {
	if tick, ok := msg.(TickMsg); ok && tick.ID == t.id && t.running {
		return t.tick()
	}
	return nil
}

func (t *Timer) tick() tea.Cmd {
	return tea.Tick(t.interval, func(tm time.Time) tea.Msg {
		return TickMsg{Time: tm, Elapsed: t.Elapsed(), ID: t.id}
	})
}

// FormatSeconds formats duration as "1.2s".
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
