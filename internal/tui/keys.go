package tui

import (
	"github.com/billie-coop/skillrack/internal/tui/components/dialog"
	"github.com/charmbracelet/bubbles/v2/key"
)

// KeyMap is every binding of the dashboard once admitted.
type KeyMap struct {
	Quit   key.Binding
	Help   key.Binding
	Theme  key.Binding
	Logout key.Binding

	NextTab     key.Binding
	GenerateTab key.Binding
	HistoryTab  key.Binding

	SelectFiles key.Binding
	ClearFiles  key.Binding
	Reset       key.Binding

	Daily       key.Binding
	Weekly      key.Binding
	Performance key.Binding

	PrevBranch key.Binding
	NextBranch key.Binding
	LessTopN   key.Binding
	MoreTopN   key.Binding

	Download key.Binding
	Export   key.Binding

	Up             key.Binding
	Down           key.Binding
	Open           key.Binding
	RefreshHistory key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "switch theme")),
		Logout: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "log out")),

		NextTab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		GenerateTab: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "generate report tab")),
		HistoryTab:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "history tab")),

		SelectFiles: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "select files")),
		ClearFiles:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear files")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset files and results")),

		Daily:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "daily analysis")),
		Weekly:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "weekly leaderboard")),
		Performance: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "performance ranking")),

		PrevBranch: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous branch")),
		NextBranch: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next branch")),
		LessTopN:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "top N down by 10")),
		MoreTopN:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "top N up by 10")),

		Download: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "download visible result from the service")),
		Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export visible result to .xlsx")),

		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Open:           key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view report")),
		RefreshHistory: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "refresh history")),
	}
}

// HelpSections groups the bindings for the help dialog.
func (k KeyMap) HelpSections() []dialog.HelpSection {
	return []dialog.HelpSection{
		{Title: "Analyze", Bindings: []key.Binding{k.SelectFiles, k.ClearFiles, k.Reset, k.Daily, k.Weekly, k.Performance}},
		{Title: "Performance query", Bindings: []key.Binding{k.PrevBranch, k.NextBranch, k.LessTopN, k.MoreTopN}},
		{Title: "Results", Bindings: []key.Binding{k.Download, k.Export}},
		{Title: "History", Bindings: []key.Binding{k.Up, k.Down, k.Open, k.RefreshHistory}},
		{Title: "General", Bindings: []key.Binding{k.NextTab, k.GenerateTab, k.HistoryTab, k.Theme, k.Help, k.Logout, k.Quit}},
	}
}
