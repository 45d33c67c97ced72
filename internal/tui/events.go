package tui

import (
	"github.com/billie-coop/skillrack/internal/tui/events"
	"github.com/billie-coop/skillrack/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// listenForEvents waits for the next broker event. A closed subscription
// ends the loop.
func (m *Model) listenForEvents() tea.Cmd {
	sub := m.eventSub
	return func() tea.Msg {
		event, ok := <-sub
		if !ok {
			return nil
		}
		return event
	}
}

func (m *Model) handleEvent(event events.Event) tea.Cmd {
	switch event.Type {
	case events.StatusMessageEvent:
		if p, ok := event.Payload.(events.StatusMessagePayload); ok {
			return m.statusBar.SetMessage(p.Message, p.Type)
		}

	case events.ThemeChangedEvent:
		if p, ok := event.Payload.(events.ThemePayload); ok {
			if err := styles.DefaultManager().SetTheme(p.Name); err != nil {
				m.log.Warn().Err(err).Msg("unknown theme")
			}
			m.sync()
		}

	case events.ExportStartedEvent:
		if p, ok := event.Payload.(events.ExportPayload); ok {
			return m.statusBar.ShowInfo("Exporting " + p.Variant + "...")
		}

	case events.ExportCompletedEvent, events.ExportFailedEvent:
		if p, ok := event.Payload.(events.ExportPayload); ok {
			m.log.Debug().Str("variant", p.Variant).Str("path", p.Path).AnErr("error", p.Err).Msg("export finished")
		}

	case events.DialogOpenEvent, events.DialogCloseEvent:
		if p, ok := event.Payload.(events.DialogPayload); ok {
			m.log.Debug().Str("dialog", p.DialogID).Bool("cancelled", p.Cancelled).Msg(string(event.Type))
		}
	}
	return nil
}
