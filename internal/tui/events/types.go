package events

// EventType identifies the type of event
type EventType string

const (
	// UI events
	StatusMessageEvent EventType = "ui.status"
	DialogOpenEvent    EventType = "ui.dialog.open"
	DialogCloseEvent   EventType = "ui.dialog.close"

	// Workbook export events
	ExportStartedEvent   EventType = "export.started"
	ExportCompletedEvent EventType = "export.completed"
	ExportFailedEvent    EventType = "export.failed"

	// Settings events
	ThemeChangedEvent EventType = "settings.theme"
)

// Event represents an event in the system
type Event struct {
	Type    EventType
	Payload any
}

// StatusType is the severity shown in the status bar.
type StatusType string

const (
	StatusInfo    StatusType = "info"
	StatusWarning StatusType = "warning"
	StatusError   StatusType = "error"
	StatusSuccess StatusType = "success"
)

type StatusMessagePayload struct {
	Message string
	Type    StatusType
}

type DialogPayload struct {
	DialogID  string
	Data      any
	Cancelled bool
}

type ExportPayload struct {
	Variant string
	Path    string
	Err     error
}

type ThemePayload struct {
	Name string
}

// Status builds a status bar event.
func Status(t StatusType, message string) Event {
	return Event{
		Type:    StatusMessageEvent,
		Payload: StatusMessagePayload{Message: message, Type: t},
	}
}
