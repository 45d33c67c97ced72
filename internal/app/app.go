package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/billie-coop/skillrack/internal/api"
	"github.com/billie-coop/skillrack/internal/browser"
	"github.com/billie-coop/skillrack/internal/config"
	"github.com/billie-coop/skillrack/internal/export"
	"github.com/billie-coop/skillrack/internal/session"
	"github.com/billie-coop/skillrack/internal/tui/events"
	"github.com/rs/zerolog"
)

// App holds the services behind the dashboard.
type App struct {
	Config   *config.Manager
	Client   *api.HTTPClient
	Session  *session.Session
	Exports  *ExportService
	Settings *SettingsService

	EventBroker *events.Broker
	Log         zerolog.Logger
}

// New wires the services from a loaded config.
func New(cfg *config.Manager, log zerolog.Logger, eventBroker *events.Broker) *App {
	c := cfg.Get()

	opts := []api.Option{api.WithLogger(log)}
	if c.HTTPTimeout > 0 {
		opts = append(opts, api.WithTimeout(time.Duration(c.HTTPTimeout)))
	}
	client := api.NewHTTPClient(c.APIBaseURL, opts...)

	a := &App{
		Config:      cfg,
		Client:      client,
		Session:     session.New(client, browser.New(), log),
		EventBroker: eventBroker,
		Log:         log,
	}
	a.Exports = NewExportService(export.New(cfg.ExportDir(), log), eventBroker, log)
	a.Settings = NewSettingsService(cfg, eventBroker, log)
	return a
}

// ExportService writes workbooks off the UI goroutine and reports back
// through the event broker.
type ExportService struct {
	exporter    *export.Exporter
	eventBroker *events.Broker
	log         zerolog.Logger
}

// NewExportService creates an export service.
func NewExportService(exporter *export.Exporter, eventBroker *events.Broker, log zerolog.Logger) *ExportService {
	return &ExportService{
		exporter:    exporter,
		eventBroker: eventBroker,
		log:         log.With().Str("component", "export_service").Logger(),
	}
}

// Export writes r in the background. Result values are never mutated after
// activation, so r is safe to read from another goroutine.
func (s *ExportService) Export(r session.Result) {
	if r == nil || r.Variant() == session.VariantEmpty {
		s.eventBroker.Publish(events.Status(events.StatusWarning, "Nothing to export"))
		return
	}

	variant := r.Variant().String()
	s.eventBroker.Publish(events.Event{
		Type:    events.ExportStartedEvent,
		Payload: events.ExportPayload{Variant: variant},
	})

	go func() {
		path, err := s.exporter.Export(r)
		if err != nil {
			s.log.Error().Err(err).Str("variant", variant).Msg("export failed")
			msg := "Export failed"
			if errors.Is(err, export.ErrNothingToExport) {
				msg = "Nothing to export"
			}
			s.eventBroker.Publish(events.Event{
				Type:    events.ExportFailedEvent,
				Payload: events.ExportPayload{Variant: variant, Err: err},
			})
			s.eventBroker.Publish(events.Status(events.StatusError, msg))
			return
		}
		s.eventBroker.Publish(events.Event{
			Type:    events.ExportCompletedEvent,
			Payload: events.ExportPayload{Variant: variant, Path: path},
		})
		s.eventBroker.Publish(events.Status(events.StatusSuccess, "Exported to "+path))
	}()
}

// SettingsService applies operator preference changes and persists them.
type SettingsService struct {
	config      *config.Manager
	eventBroker *events.Broker
	log         zerolog.Logger
}

// NewSettingsService creates a settings service.
func NewSettingsService(cfg *config.Manager, eventBroker *events.Broker, log zerolog.Logger) *SettingsService {
	return &SettingsService{
		config:      cfg,
		eventBroker: eventBroker,
		log:         log.With().Str("component", "settings").Logger(),
	}
}

// SetTheme saves the theme choice.
func (s *SettingsService) SetTheme(name string) error {
	if err := s.config.Set("theme", name); err != nil {
		s.log.Error().Err(err).Str("theme", name).Msg("failed to save theme")
		s.eventBroker.Publish(events.Status(events.StatusError, "Could not save theme"))
		return fmt.Errorf("save theme: %w", err)
	}
	s.log.Info().Str("theme", name).Msg("theme saved")
	s.eventBroker.Publish(events.Event{Type: events.ThemeChangedEvent, Payload: events.ThemePayload{Name: name}})
	s.eventBroker.Publish(events.Status(events.StatusSuccess, "Theme set to "+name))
	return nil
}
