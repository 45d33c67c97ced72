// Package main is the entry point for the skillrack dashboard.
package main

import (
	"fmt"
	"os"

	"github.com/billie-coop/skillrack/internal/app"
	"github.com/billie-coop/skillrack/internal/config"
	"github.com/billie-coop/skillrack/internal/logging"
	"github.com/billie-coop/skillrack/internal/tui"
	"github.com/billie-coop/skillrack/internal/tui/events"
	tea "github.com/charmbracelet/bubbletea/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dir, err := config.DefaultDir()
	if err != nil {
		return err
	}
	cfg := config.NewManager(dir)
	if err := cfg.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, closer, err := logging.New(logging.Options{Dir: cfg.Dir(), Debug: cfg.Get().Debug})
	if err != nil {
		return err
	}
	defer closer.Close()

	log.Info().
		Str("config", cfg.Path()).
		Str("service", cfg.Get().APIBaseURL).
		Msg("starting")

	eventBroker := events.NewBroker()
	defer eventBroker.Close()

	m := tui.New(app.New(cfg, log, eventBroker))
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited")
		return err
	}
	log.Info().Msg("exiting")
	return nil
}
