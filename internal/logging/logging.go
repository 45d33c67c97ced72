// Package logging builds the process logger. The terminal belongs to the
// dashboard, so records go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// FileName is the log file created in the config directory.
const FileName = "skillrack.log"

// Options controls logger construction.
type Options struct {
	// Dir holds the log file.
	Dir string
	// Debug switches to human-readable console records at debug level.
	Debug bool
}

// New opens (appending) the log file and returns a logger writing to it.
// The returned closer releases the file.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(opts.Dir, FileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return NewWriter(f, opts.Debug), f, nil
}

// NewWriter returns a logger on w.
func NewWriter(w io.Writer, debug bool) zerolog.Logger {
	if debug {
		out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
		return zerolog.New(out).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	}
	return zerolog.New(w).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}
