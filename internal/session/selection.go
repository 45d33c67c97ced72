package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/billie-coop/skillrack/internal/api"
)

// AcceptedExtensions are the spreadsheet formats picked up when a directory
// is expanded.
var AcceptedExtensions = []string{".csv", ".xlsx", ".xls"}

// ErrNoMatch is returned when a glob pattern matches nothing.
var ErrNoMatch = errors.New("no files match")

// SetFiles replaces the selection wholesale.
func (s *Session) SetFiles(files []api.File) {
	s.state.Files = slices.Clone(files)
	s.log.Debug().Int("files", len(files)).Msg("selection replaced")
}

// ClearFiles empties the selection.
func (s *Session) ClearFiles() {
	s.state.Files = nil
}

// Reset empties the selection and the active result. It is refused while a
// request is in flight, since its completion would bring a result back.
func (s *Session) Reset() bool {
	if s.state.Request.InFlight {
		return false
	}
	s.ClearFiles()
	s.ResetAll()
	return true
}

// HasAcceptedExtension reports whether name looks like a spreadsheet.
func HasAcceptedExtension(name string) bool {
	return slices.Contains(AcceptedExtensions, strings.ToLower(filepath.Ext(name)))
}

// ExpandPaths turns operator input into a selection. Each argument may be a
// file, a directory (its spreadsheets, not recursive) or a glob pattern.
// Explicitly named files are accepted whatever their extension. Duplicates
// are dropped, keeping the first occurrence.
func ExpandPaths(args []string) ([]api.File, error) {
	var files []api.File
	seen := make(map[string]bool)
	add := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if seen[abs] {
			return
		}
		seen[abs] = true
		files = append(files, api.File{Name: filepath.Base(abs), Path: abs})
	}

	for _, arg := range args {
		arg = expandHome(strings.TrimSpace(arg))
		if arg == "" {
			continue
		}

		matches := []string{arg}
		if strings.ContainsAny(arg, "*?[") {
			var err error
			matches, err = filepath.Glob(arg)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", arg, err)
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("%w %q", ErrNoMatch, arg)
			}
		}

		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", m, err)
			}
			if !info.IsDir() {
				add(m)
				continue
			}
			entries, err := os.ReadDir(m)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", m, err)
			}
			for _, e := range entries {
				if e.Type().IsRegular() && HasAcceptedExtension(e.Name()) {
					add(filepath.Join(m, e.Name()))
				}
			}
		}
	}
	return files, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
