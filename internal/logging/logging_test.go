package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONToFile(t *testing.T) {
	dir := t.TempDir()
	log, closer, err := New(Options{Dir: dir})
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("op", "daily analysis").Msg("dispatching")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, "daily analysis", rec["op"])
	assert.Equal(t, "dispatching", rec["message"])
	assert.Contains(t, rec, "time")
}

func TestDebugUsesConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, true)
	log.Debug().Str("component", "session").Msg("result view changed")

	out := buf.String()
	assert.Contains(t, out, "DBG")
	assert.Contains(t, out, "result view changed")
	assert.Contains(t, out, "component=session")
}
