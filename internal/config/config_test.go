package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "home")
	m := NewManager(dir)
	require.NoError(t, m.Load())

	_, err := os.Stat(m.Path())
	require.NoError(t, err)

	cfg := m.Get()
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, Duration(0), cfg.HTTPTimeout)
	assert.False(t, cfg.Debug)
	assert.Equal(t, filepath.Join(dir, "exports"), m.ExportDir())
}

func TestLoadReadsFileAndExpandsVars(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RESULTS_HOST", "results.internal")
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte(`{
		"api_base_url": "http://${RESULTS_HOST}:9000",
		"http_timeout": "45s",
		"export_dir": "$UNSET_EXPORT_VAR/out"
	}`), 0o644))

	m := NewManager(dir)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "http://results.internal:9000", cfg.APIBaseURL)
	assert.Equal(t, Duration(45*time.Second), cfg.HTTPTimeout)
	assert.Equal(t, "$UNSET_EXPORT_VAR/out", cfg.ExportDir)
	assert.Equal(t, "skillrack", cfg.Theme, "missing keys keep defaults")
}

func TestEnvOverridesAreNotPersisted(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SKILLRACK_API_BASE_URL", "https://override.example")
	t.Setenv("SKILLRACK_DEBUG", "true")
	t.Setenv("SKILLRACK_HTTP_TIMEOUT", "2m")

	m := NewManager(dir)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "https://override.example", cfg.APIBaseURL)
	assert.True(t, cfg.Debug)
	assert.Equal(t, Duration(2*time.Minute), cfg.HTTPTimeout)

	data, err := os.ReadFile(m.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "http://localhost:8000")
	assert.NotContains(t, string(data), "override.example")
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte(`{"api_base_url": "ftp://nope"}`), 0o644))
	assert.Error(t, NewManager(dir).Load())

	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte(`{not json`), 0o644))
	assert.Error(t, NewManager(dir).Load())

	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte(`{"http_timeout": "soon"}`), 0o644))
	assert.Error(t, NewManager(dir).Load())
}

func TestSet(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)
	require.NoError(t, m.Load())

	require.NoError(t, m.Set("theme", "fire"))
	require.NoError(t, m.Set("http_timeout", "10s"))
	require.NoError(t, m.Set("debug", "true"))
	assert.ErrorIs(t, m.Set("secret", "x"), ErrUnknownKey)
	assert.Error(t, m.Set("api_base_url", "not a url"))
	assert.Equal(t, "http://localhost:8000", m.Get().APIBaseURL)

	reloaded := NewManager(dir)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, "fire", reloaded.Get().Theme)
	assert.Equal(t, Duration(10*time.Second), reloaded.Get().HTTPTimeout)
	assert.True(t, reloaded.Get().Debug)
}

func TestDefaultDir(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("SKILLRACK_HOME", custom)
	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, custom, dir)
}
