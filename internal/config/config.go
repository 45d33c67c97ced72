package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SKILLRACK_"

const fileName = "config.json"

// ErrUnknownKey is returned by Set for keys the config does not have.
var ErrUnknownKey = errors.New("unknown config key")

// Duration is a time.Duration that reads and writes as "30s" text in both
// the JSON file and the environment.
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	if d == 0 {
		return []byte(""), nil
	}
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// Config is the dashboard configuration.
type Config struct {
	// Analysis service
	APIBaseURL  string   `json:"api_base_url" env:"API_BASE_URL"`
	HTTPTimeout Duration `json:"http_timeout" env:"HTTP_TIMEOUT"`

	// UI preferences
	Theme string `json:"theme" env:"THEME"`
	Debug bool   `json:"debug" env:"DEBUG"`

	// Local workbook exports; empty means <config dir>/exports
	ExportDir string `json:"export_dir" env:"EXPORT_DIR"`
}

// DefaultConfig returns a config pointing at a service on localhost.
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL: "http://localhost:8000",
		Theme:      "skillrack",
	}
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("api_base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_base_url: scheme must be http or https, got %q", c.APIBaseURL)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout: must not be negative")
	}
	return nil
}

// DefaultDir is $SKILLRACK_HOME, or ~/.skillrack when unset. A .env file in
// the working directory is loaded first so it can set SKILLRACK_HOME too.
func DefaultDir() (string, error) {
	_ = godotenv.Load()

	if dir := os.Getenv(EnvPrefix + "HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".skillrack"), nil
}

// Manager handles configuration loading and saving.
//
// The file on disk and the effective config are kept apart: environment
// overrides apply to the effective config only and are never written back.
type Manager struct {
	dir        string
	configPath string
	file       *Config
	config     *Config
}

// NewManager creates a manager rooted at dir.
func NewManager(dir string) *Manager {
	return &Manager{
		dir:        dir,
		configPath: filepath.Join(dir, fileName),
		file:       DefaultConfig(),
		config:     DefaultConfig(),
	}
}

// Dir returns the directory holding the config file and the log.
func (m *Manager) Dir() string {
	return m.dir
}

// Path returns the config file path.
func (m *Manager) Path() string {
	return m.configPath
}

// Load reads the configuration from disk, writing defaults on first run,
// then applies environment overrides.
func (m *Manager) Load() error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(m.configPath); errors.Is(err, os.ErrNotExist) {
		m.file = DefaultConfig()
		if err := m.Save(); err != nil {
			return err
		}
		return m.refresh()
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}
	m.file = cfg

	return m.refresh()
}

// refresh rebuilds the effective config from the file and the environment.
func (m *Manager) refresh() error {
	cfg := *m.file
	expandEnvVars(&cfg)

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to parse environment overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.config = &cfg
	return nil
}

// Save writes the file config to disk.
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Get returns the effective configuration.
func (m *Manager) Get() *Config {
	return m.config
}

// ExportDir resolves where workbook exports go.
func (m *Manager) ExportDir() string {
	if m.config.ExportDir != "" {
		return m.config.ExportDir
	}
	return filepath.Join(m.dir, "exports")
}

// Set updates a file value, saves, and refreshes the effective config.
func (m *Manager) Set(key, value string) error {
	next := *m.file
	switch key {
	case "api_base_url":
		next.APIBaseURL = value
	case "http_timeout":
		if err := next.HTTPTimeout.UnmarshalText([]byte(value)); err != nil {
			return err
		}
	case "theme":
		next.Theme = value
	case "debug":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("debug: %w", err)
		}
		next.Debug = b
	case "export_dir":
		next.ExportDir = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	if err := next.Validate(); err != nil {
		return err
	}
	prev := m.file
	m.file = &next
	if err := m.Save(); err != nil {
		m.file = prev
		return err
	}
	return m.refresh()
}

var envRef = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// expandEnvVars expands $VAR and ${VAR} references in string values.
// Unset variables are left as written.
func expandEnvVars(cfg *Config) {
	cfg.APIBaseURL = expandString(cfg.APIBaseURL)
	cfg.Theme = expandString(cfg.Theme)
	cfg.ExportDir = expandString(cfg.ExportDir)
}

func expandString(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimPrefix(match, "$")
		name = strings.TrimSuffix(strings.TrimPrefix(name, "{"), "}")
		if value := os.Getenv(name); value != "" {
			return value
		}
		return match
	})
}
