package browser

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"darwin", "open", []string{"http://svc/download/daily"}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", "http://svc/download/daily"}},
		{"linux", "xdg-open", []string{"http://svc/download/daily"}},
		{"freebsd", "xdg-open", []string{"http://svc/download/daily"}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args := Command(tt.goos, "http://svc/download/daily")
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestOpen(t *testing.T) {
	var started []*exec.Cmd
	l := &Launcher{goos: "linux", start: func(c *exec.Cmd) error {
		started = append(started, c)
		return nil
	}}

	require.NoError(t, l.Open(" http://localhost:8000/download/weekly "))
	require.Len(t, started, 1)
	assert.Equal(t, []string{"xdg-open", "http://localhost:8000/download/weekly"}, started[0].Args)

	for _, bad := range []string{"", "file:///etc/passwd", "javascript:alert(1)", "localhost:8000"} {
		assert.ErrorIs(t, l.Open(bad), ErrNotWebURL, bad)
	}
	assert.Len(t, started, 1)

	l.start = func(*exec.Cmd) error { return errors.New("exec: not found") }
	assert.Error(t, l.Open("https://svc/download/daily"))
}
