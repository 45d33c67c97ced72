// Package browser opens URLs with the desktop's default handler.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNotWebURL is returned for anything other than an http(s) URL.
var ErrNotWebURL = errors.New("not an http(s) url")

// Launcher opens URLs by starting the platform's opener command. It does not
// wait for the browser; the opener is reaped in the background.
type Launcher struct {
	goos  string
	start func(*exec.Cmd) error
}

// New returns a launcher for the running platform.
func New() *Launcher {
	return &Launcher{
		goos:  runtime.GOOS,
		start: startDetached,
	}
}

// Open opens target in a new browsing context.
func (l *Launcher) Open(target string) error {
	target = strings.TrimSpace(target)
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrNotWebURL, target)
	}

	name, args := Command(l.goos, target)
	if err := l.start(exec.Command(name, args...)); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	return nil
}

// startDetached starts cmd and waits for it on another goroutine so the
// exited opener does not linger as a zombie.
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Command returns the opener invocation for goos.
func Command(goos, target string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}
