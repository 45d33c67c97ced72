//go:build unix

package browser

import (
	"os/exec"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartDetachedReapsOpener(t *testing.T) {
	path, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true not available")
	}

	cmd := exec.Command(path)
	require.NoError(t, startDetached(cmd))
	pid := cmd.Process.Pid

	// A zombie still answers signal 0; a reaped process does not.
	assert.Eventually(t, func() bool {
		return syscall.Kill(pid, 0) == syscall.ESRCH
	}, 5*time.Second, 10*time.Millisecond)
}

func TestStartDetachedReportsMissingBinary(t *testing.T) {
	assert.Error(t, startDetached(exec.Command("skillrack-no-such-opener")))
}
