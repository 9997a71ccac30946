package adapter

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestLocalCommandRunner_CapturesStdout(t *testing.T) {
	requireShell(t)

	runner := NewLocalCommandRunner(0)
	out, err := runner.Run(context.Background(), t.TempDir(), "sh", "-c", "echo hello; echo noise >&2")

	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestLocalCommandRunner_ExitCode(t *testing.T) {
	requireShell(t)

	runner := NewLocalCommandRunner(time.Minute)
	_, err := runner.Run(context.Background(), "", "sh", "-c", "echo broken >&2; exit 3")

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 3, cmdErr.ExitCode)
	assert.Equal(t, "sh -c echo broken >&2; exit 3", cmdErr.Command)
	assert.Contains(t, cmdErr.Error(), "broken")
}

func TestLocalCommandRunner_MissingExecutable(t *testing.T) {
	runner := NewLocalCommandRunner(time.Minute)
	_, err := runner.Run(context.Background(), "", "opaq-definitely-not-installed")

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, -1, cmdErr.ExitCode)
}

func TestNewLocalCommandRunner_DefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultCommandTimeout, NewLocalCommandRunner(-time.Second).timeout)
}
