package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// CommandRunner abstracts synchronous execution of external tools so that the
// pipeline can be exercised without spawning real processes.
type CommandRunner interface {
	// Run executes name with args in dir and returns the captured stdout.
	// A non-zero exit status is reported as a *CommandError.
	Run(ctx context.Context, dir, name string, args ...string) (stdout string, err error)
}

// CommandError describes a failed external command.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s (exit %d)", e.Command, e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += "\n" + stderr
	}

	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// LocalCommandRunner runs commands with os/exec.
type LocalCommandRunner struct {
	timeout time.Duration
}

// DefaultCommandTimeout bounds a single external command.
const DefaultCommandTimeout = 10 * time.Minute

// NewLocalCommandRunner constructs a LocalCommandRunner. A non-positive timeout
// falls back to DefaultCommandTimeout.
func NewLocalCommandRunner(timeout time.Duration) *LocalCommandRunner {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}

	return &LocalCommandRunner{
		timeout: timeout,
	}
}

// Run executes the command and captures stdout and stderr separately.
func (a *LocalCommandRunner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	// #nosec G204 - the tool name comes from operator configuration
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		exitCode := -1

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		return stdout.String(), &CommandError{
			Command:  strings.Join(append([]string{name}, args...), " "),
			ExitCode: exitCode,
			Stderr:   stderr.String(),
			Err:      err,
		}
	}

	return stdout.String(), nil
}
