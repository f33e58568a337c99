package buildtool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// CommandRunner abstracts subprocess invocation so tests can simulate
// success and failure without spawning real processes.
type CommandRunner interface {
	// Run executes name with args inside dir and blocks until the process
	// exits. It returns the process exit code. A non-nil error means the
	// process could not be started at all.
	Run(ctx context.Context, name string, args []string, dir string) (int, error)
}

// ExecRunner is the production CommandRunner backed by os/exec. The child
// process streams directly to the configured writers so the package
// manager's own progress output stays visible.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements CommandRunner.
func (e *ExecRunner) Run(ctx context.Context, name string, args []string, dir string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, fmt.Errorf("spawning %s: %w", name, err)
}
