package buildtool

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/openkimi/clientbuild/internal/ctxlog"
	"github.com/openkimi/clientbuild/internal/platform"
)

// DefaultTool is the package manager binary driven by the orchestrator.
const DefaultTool = "npm"

// distDirName is the output directory convention of the packaging tool,
// relative to the project directory. It is not configurable here.
const distDirName = "dist"

// Outcome records the result of one platform's install+build sequence. It
// is produced once per platform and consumed exactly once by artifact
// collection.
type Outcome struct {
	// Target is the platform this outcome corresponds to.
	Target platform.Target

	// ExitCode is the exit status of the failing step, or zero when both
	// install and build succeeded.
	ExitCode int

	// OutputDir is where the packaging tool wrote its output. It is always
	// <projectDir>/dist, regardless of success.
	OutputDir string
}

// Success reports whether the install and build steps both exited cleanly.
func (o Outcome) Success() bool {
	return o.ExitCode == 0
}

// Runner drives the external package manager: a dependency install followed
// by the platform-specific build script.
type Runner struct {
	cmd  CommandRunner
	tool string
}

// NewRunner creates a Runner using the given command runner. An empty tool
// name selects DefaultTool.
func NewRunner(cmd CommandRunner, tool string) *Runner {
	if tool == "" {
		tool = DefaultTool
	}
	return &Runner{cmd: cmd, tool: tool}
}

// Build runs the install and build steps for one target inside projectDir.
//
// A nonzero exit from either step is recorded in the Outcome and is not an
// error: the caller reports it and moves on to the next platform. When
// install fails the build step is never invoked. A returned error means the
// tool itself could not be spawned, which is fatal for the whole run.
func (r *Runner) Build(ctx context.Context, target platform.Target, projectDir string) (Outcome, error) {
	logger := ctxlog.FromContext(ctx)
	outcome := Outcome{
		Target:    target,
		OutputDir: filepath.Join(projectDir, distDirName),
	}

	logger.Info("Installing dependencies.", "tool", r.tool, "project_dir", projectDir)
	code, err := r.cmd.Run(ctx, r.tool, []string{"install"}, projectDir)
	if err != nil {
		return Outcome{}, fmt.Errorf("running %s install: %w", r.tool, err)
	}
	if code != 0 {
		logger.Error("Dependency install failed.", "tool", r.tool, "exit_code", code)
		outcome.ExitCode = code
		return outcome, nil
	}

	args := []string{"run", "build"}
	if flag := target.BuildFlag(); flag != "" {
		args = append(args, "--", flag)
	}

	logger.Info("Building client.", "platform", target.Name(), "args", args)
	code, err = r.cmd.Run(ctx, r.tool, args, projectDir)
	if err != nil {
		return Outcome{}, fmt.Errorf("running %s build: %w", r.tool, err)
	}
	outcome.ExitCode = code
	return outcome, nil
}
