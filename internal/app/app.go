package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/openkimi/clientbuild/internal/buildtool"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle, decoupled from the CLI entrypoint.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	fs     afero.Fs
	cmd    buildtool.CommandRunner
	runID  string
}

// New is the constructor for the main application. It builds an isolated,
// run-scoped logger; the fs and cmd collaborators are injected so tests can
// substitute an in-memory filesystem and a command runner double.
func New(outW io.Writer, cfg *Config, fs afero.Fs, cmd buildtool.CommandRunner) *App {
	runID := uuid.NewString()
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW).With("run_id", runID)

	return &App{
		outW:   outW,
		logger: logger,
		fs:     fs,
		cmd:    cmd,
		runID:  runID,
	}
}
