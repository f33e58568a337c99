package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/openkimi/clientbuild/internal/app"
	"github.com/openkimi/clientbuild/internal/buildtool"
	"github.com/openkimi/clientbuild/internal/cli"
)

// main is the entrypoint for the clientbuild orchestrator.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// SIGINT/SIGTERM cancels the context, which kills a running build
	// subprocess and stops the run between steps.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	execRunner := &buildtool.ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
	clientbuildApp := app.New(outW, appConfig, afero.NewOsFs(), execRunner)

	return clientbuildApp.Run(ctx, appConfig)
}
