package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/openkimi/clientbuild/internal/app"
	"github.com/openkimi/clientbuild/internal/platform"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// All validation happens here, before any directory or subprocess side
// effect can occur.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("clientbuild", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
clientbuild - packages the OpenKimi electron client for desktop platforms.

Usage:
  clientbuild [options] [PLATFORM]

Arguments:
  PLATFORM
    Target platform: windows|win, linux|ubuntu|debian, macos|mac|darwin,
    or all. Defaults to all.

Options:
`)
		flagSet.PrintDefaults()
	}

	projectDirFlag := flagSet.String("project-dir", "", "Path to the electron client project. Overrides the directory search.")
	configFlag := flagSet.String("config", "", "Path to a clientbuild.hcl configuration file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one platform argument, got %d", flagSet.NArg())}
	}

	target, err := platform.Parse(flagSet.Arg(0))
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: fmt.Sprintf("cannot determine working directory: %v", err)}
	}

	// The executable's directory is the last-resort project search root.
	// When it cannot be determined the search simply loses that tier.
	execDir := ""
	if exe, err := os.Executable(); err == nil {
		execDir = filepath.Dir(exe)
	}

	return &app.Config{
		Target:     target,
		ProjectDir: *projectDirFlag,
		ConfigPath: *configFlag,
		WorkDir:    workDir,
		ExecDir:    execDir,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	}, false, nil
}
