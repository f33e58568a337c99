package app

import "github.com/openkimi/clientbuild/internal/platform"

// Config holds everything an App instance needs to run. It is produced by
// the cli package, which has already validated every field.
type Config struct {
	// Target is the parsed platform selector.
	Target platform.Target

	// ProjectDir, when set, bypasses the project directory search.
	ProjectDir string

	// ConfigPath is an explicit configuration file path. Empty means the
	// default file name is looked up in the working directory.
	ConfigPath string

	// WorkDir is the invocation directory.
	WorkDir string

	// ExecDir is the directory holding the orchestrator binary. May be
	// empty when it cannot be determined.
	ExecDir string

	LogFormat string
	LogLevel  string
}
