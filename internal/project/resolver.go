package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// clientDirName is the directory name of the electron client project the
// orchestrator operates on.
const clientDirName = "kimi-electron-client"

// releasesDirName is the subdirectory of the output base that holds the
// per-platform release tree.
const releasesDirName = "releases"

// ErrNotFound is returned when no client project directory exists at any of
// the candidate locations.
var ErrNotFound = errors.New("client project directory not found")

// Resolver locates the client project directory and prepares the output
// tree. All filesystem access goes through the injected afero.Fs so tests
// can run against an in-memory filesystem.
type Resolver struct {
	fs      afero.Fs
	workDir string
	execDir string
}

// NewResolver creates a Resolver. workDir is the invocation directory and
// execDir is the directory holding the orchestrator's own binary, used as
// the last-resort search root.
func NewResolver(fs afero.Fs, workDir, execDir string) *Resolver {
	return &Resolver{fs: fs, workDir: workDir, execDir: execDir}
}

// Locate returns the client project directory. The search order is the
// working directory, its parent, then the orchestrator's installation
// directory. The first existing directory wins; when none exists the
// fallback path is returned anyway and the caller decides whether that is
// fatal via Verify.
func (r *Resolver) Locate() string {
	candidates := []string{
		filepath.Join(r.workDir, clientDirName),
		filepath.Join(filepath.Dir(r.workDir), clientDirName),
		filepath.Join(r.execDir, clientDirName),
	}

	for _, candidate := range candidates[:len(candidates)-1] {
		if ok, _ := afero.DirExists(r.fs, candidate); ok {
			return candidate
		}
	}
	return candidates[len(candidates)-1]
}

// Verify confirms that dir exists and is a directory. A missing project
// directory wraps ErrNotFound so callers can fail fast before spawning any
// subprocess.
func (r *Resolver) Verify(dir string) error {
	ok, err := afero.DirExists(r.fs, dir)
	if err != nil {
		return fmt.Errorf("checking project directory %s: %w", dir, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, dir)
	}
	return nil
}

// EnsureOutputDir creates <base>/releases together with any missing
// ancestors and returns its path. Creation is idempotent.
func (r *Resolver) EnsureOutputDir(base string) (string, error) {
	outputDir := filepath.Join(base, releasesDirName)
	if err := r.fs.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}
	return outputDir, nil
}
