// Package collect gathers the outputs of a completed platform build into
// the per-platform release tree: the unpacked application directory plus
// any installer packages matching the platform's filename patterns.
package collect

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/openkimi/clientbuild/internal/buildtool"
	"github.com/openkimi/clientbuild/internal/ctxlog"
)

// Collector copies build outputs into the release tree. Filesystem access
// goes through afero so collection is testable against an in-memory fs.
type Collector struct {
	fs afero.Fs
}

// New creates a Collector over the given filesystem.
func New(fs afero.Fs) *Collector {
	return &Collector{fs: fs}
}

// Collect copies one build's artifacts into <outputRoot>/<platform>.
//
// A failed outcome skips collection entirely and returns nil: the failure
// was already reported by the build step and no partial tree is written.
// On success the unpacked application tree is copied first, then every
// installer file matching the platform's patterns directly under the build
// output directory. A copy error aborts collection for this platform;
// already-copied files are left in place.
func (c *Collector) Collect(ctx context.Context, outcome buildtool.Outcome, outputRoot string) error {
	logger := ctxlog.FromContext(ctx)

	if !outcome.Success() {
		logger.Warn("Build failed, skipping artifact collection.",
			"platform", outcome.Target.Name(), "exit_code", outcome.ExitCode)
		return nil
	}

	platformDir := filepath.Join(outputRoot, outcome.Target.Name())
	if err := c.fs.MkdirAll(platformDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", platformDir, err)
	}

	srcDir := outcome.OutputDir
	if sub := outcome.Target.UnpackedDir(); sub != "" {
		srcDir = filepath.Join(outcome.OutputDir, sub)
	}

	logger.Info("Copying unpacked application tree.", "platform", outcome.Target.Name(), "src", srcDir)
	if err := CopyTree(c.fs, srcDir, platformDir); err != nil {
		return err
	}

	copied, err := c.copyInstallers(ctx, outcome, platformDir)
	if err != nil {
		return err
	}
	if copied == 0 {
		// A successful build without a single recognizable installer is
		// suspicious enough to surface, but not an error.
		logger.Warn("No installer packages found in build output.",
			"platform", outcome.Target.Name(), "dir", outcome.OutputDir)
	}
	return nil
}

// copyInstallers copies every file directly under the build output
// directory whose name matches one of the target's installer patterns.
func (c *Collector) copyInstallers(ctx context.Context, outcome buildtool.Outcome, platformDir string) (int, error) {
	logger := ctxlog.FromContext(ctx)

	entries, err := afero.ReadDir(c.fs, outcome.OutputDir)
	if err != nil {
		return 0, fmt.Errorf("reading build output %s: %w", outcome.OutputDir, err)
	}

	copied := 0
	for _, pattern := range outcome.Target.InstallerPatterns() {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ok, err := filepath.Match(pattern, entry.Name())
			if err != nil {
				return copied, fmt.Errorf("matching pattern %s: %w", pattern, err)
			}
			if !ok {
				continue
			}

			src := filepath.Join(outcome.OutputDir, entry.Name())
			dst := filepath.Join(platformDir, entry.Name())
			if err := copyFile(c.fs, src, dst); err != nil {
				return copied, err
			}
			logger.Info("Copied installer package.", "file", dst)
			copied++
		}
	}
	return copied, nil
}
