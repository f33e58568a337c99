package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/openkimi/clientbuild/internal/buildtool"
	"github.com/openkimi/clientbuild/internal/collect"
	"github.com/openkimi/clientbuild/internal/config"
	"github.com/openkimi/clientbuild/internal/ctxlog"
	"github.com/openkimi/clientbuild/internal/platform"
	"github.com/openkimi/clientbuild/internal/project"
)

// targetResult records how one platform's build iteration ended, for the
// final summary.
type targetResult struct {
	target platform.Target
	err    error
	built  bool
}

// Run executes the whole build: resolve the project directory, prepare the
// release tree, then build and collect each expanded target sequentially.
// A returned error is fatal for the run; per-platform build failures are
// recorded and reported without stopping the remaining platforms.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = filepath.Join(cfg.WorkDir, config.DefaultFileName)
	}
	fileCfg, err := config.Load(a.fs, configPath, cfg.WorkDir)
	if err != nil {
		return err
	}

	resolver := project.NewResolver(a.fs, cfg.WorkDir, cfg.ExecDir)

	projectDir := cfg.ProjectDir
	if projectDir == "" {
		projectDir = fileCfg.ProjectDir
	}
	if projectDir == "" {
		projectDir = resolver.Locate()
	}
	if err := resolver.Verify(projectDir); err != nil {
		return err
	}
	a.logger.Info("📂 Client project directory resolved.", "project_dir", projectDir)

	outputBase := fileCfg.OutputDir
	if outputBase == "" {
		outputBase = projectDir
	}
	outputDir, err := resolver.EnsureOutputDir(outputBase)
	if err != nil {
		return err
	}
	a.logger.Info("📂 Output directory ready.", "output_dir", outputDir)

	runner := buildtool.NewRunner(a.cmd, fileCfg.Tool)
	collector := collect.New(a.fs)

	targets := cfg.Target.Expand()
	results := make([]targetResult, 0, len(targets))

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.logger.Info("🚀 Starting platform build.", "platform", target.Name())
		outcome, err := runner.Build(ctx, target, projectDir)
		if err != nil {
			// The tool itself could not be spawned; nothing else can run.
			return err
		}

		res := targetResult{target: target, built: outcome.Success()}
		if !outcome.Success() {
			res.err = fmt.Errorf("build exited with code %d", outcome.ExitCode)
		} else if err := collector.Collect(ctx, outcome, outputDir); err != nil {
			// Fatal for this platform only; remaining platforms still run.
			a.logger.Error("Artifact collection failed.", "platform", target.Name(), "error", err)
			res.err = err
		}
		results = append(results, res)
	}

	a.printSummary(results, outputDir)
	a.logger.Debug("App.Run method finished.")
	return nil
}

// printSummary writes the per-platform outcome list and the release tree
// location, regardless of how many platforms succeeded.
func (a *App) printSummary(results []targetResult, outputDir string) {
	for _, res := range results {
		switch {
		case res.err == nil:
			fmt.Fprintf(a.outW, "✅ %s build succeeded\n", res.target.Name())
		case res.built:
			fmt.Fprintf(a.outW, "❌ %s artifact collection failed: %v\n", res.target.Name(), res.err)
		default:
			fmt.Fprintf(a.outW, "❌ %s build failed: %v\n", res.target.Name(), res.err)
		}
	}
	fmt.Fprintf(a.outW, "🎉 Build finished. Artifacts are in %s (run %s)\n", outputDir, a.runID)
}
