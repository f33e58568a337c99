// Package config loads the optional clientbuild.hcl file. Everything in it
// is an override; a missing file yields the zero configuration and the
// compiled-in defaults apply.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
)

// DefaultFileName is looked up in the working directory when no --config
// flag is given.
const DefaultFileName = "clientbuild.hcl"

// File is the decoded configuration file. Installer patterns and platform
// build flags are deliberately absent: those are conventions of the
// packaging tool, compiled in and not user-configurable.
type File struct {
	// ProjectDir overrides the client project directory search.
	ProjectDir string `hcl:"project_dir,optional"`

	// OutputDir overrides the base directory the release tree is created
	// under. Defaults to the project directory.
	OutputDir string `hcl:"output_dir,optional"`

	// Tool overrides the package manager binary name.
	Tool string `hcl:"tool,optional"`
}

// Load reads and decodes the configuration file at path. The file's
// expressions may reference the cwd variable, which evaluates to workDir.
// A missing file is not an error.
func Load(fs afero.Fs, path, workDir string) (*File, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config %s: %w", path, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"cwd": cty.StringVal(workDir),
		},
	}

	var cfg File
	if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config %s: %w", path, diags)
	}
	return &cfg, nil
}
