package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsZeroConfig(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	cfg, err := Load(fs, "/work/clientbuild.hcl", "/work")
	require.NoError(t, err)
	require.Equal(t, &File{}, cfg)
}

func TestLoad_DecodesAttributes(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	content := `
project_dir = "/srv/kimi-electron-client"
output_dir  = "/srv/out"
tool        = "pnpm"
`
	require.NoError(t, afero.WriteFile(fs, "/work/clientbuild.hcl", []byte(content), 0o644))

	cfg, err := Load(fs, "/work/clientbuild.hcl", "/work")
	require.NoError(t, err)
	require.Equal(t, "/srv/kimi-electron-client", cfg.ProjectDir)
	require.Equal(t, "/srv/out", cfg.OutputDir)
	require.Equal(t, "pnpm", cfg.Tool)
}

func TestLoad_CwdInterpolation(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	content := `project_dir = "${cwd}/client"` + "\n"
	require.NoError(t, afero.WriteFile(fs, "/work/clientbuild.hcl", []byte(content), 0o644))

	cfg, err := Load(fs, "/work/clientbuild.hcl", "/work")
	require.NoError(t, err)
	require.Equal(t, "/work/client", cfg.ProjectDir)
}

func TestLoad_InvalidSyntaxFails(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/clientbuild.hcl", []byte(`project_dir = `), 0o644))

	_, err := Load(fs, "/work/clientbuild.hcl", "/work")
	require.Error(t, err)
}
