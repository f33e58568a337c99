package collect

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// writeFile is a test helper that creates a file with parent directories.
func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestCopyTree_ReproducesNestedStructure(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/src/app.bin", "binary")
	writeFile(t, fs, "/src/resources/app.asar", "asar")
	writeFile(t, fs, "/src/resources/locales/en.pak", "en")
	writeFile(t, fs, "/src/resources/locales/zh.pak", "zh")

	require.NoError(t, CopyTree(fs, "/src", "/dst"))

	for path, want := range map[string]string{
		"/dst/app.bin":                  "binary",
		"/dst/resources/app.asar":       "asar",
		"/dst/resources/locales/en.pak": "en",
		"/dst/resources/locales/zh.pak": "zh",
	} {
		got, err := afero.ReadFile(fs, path)
		require.NoError(t, err, "expected %s to exist", path)
		require.Equal(t, want, string(got))
	}
}

func TestCopyTree_OverwritesExistingFiles(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/src/app.bin", "new")
	writeFile(t, fs, "/dst/app.bin", "old")

	require.NoError(t, CopyTree(fs, "/src", "/dst"))

	got, err := afero.ReadFile(fs, "/dst/app.bin")
	require.NoError(t, err)
	require.Equal(t, "new", string(got))
}

func TestCopyTree_IsIdempotent(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/src/a/b/c.txt", "c")
	writeFile(t, fs, "/src/top.txt", "top")

	require.NoError(t, CopyTree(fs, "/src", "/dst"))
	require.NoError(t, CopyTree(fs, "/src", "/dst"))

	got, err := afero.ReadFile(fs, "/dst/a/b/c.txt")
	require.NoError(t, err)
	require.Equal(t, "c", string(got))

	got, err = afero.ReadFile(fs, "/dst/top.txt")
	require.NoError(t, err)
	require.Equal(t, "top", string(got))
}

func TestCopyTree_MissingSourceFails(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	require.Error(t, CopyTree(fs, "/does-not-exist", "/dst"))
}
