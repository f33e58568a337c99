package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Synonyms(t *testing.T) {
	t.Parallel()

	cases := map[string]Target{
		"windows": Windows,
		"win":     Windows,
		"WIN":     Windows,
		"Windows": Windows,
		"linux":   Linux,
		"ubuntu":  Linux,
		"debian":  Linux,
		"macos":   MacOS,
		"mac":     MacOS,
		"darwin":  MacOS,
		"Darwin":  MacOS,
		"all":     All,
		"ALL":     All,
	}

	for token, want := range cases {
		got, err := Parse(token)
		require.NoError(t, err, "token %q should parse", token)
		require.Equal(t, want, got, "token %q", token)
	}
}

func TestParse_EmptyTokenDefaultsToAll(t *testing.T) {
	t.Parallel()

	got, err := Parse("")
	require.NoError(t, err)
	require.Equal(t, All, got)
}

func TestParse_InvalidToken(t *testing.T) {
	t.Parallel()

	_, err := Parse("bogus")
	require.Error(t, err)

	var invalidErr *InvalidError
	require.ErrorAs(t, err, &invalidErr)
	require.Equal(t, "bogus", invalidErr.Token)
	require.Contains(t, err.Error(), `"bogus"`, "the error should name the offending token")
	require.Contains(t, err.Error(), "windows, linux, macos, all", "the error should list the valid options")
}

func TestExpand_AllYieldsConcreteTargetsInStableOrder(t *testing.T) {
	t.Parallel()

	require.Equal(t, []Target{Windows, Linux, MacOS}, All.Expand())
}

func TestExpand_ConcreteTargetYieldsItself(t *testing.T) {
	t.Parallel()

	for _, target := range []Target{Windows, Linux, MacOS} {
		require.Equal(t, []Target{target}, target.Expand())
	}
}

func TestTargetConventions(t *testing.T) {
	t.Parallel()

	require.Equal(t, "windows", Windows.Name())
	require.Equal(t, "linux", Linux.Name())
	require.Equal(t, "mac", MacOS.Name())
	require.Equal(t, "all", All.Name())

	require.Equal(t, "--win", Windows.BuildFlag())
	require.Equal(t, "--linux", Linux.BuildFlag())
	require.Equal(t, "--mac", MacOS.BuildFlag())
	require.Empty(t, All.BuildFlag(), "the bare build command delegates target selection to the tool")

	require.Equal(t, "win-unpacked", Windows.UnpackedDir())
	require.Equal(t, "linux-unpacked", Linux.UnpackedDir())
	require.Equal(t, "mac", MacOS.UnpackedDir())
	require.Empty(t, All.UnpackedDir(), "All collects from the output directory itself")

	require.Equal(t, []string{"*.exe"}, Windows.InstallerPatterns())
	require.Equal(t, []string{"*.AppImage", "*.deb"}, Linux.InstallerPatterns())
	require.Equal(t, []string{"*.dmg"}, MacOS.InstallerPatterns())
	require.Equal(t, []string{"*.exe", "*.AppImage", "*.deb", "*.dmg"}, All.InstallerPatterns())
}
