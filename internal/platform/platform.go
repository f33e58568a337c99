// Package platform defines the closed set of packaging targets the build
// orchestrator knows how to drive, together with the per-target
// conventions of the electron-builder toolchain such as build flags and
// installer file patterns.
package platform

import (
	"fmt"
	"strings"
)

// Target identifies one packaging target of the client build.
type Target int

const (
	Windows Target = iota
	Linux
	MacOS
	// All is a meta-selector. It is expanded into the concrete targets
	// before any build runs and is never built directly, except when the
	// external tool is asked for its own all-in-one build.
	All
)

// InvalidError reports a platform token that is not part of the closed set.
type InvalidError struct {
	Token string
}

// Error implements the error interface for InvalidError.
func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid platform %q (valid options: windows, linux, macos, all)", e.Token)
}

// Parse maps a user-supplied token to a Target. Matching is case-insensitive
// and accepts the common synonyms for each operating system. An empty token
// defaults to All.
func Parse(token string) (Target, error) {
	switch strings.ToLower(token) {
	case "":
		return All, nil
	case "windows", "win":
		return Windows, nil
	case "linux", "ubuntu", "debian":
		return Linux, nil
	case "macos", "mac", "darwin":
		return MacOS, nil
	case "all":
		return All, nil
	default:
		return All, &InvalidError{Token: token}
	}
}

// Name returns the target's canonical name, used for the per-platform
// subdirectory of the release tree.
func (t Target) Name() string {
	switch t {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case MacOS:
		return "mac"
	default:
		return "all"
	}
}

// String implements fmt.Stringer.
func (t Target) String() string {
	return t.Name()
}

// BuildFlag returns the electron-builder platform flag passed through the
// package manager's build script. All returns an empty string: the bare
// build command delegates the multi-target decision to the external tool.
func (t Target) BuildFlag() string {
	switch t {
	case Windows:
		return "--win"
	case Linux:
		return "--linux"
	case MacOS:
		return "--mac"
	default:
		return ""
	}
}

// UnpackedDir returns the name of the unpacked-application subdirectory the
// packaging tool writes under its output directory. All returns an empty
// string, meaning the output directory itself is the source tree.
func (t Target) UnpackedDir() string {
	switch t {
	case Windows:
		return "win-unpacked"
	case Linux:
		return "linux-unpacked"
	case MacOS:
		return "mac"
	default:
		return ""
	}
}

// InstallerPatterns returns the filename globs identifying installer
// packages for the target. The set is fixed and compiled in.
func (t Target) InstallerPatterns() []string {
	switch t {
	case Windows:
		return []string{"*.exe"}
	case Linux:
		return []string{"*.AppImage", "*.deb"}
	case MacOS:
		return []string{"*.dmg"}
	default:
		return []string{"*.exe", "*.AppImage", "*.deb", "*.dmg"}
	}
}

// Expand resolves the All meta-selector into the concrete target list, in a
// stable build order. A concrete target expands to itself.
func (t Target) Expand() []Target {
	if t == All {
		return []Target{Windows, Linux, MacOS}
	}
	return []Target{t}
}
