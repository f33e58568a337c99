package collect

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

// CopyTree recursively copies the contents of src into dst, creating dst
// and any missing ancestors. Existing destination files are overwritten, so
// repeating a copy yields an identical tree. Symlinks get no special
// handling and permission bits are not preserved; the source tree is
// assumed acyclic, which holds for ordinary build output.
func CopyTree(fsys afero.Fs, src, dst string) error {
	if err := fsys.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dst, err)
	}

	entries, err := afero.ReadDir(fsys, src)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", src, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := CopyTree(fsys, srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(fsys, srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies a single file, truncating any existing destination.
func copyFile(fsys afero.Fs, src, dst string) error {
	in, err := fsys.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := fsys.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}
