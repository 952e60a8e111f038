package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// NewMemory creates an empty in-memory filesystem
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// IsDir reports whether path exists on fsys and is a directory.
// Symlinks are followed, matching what `cd` would do.
func IsDir(fsys afero.Fs, path string) bool {
	if path == "" {
		return false
	}
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ListDir returns the entries of dir sorted by name.
// Entries whose target cannot be stat'ed (dangling symlinks) are reported
// with their own lstat information.
func ListDir(fsys afero.Fs, dir string) ([]os.FileInfo, error) {
	return afero.ReadDir(fsys, dir)
}

// IsSubdir reports whether entry, listed from dir, is a directory. Symlinks
// are followed.
func IsSubdir(fsys afero.Fs, dir string, entry os.FileInfo) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Mode()&os.ModeSymlink != 0 {
		return IsDir(fsys, filepath.Join(dir, entry.Name()))
	}
	return false
}

// MkdirAll creates every directory in dirs on fsys. It is a convenience for
// building fixtures.
func MkdirAll(fsys afero.Fs, dirs ...string) error {
	for _, dir := range dirs {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
