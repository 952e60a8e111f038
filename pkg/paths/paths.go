package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/smartcd/pkg/errors"
	"github.com/arthur-debert/smartcd/pkg/filesystem"
	"github.com/spf13/afero"
)

// Environment variable names
const (
	// EnvConfigFile overrides the configuration file location
	EnvConfigFile = "SMARTCD_CONFIG"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "smartcd"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"
)

// Paths provides centralized path management for smartcd
type Paths interface {
	Home() string
	Cwd() string
	DocumentsDir() string
	ConfigFilePath() string
	ExpandHome(path string) string
	Abs(path string) string
	DefaultRoots() []string
	NormalizeRoots(roots []string) []string
}

type paths struct {
	fs        afero.Fs
	home      string
	cwd       string
	documents string
}

// Options configures New
type Options struct {
	// FS is used for existence checks. Defaults to the OS filesystem.
	FS afero.Fs

	// Cwd is the directory relative tokens are resolved against. Defaults
	// to the process working directory.
	Cwd string

	// Home overrides the home directory.
	Home string

	// DocumentsDir overrides the XDG documents directory.
	DocumentsDir string
}

// New creates a Paths instance
func New(opts Options) (Paths, error) {
	p := &paths{fs: opts.FS}
	if p.fs == nil {
		p.fs = filesystem.NewOS()
	}

	p.home = opts.Home
	if p.home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = os.Getenv(EnvHome)
		}
		if home == "" {
			return nil, errors.New(errors.ErrInternal, "cannot determine home directory")
		}
		p.home = home
	}

	p.cwd = opts.Cwd
	if p.cwd == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot determine working directory")
		}
		p.cwd = cwd
	}
	p.cwd = filepath.Clean(p.cwd)

	p.documents = opts.DocumentsDir
	if p.documents == "" {
		p.documents = xdg.UserDirs.Documents
	}

	return p, nil
}

// Home returns the user's home directory
func (p *paths) Home() string {
	return p.home
}

// Cwd returns the directory relative paths are resolved against
func (p *paths) Cwd() string {
	return p.cwd
}

// DocumentsDir returns the documents directory, or "" when it does not exist
func (p *paths) DocumentsDir() string {
	if filesystem.IsDir(p.fs, p.documents) {
		return p.documents
	}
	return ""
}

// ConfigFilePath returns the user configuration file path
func (p *paths) ConfigFilePath() string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return p.ExpandHome(path)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// ExpandHome expands a leading ~ or ~/ to the home directory.
// Other tilde forms (~user, ~-, ~+) are returned unchanged.
func (p *paths) ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) == 1 {
		return p.home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(p.home, path[2:])
	}
	return path
}

// Abs expands ~ and makes path absolute against Cwd
func (p *paths) Abs(path string) string {
	path = p.ExpandHome(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.cwd, path)
}

// DefaultRoots returns the default search roots: cwd, documents, home
func (p *paths) DefaultRoots() []string {
	return p.NormalizeRoots([]string{p.cwd, p.documents, p.home})
}

// NormalizeRoots expands and absolutizes roots, drops missing ones and
// removes duplicates keeping the first occurrence.
func (p *paths) NormalizeRoots(roots []string) []string {
	seen := make(map[string]bool, len(roots))
	var out []string
	for _, root := range roots {
		if root == "" {
			continue
		}
		abs := p.Abs(root)
		if seen[abs] {
			continue
		}
		seen[abs] = true
		if !filesystem.IsDir(p.fs, abs) {
			continue
		}
		out = append(out, abs)
	}
	return out
}
