package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/smartcd/pkg/filesystem"
	"github.com/spf13/afero"
)

// EnvVars lists every environment variable that changes smartcd's behaviour
var EnvVars = []string{
	"SMARTCD_ROOTS",
	"SMARTCD_MAX_DEPTH",
	"SMARTCD_SEARCH_HIDDEN",
	"SMARTCD_BACKEND",
	"SMARTCD_EXCLUDES",
	"SMARTCD_NO_PICKER",
	"SMARTCD_PICKER",
	"SMARTCD_FZF_OPTS",
	"SMARTCD_CONFIG",
}

// MemFS returns an in-memory filesystem containing dirs
func MemFS(t *testing.T, dirs ...string) afero.Fs {
	t.Helper()

	fsys := filesystem.NewMemory()
	if err := filesystem.MkdirAll(fsys, dirs...); err != nil {
		t.Fatalf("Failed to create directories %v: %v", dirs, err)
	}
	return fsys
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

// CreateFile creates a file with the given content, creating parents
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// CreateSymlink creates a symbolic link pointing to target
func CreateSymlink(t *testing.T, target, link string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
		t.Fatalf("Failed to create parent directory for symlink %s: %v", link, err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Failed to create symlink %s -> %s: %v", link, target, err)
	}
}

// FakeCommand writes an executable shell script named name into dir
func FakeCommand(t *testing.T, dir, name, script string) string {
	t.Helper()
	SkipOnWindows(t)

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("Failed to write fake command %s: %v", path, err)
	}
	return path
}

// RequireCommand returns the path of name or skips the test
func RequireCommand(t *testing.T, name string) string {
	t.Helper()

	path, err := exec.LookPath(name)
	if err != nil {
		t.Skipf("%s not installed", name)
	}
	return path
}

// SkipOnWindows skips the test if running on Windows.
func SkipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("Test not supported on Windows")
	}
}

// Isolate clears smartcd's environment variables and points the
// configuration file and log directory into a fresh temporary directory,
// which is returned.
func Isolate(t *testing.T) string {
	t.Helper()

	tmp := t.TempDir()
	for _, name := range EnvVars {
		t.Setenv(name, "")
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("Failed to unset %s: %v", name, err)
		}
	}
	t.Setenv("SMARTCD_CONFIG", filepath.Join(tmp, "config.toml"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	return tmp
}
