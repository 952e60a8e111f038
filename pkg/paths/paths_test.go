package paths

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/smartcd/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPaths(t *testing.T, dirs ...string) Paths {
	t.Helper()
	fsys := filesystem.NewMemory()
	require.NoError(t, filesystem.MkdirAll(fsys, dirs...))

	p, err := New(Options{
		FS:           fsys,
		Cwd:          "/home/alice/work",
		Home:         "/home/alice",
		DocumentsDir: "/home/alice/Documents",
	})
	require.NoError(t, err)
	return p
}

func TestExpandHome(t *testing.T) {
	p := newTestPaths(t)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", "/home/alice"},
		{"~/src", "/home/alice/src"},
		{"~-", "~-"},
		{"~+", "~+"},
		{"~bob/src", "~bob/src"},
		{"/etc", "/etc"},
		{"rel/dir", "rel/dir"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ExpandHome(tt.in))
		})
	}
}

func TestAbs(t *testing.T) {
	p := newTestPaths(t)

	assert.Equal(t, "/home/alice/work/sub", p.Abs("sub"))
	assert.Equal(t, "/home/alice", p.Abs(".."))
	assert.Equal(t, "/home/alice/Docs", p.Abs("~/Docs"))
	assert.Equal(t, "/etc", p.Abs("/etc/"))
}

func TestDefaultRoots(t *testing.T) {
	t.Run("with documents directory", func(t *testing.T) {
		p := newTestPaths(t, "/home/alice/work", "/home/alice/Documents")
		assert.Equal(t, []string{"/home/alice/work", "/home/alice/Documents", "/home/alice"}, p.DefaultRoots())
	})

	t.Run("without documents directory", func(t *testing.T) {
		p := newTestPaths(t, "/home/alice/work")
		assert.Equal(t, []string{"/home/alice/work", "/home/alice"}, p.DefaultRoots())
		assert.Empty(t, p.DocumentsDir())
	})
}

func TestNormalizeRoots(t *testing.T) {
	p := newTestPaths(t, "/home/alice/work", "/srv/data")

	got := p.NormalizeRoots([]string{"~", "/srv/data", "", "/missing", "/home/alice/", "."})
	assert.Equal(t, []string{"/home/alice", "/srv/data", "/home/alice/work"}, got)
}

func TestConfigFilePath(t *testing.T) {
	p := newTestPaths(t)

	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvConfigFile, "~/cfg/smartcd.toml")
		assert.Equal(t, "/home/alice/cfg/smartcd.toml", p.ConfigFilePath())
	})

	t.Run("xdg default", func(t *testing.T) {
		t.Setenv(EnvConfigFile, "")
		got := p.ConfigFilePath()
		assert.Equal(t, filepath.Join(AppDirName, ConfigFileName), filepath.Join(filepath.Base(filepath.Dir(got)), filepath.Base(got)))
	})
}
