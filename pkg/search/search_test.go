// pkg/search/search_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: in-memory filesystem, fake fd runner
// PURPOSE: Test search orchestration, dedup, filtering and both backends

package search

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	smerrors "github.com/arthur-debert/smartcd/pkg/errors"
	"github.com/arthur-debert/smartcd/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSearcher returns canned results per root
type stubSearcher struct {
	available bool
	results   map[string][]string
	errs      map[string]error
	queries   []Query
}

func (s *stubSearcher) Name() string    { return "stub" }
func (s *stubSearcher) Available() bool { return s.available }
func (s *stubSearcher) Find(_ context.Context, q Query) ([]string, error) {
	s.queries = append(s.queries, q)
	return s.results[q.Root], s.errs[q.Root]
}

func TestSearchDedupAcrossRoots(t *testing.T) {
	stub := &stubSearcher{available: true, results: map[string][]string{
		"/home/alice":          {"/home/alice/Projects/WebApp", "/home/alice/Documents/webapp"},
		"/home/alice/Projects": {"/home/alice/Projects/WebApp", "/home/alice/Projects/webapp-archive"},
	}}

	got, err := Search(context.Background(), stub, "webapp", Options{
		Roots: []string{"/home/alice", "/home/alice/Projects"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/home/alice/Projects/WebApp",
		"/home/alice/Documents/webapp",
		"/home/alice/Projects/webapp-archive",
	}, got)
}

func TestSearchQueryParameters(t *testing.T) {
	stub := &stubSearcher{available: true}

	_, err := Search(context.Background(), stub, "proj", Options{
		Roots:    []string{"/a", "/b"},
		Excludes: []string{".git"},
	})
	require.NoError(t, err)
	require.Len(t, stub.queries, 2)
	assert.Equal(t, "/a", stub.queries[0].Root)
	assert.Equal(t, "/b", stub.queries[1].Root)
	assert.Equal(t, DefaultMaxDepth, stub.queries[0].MaxDepth)
	assert.False(t, stub.queries[0].Hidden)
	assert.Equal(t, []string{".git"}, stub.queries[0].Excludes)

	stub.queries = nil
	_, err = Search(context.Background(), stub, ".conf", Options{Roots: []string{"/a"}, MaxDepth: 3})
	require.NoError(t, err)
	assert.True(t, stub.queries[0].Hidden, "dot tokens always search hidden directories")
	assert.Equal(t, 3, stub.queries[0].MaxDepth)
}

func TestSearchEmptyIsNotAnError(t *testing.T) {
	stub := &stubSearcher{available: true}

	got, err := Search(context.Background(), stub, "nothing", Options{Roots: []string{"/a"}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchToolMissing(t *testing.T) {
	_, err := Search(context.Background(), &stubSearcher{}, "x", Options{Roots: []string{"/a"}})
	require.Error(t, err)
	assert.True(t, smerrors.IsErrorCode(err, smerrors.ErrToolMissing))
}

func TestSearchKeepsPartialResults(t *testing.T) {
	stub := &stubSearcher{
		available: true,
		results:   map[string][]string{"/a": {"/a/x"}, "/b": {"/b/x"}},
		errs:      map[string]error{"/a": errors.New("permission denied")},
	}

	got, err := Search(context.Background(), stub, "x", Options{Roots: []string{"/a", "/b"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/x", "/b/x"}, got)
}

func TestSearchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Search(ctx, &stubSearcher{available: true}, "x", Options{Roots: []string{"/a"}})
	require.Error(t, err)
	assert.True(t, smerrors.IsErrorCode(err, smerrors.ErrCancelled))
}

func TestSearchFiltersNoisyPrefixes(t *testing.T) {
	stub := &stubSearcher{available: true, results: map[string][]string{
		"/": {"/mnt/wsl/docker", "/mnt/wslg", "/home/a/.wine/dosdevices/c:/proj", "/home/a/proj"},
	}}

	got, err := Search(context.Background(), stub, "x", Options{
		Roots:         []string{"/"},
		NoisyPrefixes: []string{"/mnt/wsl", "/home/*/.wine"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/mnt/wslg", "/home/a/proj"}, got)
}

func TestDedup(t *testing.T) {
	assert.Equal(t, []string{"/a", "/b"}, Dedup([]string{"/a", "/b/", "/a", "/b"}))
	assert.Empty(t, Dedup(nil))
}

func TestMatchName(t *testing.T) {
	tests := []struct {
		token, name string
		want        bool
	}{
		{"webapp", "WebApp", true},
		{"webapp", "webapp-archive", true},
		{"webapp", "my-webapp", true},
		{"WebApp", "webapp", false},
		{"WebApp", "WebApp-old", true},
		{"proj", "prj", false},
		{"pro*ct", "project", true},
		{"", "anything", true},
	}
	for _, tt := range tests {
		t.Run(tt.token+"/"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchName(tt.token, tt.name))
		})
	}
}

func newWalkFixture(t *testing.T) afero.Fs {
	t.Helper()
	fsys := filesystem.NewMemory()
	require.NoError(t, filesystem.MkdirAll(fsys,
		"/home/alice/Projects/WebApp/src",
		"/home/alice/Projects/webapp-archive",
		"/home/alice/Projects/WebApp/node_modules/webapp-lib",
		"/home/alice/.hidden/webapp-secret",
		"/home/alice/go/pkg/mod/webapp@v1",
		"/home/alice/a/b/c/d/webapp-deep",
	))
	require.NoError(t, afero.WriteFile(fsys, "/home/alice/webapp.txt", []byte("x"), 0644))
	return fsys
}

func TestWalkSearcher(t *testing.T) {
	fsys := newWalkFixture(t)
	w := NewWalkSearcher(fsys)

	t.Run("matches directories only, honours excludes", func(t *testing.T) {
		got, err := w.Find(context.Background(), Query{
			Token:    "webapp",
			Root:     "/home/alice",
			MaxDepth: 8,
			Excludes: []string{"node_modules", "pkg/mod"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"/home/alice/Projects/WebApp",
			"/home/alice/Projects/webapp-archive",
			"/home/alice/a/b/c/d/webapp-deep",
		}, got)
	})

	t.Run("hidden directories when asked", func(t *testing.T) {
		got, err := w.Find(context.Background(), Query{
			Token: "secret", Root: "/home/alice", MaxDepth: 8, Hidden: true,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"/home/alice/.hidden/webapp-secret"}, got)
	})

	t.Run("depth limit", func(t *testing.T) {
		got, err := w.Find(context.Background(), Query{
			Token: "webapp", Root: "/home/alice", MaxDepth: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"/home/alice/Projects/WebApp",
			"/home/alice/Projects/webapp-archive",
		}, got)
	})

	t.Run("root itself is not reported", func(t *testing.T) {
		got, err := w.Find(context.Background(), Query{
			Token: "WebApp", Root: "/home/alice/Projects/WebApp", MaxDepth: 8,
		})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing root yields nothing", func(t *testing.T) {
		got, err := w.Find(context.Background(), Query{Token: "x", Root: "/nope", MaxDepth: 8})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestWalkSearcherOnDisk(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"Projects/WebApp", "Projects/webapp-archive", ".git/webapp"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))
	}

	got, err := Search(context.Background(), NewWalkSearcher(filesystem.NewOS()), "webapp", Options{
		Roots:    []string{root, filepath.Join(root, "Projects")},
		Hidden:   true,
		Excludes: []string{".git"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "Projects", "WebApp"),
		filepath.Join(root, "Projects", "webapp-archive"),
	}, got)
}

func TestFdArgs(t *testing.T) {
	args := FdArgs(Query{
		Token:    "proj",
		Root:     "/home/alice",
		MaxDepth: 8,
		Hidden:   true,
		Excludes: []string{".git", "node_modules"},
	})

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "--type d")
	assert.Contains(t, joined, "--max-depth 8")
	assert.Contains(t, joined, "--glob")
	assert.Contains(t, joined, "--hidden")
	assert.Contains(t, joined, "--exclude .git --exclude node_modules")
	assert.Equal(t, []string{"--", "*proj*", "/home/alice"}, args[len(args)-3:])

	args = FdArgs(Query{Token: "proj", Root: "/", MaxDepth: 1})
	assert.NotContains(t, args, "--hidden")
}

func TestFdArgsExcludesApplyAtAnyDepth(t *testing.T) {
	args := FdArgs(Query{
		Token:    "proj",
		Root:     "/home/alice",
		MaxDepth: 8,
		Excludes: []string{"pkg/mod", "/.local/share/Trash/", "**/vendor/cache", ".git", ""},
	})

	var excludes []string
	for i, arg := range args {
		if arg == "--exclude" {
			excludes = append(excludes, args[i+1])
		}
	}
	assert.Equal(t, []string{"**/pkg/mod", "**/.local/share/Trash", "**/vendor/cache", ".git"}, excludes)
}

func TestWalkSearcherNestedSlashExclude(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, filesystem.MkdirAll(fsys,
		"/home/alice/go/pkg/mod/proj-lib",
		"/home/alice/code/proj-app",
	))

	got, err := NewWalkSearcher(fsys).Find(context.Background(), Query{
		Token: "proj", Root: "/home/alice", MaxDepth: 8, Excludes: []string{"pkg/mod"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/home/alice/code/proj-app"}, got)
}

func TestFdSearcherFind(t *testing.T) {
	var gotName string
	var gotArgs []string
	runner := func(_ context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		gotArgs = args
		return []byte("/home/alice/Projects/WebApp/\n\n/home/alice/Projects/webapp-archive/\n"), nil
	}

	fd := NewFdSearcherWith("/usr/bin/fd", runner)
	assert.True(t, fd.Available())

	got, err := fd.Find(context.Background(), Query{Token: "webapp", Root: "/home/alice", MaxDepth: 8})
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/fd", gotName)
	assert.Equal(t, "/home/alice", gotArgs[len(gotArgs)-1])
	assert.Equal(t, []string{"/home/alice/Projects/WebApp", "/home/alice/Projects/webapp-archive"}, got)
}

func TestFdSearcherFailureKeepsOutput(t *testing.T) {
	runner := func(context.Context, string, ...string) ([]byte, error) {
		return []byte("/a/x/\n"), errors.New("exit status 1")
	}

	got, err := NewFdSearcherWith("fd", runner).Find(context.Background(), Query{Token: "x", Root: "/a", MaxDepth: 1})
	require.Error(t, err)
	assert.True(t, smerrors.IsErrorCode(err, smerrors.ErrToolFailed))
	assert.Equal(t, []string{"/a/x"}, got)
}

func TestFdSearcherUnavailable(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	assert.False(t, NewFdSearcher().Available())
}

func TestNewSearcher(t *testing.T) {
	fsys := filesystem.NewMemory()

	assert.Equal(t, "walk", NewSearcher("walk", fsys).Name())
	assert.Equal(t, "fd", NewSearcher("fd", fsys).Name())

	t.Setenv("PATH", t.TempDir())
	assert.Equal(t, "walk", NewSearcher("auto", fsys).Name())
}

func TestParseLines(t *testing.T) {
	assert.Equal(t, []string{"/a", "/b c"}, ParseLines([]byte("/a/\r\n/b c/\n  \n")))
	assert.Empty(t, ParseLines(nil))
}
