package search

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// WalkSearcher searches by walking an afero filesystem in process.
// Symlinked directories are reported by neither backend and not followed.
type WalkSearcher struct {
	fs afero.Fs
}

// NewWalkSearcher creates a WalkSearcher over fsys
func NewWalkSearcher(fsys afero.Fs) *WalkSearcher {
	return &WalkSearcher{fs: fsys}
}

// Name implements Searcher
func (w *WalkSearcher) Name() string { return "walk" }

// Available implements Searcher
func (w *WalkSearcher) Available() bool { return true }

// Find implements Searcher
func (w *WalkSearcher) Find(ctx context.Context, q Query) ([]string, error) {
	root := filepath.Clean(q.Root)
	var found []string

	err := afero.Walk(w.fs, root, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			// unreadable entries are skipped, like fd does
			if info != nil && info.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}
		if !info.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		name := info.Name()

		if !q.Hidden && strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}
		if excluded(rel, q.Excludes) {
			return filepath.SkipDir
		}

		depth := strings.Count(filepath.ToSlash(rel), "/") + 1
		if depth > q.MaxDepth {
			return filepath.SkipDir
		}

		if MatchName(q.Token, name) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil && err != filepath.SkipDir {
		return found, err
	}
	return found, nil
}

// excluded reports whether the directory at rel (relative to the search
// root) matches an exclude pattern anywhere in the tree.
func excluded(rel string, excludes []string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range excludes {
		pattern = strings.Trim(filepath.ToSlash(pattern), "/")
		if pattern == "" {
			continue
		}
		if ok, _ := doublestar.Match("**/"+pattern, rel); ok {
			return true
		}
	}
	return false
}
