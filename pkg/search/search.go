package search

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/smartcd/pkg/errors"
	"github.com/arthur-debert/smartcd/pkg/logging"
	"github.com/bmatcuk/doublestar/v4"
)

// DefaultMaxDepth is used when Options.MaxDepth is not positive
const DefaultMaxDepth = 8

// Query is a single-root search request
type Query struct {
	Token    string
	Root     string
	MaxDepth int
	Hidden   bool
	Excludes []string
}

// Searcher enumerates directories below one root whose name matches a token
type Searcher interface {
	// Name identifies the backend in logs
	Name() string
	// Available reports whether the backend can run at all
	Available() bool
	// Find returns absolute directory paths. Partial results may accompany
	// an error.
	Find(ctx context.Context, q Query) ([]string, error)
}

// Options configures Search
type Options struct {
	Roots         []string
	MaxDepth      int
	Hidden        bool
	Excludes      []string
	NoisyPrefixes []string
}

// Search runs s below every root and returns deduplicated candidates in
// root order.
func Search(ctx context.Context, s Searcher, token string, opts Options) ([]string, error) {
	logger := logging.GetLogger("search")
	defer logging.LogOperationStart(logger, "search")()

	if !s.Available() {
		return nil, errors.Newf(errors.ErrToolMissing, "search tool %s is not installed", s.Name())
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	hidden := opts.Hidden || strings.HasPrefix(token, ".")

	var all []string
	for _, root := range opts.Roots {
		found, err := s.Find(ctx, Query{
			Token:    token,
			Root:     root,
			MaxDepth: maxDepth,
			Hidden:   hidden,
			Excludes: opts.Excludes,
		})
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrap(ctxErr, errors.ErrCancelled, "search cancelled")
		}
		if err != nil {
			logger.Warn().Err(err).Str("root", root).Str("backend", s.Name()).Msg("Search reported an error, keeping partial results")
		}
		logger.Debug().Str("root", root).Int("found", len(found)).Msg("Searched root")
		all = append(all, found...)
	}

	results := FilterNoisy(Dedup(all), opts.NoisyPrefixes)
	logger.Debug().Str("token", token).Int("candidates", len(results)).Msg("Search finished")
	return results, nil
}

// Dedup removes duplicate paths keeping the first occurrence
func Dedup(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		p = filepath.Clean(p)
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// FilterNoisy drops every path equal to or below one of prefixes.
// Prefixes may be doublestar globs.
func FilterNoisy(paths []string, prefixes []string) []string {
	if len(prefixes) == 0 {
		return paths
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !underAny(p, prefixes) {
			out = append(out, p)
		}
	}
	return out
}

func underAny(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		prefix = strings.TrimSuffix(filepath.Clean(prefix), string(filepath.Separator))
		if prefix == "" || prefix == "." {
			continue
		}
		if hasMeta(prefix) {
			if ok, _ := doublestar.PathMatch(prefix, path); ok {
				return true
			}
			if ok, _ := doublestar.PathMatch(prefix+"/**", path); ok {
				return true
			}
			continue
		}
		if path == prefix || strings.HasPrefix(path, prefix+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// MatchName reports whether a directory name matches token the way
// `fd --glob '*token*'` does, including smart case.
func MatchName(token, name string) bool {
	if token == "" {
		return true
	}
	if !hasUpper(token) {
		token = strings.ToLower(token)
		name = strings.ToLower(name)
	}
	ok, err := doublestar.Match("*"+token+"*", name)
	if err != nil {
		return strings.Contains(name, token)
	}
	return ok
}

func hasUpper(s string) bool {
	return strings.ToLower(s) != s
}
