package resolve

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/smartcd/pkg/errors"
	"github.com/arthur-debert/smartcd/pkg/filesystem"
	"github.com/arthur-debert/smartcd/pkg/logging"
	"github.com/arthur-debert/smartcd/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Resolver resolves tokens against a filesystem
type Resolver struct {
	fs     afero.Fs
	paths  paths.Paths
	logger zerolog.Logger
}

// New creates a Resolver
func New(fsys afero.Fs, p paths.Paths) *Resolver {
	return &Resolver{
		fs:     fsys,
		paths:  p,
		logger: logging.GetLogger("resolve"),
	}
}

// Exact returns the absolute form of token and whether it is an existing
// directory. Tilde expansion follows paths.ExpandHome.
func (r *Resolver) Exact(token string) (string, bool) {
	abs := r.paths.Abs(token)
	return abs, filesystem.IsDir(r.fs, abs)
}

// CaseInsensitive resolves token one segment at a time, matching each
// segment ignoring case when no exact entry exists. The returned path
// carries the on-disk casing.
func (r *Resolver) CaseInsensitive(token string) (string, error) {
	expanded := r.paths.ExpandHome(token)

	current := r.paths.Cwd()
	if filepath.IsAbs(expanded) {
		current = string(filepath.Separator)
	}

	for _, segment := range Segments(expanded) {
		switch segment {
		case ".":
			continue
		case "..":
			current = filepath.Dir(current)
			continue
		}

		candidate := filepath.Join(current, segment)
		if filesystem.IsDir(r.fs, candidate) {
			current = candidate
			continue
		}

		match, ok := r.matchSegment(current, segment)
		if !ok {
			r.logger.Debug().
				Str("token", token).
				Str("dir", current).
				Str("segment", segment).
				Msg("No case-insensitive match for segment")
			return "", errors.Newf(errors.ErrNotFound, "no such directory: %s", token).
				WithDetail("segment", segment).
				WithDetail("dir", current)
		}
		current = filepath.Join(current, match)
	}

	if !filesystem.IsDir(r.fs, current) {
		return "", errors.Newf(errors.ErrNotFound, "no such directory: %s", token).
			WithDetail("path", current)
	}

	r.logger.Debug().Str("token", token).Str("resolved", current).Msg("Resolved case-insensitively")
	return current, nil
}

// matchSegment returns the first directory entry of dir equal to segment
// ignoring case. Files never match, so a file that sorts first does not hide
// a directory of the same name. Hidden entries are only considered when the
// segment itself is hidden.
func (r *Resolver) matchSegment(dir, segment string) (string, bool) {
	entries, err := filesystem.ListDir(r.fs, dir)
	if err != nil {
		return "", false
	}

	wantHidden := strings.HasPrefix(segment, ".")
	lower := strings.ToLower(segment)
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") && !wantHidden {
			continue
		}
		if strings.ToLower(name) != lower {
			continue
		}
		if filesystem.IsSubdir(r.fs, dir, entry) {
			return name, true
		}
	}
	return "", false
}

// Segments splits token on "/" dropping empty segments, so leading, trailing
// and doubled slashes are ignored.
func Segments(token string) []string {
	parts := strings.Split(filepath.ToSlash(token), "/")
	out := parts[:0]
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
