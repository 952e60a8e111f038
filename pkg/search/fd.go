package search

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/smartcd/pkg/errors"
	"github.com/arthur-debert/smartcd/pkg/logging"
	"github.com/rs/zerolog"
)

// fdBinaries lists the names fd is installed under, in preference order.
// Debian and Ubuntu ship it as fdfind.
var fdBinaries = []string{"fd", "fdfind"}

// CommandRunner runs an external command and returns its standard output
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec, discarding stderr
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()
	return stdout.Bytes(), err
}

// FdSearcher searches by running fd once per root
type FdSearcher struct {
	binary string
	run    CommandRunner
	logger zerolog.Logger
}

// NewFdSearcher locates fd on PATH. The searcher is unavailable when fd is
// not installed.
func NewFdSearcher() *FdSearcher {
	s := &FdSearcher{run: ExecRunner, logger: logging.GetLogger("search.fd")}
	for _, name := range fdBinaries {
		if path, err := exec.LookPath(name); err == nil {
			s.binary = path
			break
		}
	}
	return s
}

// NewFdSearcherWith creates an FdSearcher with an explicit binary and runner
func NewFdSearcherWith(binary string, run CommandRunner) *FdSearcher {
	return &FdSearcher{binary: binary, run: run, logger: logging.GetLogger("search.fd")}
}

// Name implements Searcher
func (f *FdSearcher) Name() string { return "fd" }

// Available implements Searcher
func (f *FdSearcher) Available() bool { return f.binary != "" }

// Find implements Searcher
func (f *FdSearcher) Find(ctx context.Context, q Query) ([]string, error) {
	args := FdArgs(q)
	logging.LogCommand(f.logger, f.binary, args)

	out, err := f.run(ctx, f.binary, args...)
	found := ParseLines(out)
	if err != nil {
		return found, errors.Wrapf(err, errors.ErrToolFailed, "fd failed below %s", q.Root)
	}
	return found, nil
}

// FdArgs builds the fd command line for q
func FdArgs(q Query) []string {
	args := []string{
		"--type", "d",
		"--absolute-path",
		"--color", "never",
		"--max-depth", strconv.Itoa(q.MaxDepth),
		"--glob",
	}
	if q.Hidden {
		args = append(args, "--hidden")
	}
	for _, exclude := range q.Excludes {
		if pattern := fdExclude(exclude); pattern != "" {
			args = append(args, "--exclude", pattern)
		}
	}
	return append(args, "--", "*"+q.Token+"*", q.Root)
}

// fdExclude adapts an exclude pattern to fd. fd anchors patterns containing
// a slash at the search root; excludes apply at any depth, as in the walker.
func fdExclude(pattern string) string {
	pattern = strings.Trim(filepath.ToSlash(pattern), "/")
	if strings.Contains(pattern, "/") && !strings.HasPrefix(pattern, "**/") {
		return "**/" + pattern
	}
	return pattern
}

// ParseLines splits tool output into cleaned paths. fd prints directories
// with a trailing separator, which is removed.
func ParseLines(out []byte) []string {
	var paths []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		paths = append(paths, filepath.Clean(line))
	}
	return paths
}
