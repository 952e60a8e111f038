package selector

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/smartcd/pkg/config"
	"github.com/arthur-debert/smartcd/pkg/errors"
	"github.com/arthur-debert/smartcd/pkg/filesystem"
	"github.com/arthur-debert/smartcd/pkg/logging"
	"github.com/arthur-debert/smartcd/pkg/style"
	"github.com/spf13/afero"
)

// Picker asks the user to choose one of items
type Picker interface {
	Name() string
	Available() bool
	// Pick returns the chosen item, or a CANCELLED error
	Pick(ctx context.Context, items []string) (string, error)
}

// Options configures Select
type Options struct {
	// Interactive enables prompting when more than one candidate remains
	Interactive bool

	// Pickers are tried in order; the first available one is used
	Pickers []Picker

	// FS is used to re-check the chosen destination
	FS afero.Fs
}

// Interactive reports whether the user can be prompted: input must come
// from a terminal and prompts go to a terminal. Standard output is not
// considered since the shell integration captures it.
func Interactive(in, prompt *os.File) bool {
	return style.IsTerminal(in) && style.IsTerminal(prompt)
}

// Pool narrows candidates to those whose final segment equals the trimmed
// token, when there is at least one such candidate.
func Pool(candidates []string, token string) []string {
	name := strings.TrimSpace(token)
	var exact []string
	for _, c := range candidates {
		if filepath.Base(c) == name {
			exact = append(exact, c)
		}
	}
	if len(exact) > 0 {
		return exact
	}
	return candidates
}

// Select picks the destination among candidates
func Select(ctx context.Context, candidates []string, token string, opts Options) (string, error) {
	logger := logging.GetLogger("selector")

	if len(candidates) == 0 {
		return "", errors.Newf(errors.ErrNoMatches, "no directories matching %q", token)
	}

	pool := Pool(candidates, token)
	logger.Debug().Int("candidates", len(candidates)).Int("pool", len(pool)).Msg("Selection pool computed")

	var chosen string
	switch {
	case len(pool) == 1:
		chosen = pool[0]
	case !opts.Interactive:
		chosen = pool[0]
		logger.Info().Str("chosen", chosen).Int("pool", len(pool)).Msg("Not interactive, taking first candidate")
	default:
		picker := firstAvailable(opts.Pickers)
		if picker == nil {
			chosen = pool[0]
			logger.Info().Str("chosen", chosen).Msg("No picker available, taking first candidate")
			break
		}
		logger.Debug().Str("picker", picker.Name()).Msg("Prompting for selection")
		picked, err := picker.Pick(ctx, pool)
		if err != nil {
			return "", err
		}
		chosen = picked
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return Usable(fsys, chosen)
}

// Usable re-checks a destination right before it is used. A path that is no
// longer a directory falls back to its parent when that is a directory.
func Usable(fsys afero.Fs, dest string) (string, error) {
	if dest == "" {
		return "", errors.New(errors.ErrInvalidDestination, "empty destination")
	}
	if filesystem.IsDir(fsys, dest) {
		return dest, nil
	}
	parent := filepath.Dir(dest)
	if parent != dest && filesystem.IsDir(fsys, parent) {
		return parent, nil
	}
	return "", errors.Newf(errors.ErrInvalidDestination, "%s is not a directory", dest).
		WithDetail("path", dest)
}

func firstAvailable(pickers []Picker) Picker {
	for _, p := range pickers {
		if p != nil && p.Available() {
			return p
		}
	}
	return nil
}

// DefaultPickers returns the fuzzy finder configured by cfg followed by the
// numbered menu on in/out. A disabled fuzzy finder leaves only the menu.
func DefaultPickers(cfg config.Picker, in io.Reader, out io.Writer) ([]Picker, error) {
	var pickers []Picker
	if !cfg.Disabled && cfg.Command != "" {
		fzf, err := NewFzfPicker(cfg.Command, cfg.Options)
		if err != nil {
			return nil, err
		}
		pickers = append(pickers, fzf)
	}
	return append(pickers, NewMenuPicker(in, out)), nil
}
