package smartcd

import (
	"context"
	"strings"

	"github.com/arthur-debert/smartcd/pkg/config"
	"github.com/arthur-debert/smartcd/pkg/errors"
	"github.com/arthur-debert/smartcd/pkg/filesystem"
	"github.com/arthur-debert/smartcd/pkg/logging"
	"github.com/arthur-debert/smartcd/pkg/navigator"
	"github.com/arthur-debert/smartcd/pkg/paths"
	"github.com/arthur-debert/smartcd/pkg/resolve"
	"github.com/arthur-debert/smartcd/pkg/search"
	"github.com/arthur-debert/smartcd/pkg/selector"
	"github.com/spf13/afero"
)

// Via names the branch that produced a destination
type Via string

const (
	ViaHome            Via = "home"
	ViaPrevious        Via = "previous"
	ViaCurrent         Via = "current"
	ViaExact           Via = "exact"
	ViaCaseInsensitive Via = "case-insensitive"
	ViaSearch          Via = "search"
)

// History tokens handled before any filesystem lookup
const (
	TokenPrevious      = "-"
	TokenPreviousTilde = "~-"
	TokenCurrent       = "~+"
)

// State is the per-invocation state owned by the calling shell
type State struct {
	// Cwd is the shell's working directory ($PWD)
	Cwd string
	// Previous is the shell's previous directory ($OLDPWD)
	Previous string
}

// Options configures Run. Zero values fall back to the OS filesystem, the
// user's layered configuration (file and SMARTCD_* environment) and the
// configured search backend.
type Options struct {
	Config      *config.Config
	FS          afero.Fs
	Paths       paths.Paths
	Searcher    search.Searcher
	Pickers     []selector.Picker
	Interactive bool
	Navigator   navigator.Navigator
}

// Result describes a successful run
type Result struct {
	Destination string
	Via         Via
}

// Run resolves token and navigates to the result
func Run(ctx context.Context, token string, state State, opts Options) (Result, error) {
	logger := logging.GetLogger("smartcd")
	defer logging.LogOperationStart(logger, "run")()

	opts, err := withDefaults(state, opts)
	if err != nil {
		return Result{}, err
	}

	result, err := Resolve(ctx, token, state, opts)
	if err != nil {
		logger.Debug().Err(err).Str("token", token).Msg("Resolution failed")
		return Result{}, err
	}

	logger.Info().
		Str("token", token).
		Str("dest", result.Destination).
		Str("via", string(result.Via)).
		Msg("Resolved destination")

	if opts.Navigator != nil {
		if err := opts.Navigator.Navigate(result.Destination); err != nil {
			return Result{}, err
		}
	}
	return result, nil
}

// Resolve runs the decision sequence without navigating
func Resolve(ctx context.Context, token string, state State, opts Options) (Result, error) {
	opts, err := withDefaults(state, opts)
	if err != nil {
		return Result{}, err
	}
	logger := logging.GetLogger("smartcd")

	switch token {
	case "":
		return Result{Destination: opts.Paths.Home(), Via: ViaHome}, nil
	case TokenPrevious, TokenPreviousTilde:
		if state.Previous == "" {
			return Result{}, errors.New(errors.ErrNotFound, "OLDPWD not set")
		}
		return Result{Destination: state.Previous, Via: ViaPrevious}, nil
	case TokenCurrent:
		return Result{Destination: opts.Paths.Cwd(), Via: ViaCurrent}, nil
	}

	r := resolve.New(opts.FS, opts.Paths)
	if dest, ok := r.Exact(token); ok {
		return Result{Destination: dest, Via: ViaExact}, nil
	}
	if dest, err := r.CaseInsensitive(token); err == nil {
		return Result{Destination: dest, Via: ViaCaseInsensitive}, nil
	}

	candidates, err := search.Search(ctx, opts.Searcher, token, SearchOptions(opts.Config, opts.Paths))
	if err != nil {
		return Result{}, err
	}
	logger.Debug().Int("candidates", len(candidates)).Msg("Search returned candidates")

	dest, err := selector.Select(ctx, candidates, token, selector.Options{
		Interactive: opts.Interactive,
		Pickers:     opts.Pickers,
		FS:          opts.FS,
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Destination: dest, Via: ViaSearch}, nil
}

// SearchOptions derives search options from the configuration. Configured
// roots replace the defaults; missing roots are dropped.
func SearchOptions(cfg *config.Config, p paths.Paths) search.Options {
	roots := p.DefaultRoots()
	if len(cfg.Search.Roots) > 0 {
		roots = p.NormalizeRoots(cfg.Search.Roots)
	}

	noisy := make([]string, 0, len(cfg.Search.NoisyPrefixes))
	for _, prefix := range cfg.Search.NoisyPrefixes {
		noisy = append(noisy, p.ExpandHome(prefix))
	}

	return search.Options{
		Roots:         roots,
		MaxDepth:      cfg.Search.MaxDepth,
		Hidden:        cfg.Search.Hidden,
		Excludes:      cfg.Search.AllExcludes(),
		NoisyPrefixes: noisy,
	}
}

// JoinArgs joins command-line words into a single token
func JoinArgs(args []string) string {
	return strings.Join(args, " ")
}

func withDefaults(state State, opts Options) (Options, error) {
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Paths == nil {
		p, err := paths.New(paths.Options{FS: opts.FS, Cwd: state.Cwd})
		if err != nil {
			return opts, err
		}
		opts.Paths = p
	}
	if opts.Config == nil {
		cfg, err := config.LoadConfiguration(config.LoadOptions{ConfigFile: opts.Paths.ConfigFilePath()})
		if err != nil {
			return opts, err
		}
		opts.Config = cfg
	}
	if opts.Searcher == nil {
		opts.Searcher = search.NewSearcher(opts.Config.Search.Backend, opts.FS)
	}
	return opts, nil
}
