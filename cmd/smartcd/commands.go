package smartcd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/smartcd/internal/version"
	"github.com/arthur-debert/smartcd/pkg/config"
	"github.com/arthur-debert/smartcd/pkg/errors"
	"github.com/arthur-debert/smartcd/pkg/filesystem"
	"github.com/arthur-debert/smartcd/pkg/logging"
	"github.com/arthur-debert/smartcd/pkg/navigator"
	"github.com/arthur-debert/smartcd/pkg/paths"
	"github.com/arthur-debert/smartcd/pkg/search"
	"github.com/arthur-debert/smartcd/pkg/selector"
	"github.com/arthur-debert/smartcd/pkg/shell"
	app "github.com/arthur-debert/smartcd/pkg/smartcd"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// interactive reports whether the user can be prompted; replaced in tests
var interactive = func() bool {
	return selector.Interactive(os.Stdin, os.Stderr)
}

// environment is what every command needs: filesystem, paths and config
type environment struct {
	fs    afero.Fs
	paths paths.Paths
	cfg   *config.Config
}

// newEnvironment resolves paths against pwd and loads the layered
// configuration with the given overrides applied last.
func newEnvironment(pwd string, overrides map[string]interface{}) (*environment, error) {
	if pwd != "" {
		if abs, err := filepath.Abs(pwd); err == nil {
			pwd = abs
		}
	}

	fsys := filesystem.NewOS()
	p, err := paths.New(paths.Options{FS: fsys, Cwd: pwd})
	if err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), MsgErrInitPaths)
	}

	cfgFile := p.ConfigFilePath()
	cfg, err := config.LoadConfiguration(config.LoadOptions{
		ConfigFile: cfgFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Str("config_file", cfgFile).Str("cwd", p.Cwd()).Msg("Environment ready")

	return &environment{fs: fsys, paths: p, cfg: cfg}, nil
}

func newResolveCmd() *cobra.Command {
	var (
		emit     string
		previous string
		pwd      string
		noPicker bool
		backend  string
	)

	cmd := &cobra.Command{
		Use:     "resolve [token...]",
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		Example: MsgResolveExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.resolve")
			logging.LogCommand(logger, "resolve", args)

			overrides := map[string]interface{}{}
			if noPicker {
				overrides["picker.disabled"] = true
			}
			if backend != "" {
				overrides["search.backend"] = backend
			}

			env, err := newEnvironment(pwd, overrides)
			if err != nil {
				return err
			}

			nav, err := navigator.NewEmitNavigator(cmd.OutOrStdout(), emit)
			if err != nil {
				return err
			}

			pickers, err := selector.DefaultPickers(env.cfg.Picker, os.Stdin, os.Stderr)
			if err != nil {
				return err
			}

			result, err := app.Run(cmd.Context(), app.JoinArgs(args),
				app.State{Cwd: env.paths.Cwd(), Previous: previous},
				app.Options{
					Config:      env.cfg,
					FS:          env.fs,
					Paths:       env.paths,
					Searcher:    search.NewSearcher(env.cfg.Search.Backend, env.fs),
					Pickers:     pickers,
					Interactive: interactive(),
					Navigator:   nav,
				})
			if err != nil {
				return err
			}

			logger.Debug().Str("dest", result.Destination).Str("via", string(result.Via)).Msg("Emitted destination")
			return nil
		},
	}

	cmd.Flags().StringVar(&emit, "emit", navigator.FormatPath, MsgFlagEmit)
	cmd.Flags().StringVar(&previous, "previous", "", MsgFlagPrevious)
	cmd.Flags().StringVar(&pwd, "pwd", "", MsgFlagPwd)
	cmd.Flags().BoolVar(&noPicker, "no-picker", false, MsgFlagNoPicker)
	cmd.Flags().StringVar(&backend, "backend", "", MsgFlagBackend)

	_ = cmd.RegisterFlagCompletionFunc("emit", cobra.FixedCompletions(
		[]string{navigator.FormatPath, navigator.FormatCd}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("backend", cobra.FixedCompletions(
		[]string{config.BackendFd, config.BackendWalk, config.BackendAuto}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func newSearchCmd() *cobra.Command {
	var (
		pwd     string
		backend string
	)

	cmd := &cobra.Command{
		Use:     "search <token...>",
		Short:   MsgSearchShort,
		Long:    MsgSearchLong,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if backend != "" {
				overrides["search.backend"] = backend
			}

			env, err := newEnvironment(pwd, overrides)
			if err != nil {
				return err
			}

			token := app.JoinArgs(args)
			searcher := search.NewSearcher(env.cfg.Search.Backend, env.fs)
			candidates, err := search.Search(cmd.Context(), searcher, token, app.SearchOptions(env.cfg, env.paths))
			if err != nil {
				return err
			}
			if len(candidates) == 0 {
				return errors.Newf(errors.ErrNoMatches, "no directories matching %q", token)
			}

			out := cmd.OutOrStdout()
			for _, c := range candidates {
				fmt.Fprintln(out, c)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pwd, "pwd", "", MsgFlagPwd)
	cmd.Flags().StringVar(&backend, "backend", "", MsgFlagBackend)

	return cmd
}

func newInitCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:       "init <bash|zsh|fish>",
		Short:     MsgInitShort,
		Long:      MsgInitLong,
		Example:   MsgInitExample,
		GroupID:   "core",
		ValidArgs: shell.Shells(),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			snippet, err := shell.Snippet(args[0], shell.Options{Cmd: name})
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), snippet)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "cmd", shell.DefaultCommand, MsgFlagCmd)

	return cmd
}

func newConfigCmd() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
				return err
			}

			env, err := newEnvironment("", nil)
			if err != nil {
				return err
			}
			data, err := config.Marshal(env.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
