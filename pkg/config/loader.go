package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/smartcd/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix shared by every configuration environment variable
const EnvPrefix = "SMARTCD_"

// envKeys maps environment variables to configuration keys
var envKeys = map[string]string{
	"SMARTCD_ROOTS":         "search.roots",
	"SMARTCD_MAX_DEPTH":     "search.max_depth",
	"SMARTCD_SEARCH_HIDDEN": "search.hidden",
	"SMARTCD_BACKEND":       "search.backend",
	"SMARTCD_EXCLUDES":      "search.extra_excludes",
	"SMARTCD_NO_PICKER":     "picker.disabled",
	"SMARTCD_PICKER":        "picker.command",
	"SMARTCD_FZF_OPTS":      "picker.options",
}

// LoadOptions controls which layers LoadConfiguration reads
type LoadOptions struct {
	// ConfigFile is the user configuration file. A missing file is not an error.
	ConfigFile string

	// Overrides are applied last, keyed by dotted configuration key.
	Overrides map[string]interface{}

	// SkipEnv leaves the SMARTCD_* environment out.
	SkipEnv bool
}

// Default returns the embedded default configuration. The environment is
// not consulted, so the result does not depend on the caller's shell.
func Default() *Config {
	cfg, err := LoadConfiguration(LoadOptions{SkipEnv: true})
	if err != nil {
		// The embedded defaults are covered by tests; failing here is a build defect.
		panic(err)
	}
	return cfg
}

// LoadConfiguration merges defaults, the user file, the environment and
// overrides into a validated Config.
func LoadConfiguration(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err == nil {
			if err := k.Load(file.Provider(opts.ConfigFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", opts.ConfigFile)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config %s", opts.ConfigFile)
		}
	}

	// 3. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envValue maps a SMARTCD_* variable to its configuration key and value.
// Unknown variables are ignored by returning an empty key.
func envValue(name, value string) (string, interface{}) {
	key, ok := envKeys[name]
	if !ok {
		return "", nil
	}
	switch key {
	case "search.roots":
		return key, splitList(value)
	case "search.extra_excludes":
		return key, splitList(strings.ReplaceAll(value, ",", string(filepath.ListSeparator)))
	}
	return key, value
}

// splitList splits a PATH-style list, dropping empty elements
func splitList(value string) []string {
	var out []string
	for _, item := range filepath.SplitList(value) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Validate checks value ranges
func Validate(cfg *Config) error {
	if cfg.Search.MaxDepth < 1 {
		return errors.Newf(errors.ErrConfigValid, "search.max_depth must be a positive integer, got %d", cfg.Search.MaxDepth).
			WithDetail("max_depth", cfg.Search.MaxDepth)
	}
	switch cfg.Search.Backend {
	case BackendFd, BackendWalk, BackendAuto:
	default:
		return errors.Newf(errors.ErrConfigValid, "search.backend must be one of fd, walk, auto, got %q", cfg.Search.Backend).
			WithDetail("backend", cfg.Search.Backend)
	}
	if strings.TrimSpace(cfg.Picker.Command) == "" {
		return errors.New(errors.ErrConfigValid, "picker.command must not be empty")
	}
	return nil
}
