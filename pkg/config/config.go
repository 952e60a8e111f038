package config

// Search backends
const (
	BackendFd   = "fd"
	BackendWalk = "walk"
	BackendAuto = "auto"
)

// Config is the complete smartcd configuration
type Config struct {
	Search Search `koanf:"search" toml:"search"`
	Picker Picker `koanf:"picker" toml:"picker"`
}

// Search configures the recursive directory search
type Search struct {
	Roots         []string `koanf:"roots" toml:"roots"`
	MaxDepth      int      `koanf:"max_depth" toml:"max_depth"`
	Hidden        bool     `koanf:"hidden" toml:"hidden"`
	Backend       string   `koanf:"backend" toml:"backend"`
	Excludes      []string `koanf:"excludes" toml:"excludes"`
	ExtraExcludes []string `koanf:"extra_excludes" toml:"extra_excludes"`
	NoisyPrefixes []string `koanf:"noisy_prefixes" toml:"noisy_prefixes"`
}

// Picker configures interactive selection
type Picker struct {
	Disabled bool   `koanf:"disabled" toml:"disabled"`
	Command  string `koanf:"command" toml:"command"`
	Options  string `koanf:"options" toml:"options"`
}

// AllExcludes returns excludes followed by extra excludes
func (s Search) AllExcludes() []string {
	out := make([]string, 0, len(s.Excludes)+len(s.ExtraExcludes))
	out = append(out, s.Excludes...)
	out = append(out, s.ExtraExcludes...)
	return out
}
