// Package paths provides centralized path handling for smartcd.
//
// It knows where the user's home, documents, configuration and state
// directories live, expands `~` in user input, and builds the ordered list
// of search roots.
//
// # Environment Variables
//
//   - SMARTCD_CONFIG: Override the configuration file path
//     (default: $XDG_CONFIG_HOME/smartcd/config.toml)
//   - XDG_STATE_HOME: Base for the log file (default: ~/.local/state)
//
// # Search roots
//
// Unless overridden, search roots are the working directory, the XDG
// documents directory when it exists, and the home directory, in that
// order. Roots are made absolute, deduplicated (first wins) and dropped when
// they do not exist.
package paths
