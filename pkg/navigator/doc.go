// Package navigator applies a resolved destination.
//
// A child process cannot change its parent shell's working directory, so the
// CLI uses EmitNavigator to hand the destination back to the shell function
// installed by `smartcd init`. ProcessNavigator changes the directory of the
// running process and is meant for embedding.
package navigator
