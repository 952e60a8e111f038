// Package testutil provides helpers shared by smartcd tests.
//
// Key components:
//   - MemFS: in-memory directory trees for resolver, search and selector tests
//   - CreateDir/CreateFile/CreateSymlink: fixtures on the real filesystem
//   - Isolate: keeps the developer's SMARTCD_* variables, configuration
//     file and log directory out of a test
//   - FakeCommand: executable scripts standing in for fd, fzf or smartcd
//
// Usage guidelines:
//   - Prefer MemFS; only CLI and shell-execution tests need real directories
//   - Each test should be completely isolated with no shared state
package testutil
