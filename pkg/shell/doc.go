// Package shell renders the shell functions that connect smartcd to an
// interactive shell.
//
// smartcd runs as a child process and cannot change its parent's working
// directory. The generated function calls `smartcd resolve`, passing the
// shell's $PWD and previous directory, and applies the printed destination
// with the shell's builtin cd.
package shell
