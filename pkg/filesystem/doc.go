// Package filesystem provides the filesystem implementations smartcd reads
// directories through.
//
// Everything is expressed on top of afero.Fs so the resolver and the
// in-process search walker run unchanged against the OS filesystem or an
// in-memory one in tests.
package filesystem
