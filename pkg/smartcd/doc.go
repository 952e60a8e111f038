// Package smartcd ties the resolver, search, selector and navigator together.
//
// Run walks a fixed decision sequence for one token:
//
//	empty token        -> home
//	"-" or "~-"        -> State.Previous
//	"~+"               -> State.Cwd
//	existing directory -> that directory
//	segment match      -> the case-insensitively resolved directory
//	otherwise          -> search the roots, select one candidate
//
// and hands the destination to a navigator. Every failure ends the run; there
// are no retries.
package smartcd
