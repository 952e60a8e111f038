// Package resolve turns a user-typed directory token into an existing
// directory without searching.
//
// Two strategies are offered. Exact treats the token as a path (after `~`
// expansion) relative to the working directory. CaseInsensitive walks the
// token segment by segment and, when a segment has no exact match, descends
// into the first entry whose name matches it ignoring case. Entries are
// enumerated in lexical order so the winner among several case variants is
// stable across filesystems.
//
// Resolution is all or nothing: a segment without a match fails the whole
// token with a NOT_FOUND error, never a partial path.
package resolve
