// Package selector chooses one destination among search candidates.
//
// The candidate list is first narrowed to the SelectionPool: when any
// candidate's last path segment equals the trimmed token exactly, only those
// candidates remain. The comparison is case-sensitive even though segment
// resolution is not; this asymmetry is long-standing behaviour and kept.
//
// A pool of one is returned without prompting. Larger pools are offered to
// the first available Picker when running interactively (fzf, then the
// numbered menu) and otherwise resolve to their first element.
package selector
