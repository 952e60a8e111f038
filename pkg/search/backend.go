package search

import (
	"github.com/arthur-debert/smartcd/pkg/config"
	"github.com/spf13/afero"
)

// NewSearcher returns the backend named by backend. "auto" picks fd when it
// is installed and the walker otherwise.
func NewSearcher(backend string, fsys afero.Fs) Searcher {
	switch backend {
	case config.BackendWalk:
		return NewWalkSearcher(fsys)
	case config.BackendAuto:
		if fd := NewFdSearcher(); fd.Available() {
			return fd
		}
		return NewWalkSearcher(fsys)
	default:
		return NewFdSearcher()
	}
}
