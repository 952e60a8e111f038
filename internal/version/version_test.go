package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version = "1.2.3"
	Commit = "abc123"

	got := String()
	assert.Contains(t, got, "smartcd version 1.2.3")
	assert.Contains(t, got, "commit: abc123")
}
