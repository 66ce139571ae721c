package version

import (
	"strings"
	"testing"
)

func TestShortCommit(t *testing.T) {
	tests := []struct {
		name     string
		revision string
		dirty    bool
		expected string
	}{
		{name: "long hash", revision: "1d90645abcdef", expected: "1d90645"},
		{name: "short hash", revision: "abc", expected: "abc"},
		{name: "dirty tree", revision: "1d90645abcdef", dirty: true, expected: "1d90645-dirty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shortCommit(tt.revision, tt.dirty); got != tt.expected {
				t.Errorf("shortCommit() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFull(t *testing.T) {
	if Version == "" || Commit == "" {
		t.Fatal("init should always populate Version and Commit")
	}
	if got := Full(); !strings.Contains(got, Version) || !strings.Contains(got, Commit) {
		t.Errorf("Full() = %q, want version and commit", got)
	}
}
