package app

import (
	"strings"
	"testing"
)

func TestBuildVersion_UsesLinkerValues(t *testing.T) {
	prevV, prevC, prevT := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = prevV, prevC, prevT })

	Version, Commit, BuildTime = "1.2.3", "0123456789abcdef", "2026-10-01T00:00:00Z"

	got := BuildVersion()
	want := "1.2.3 (commit: 0123456789ab, built: 2026-10-01T00:00:00Z)"
	if got != want {
		t.Errorf("BuildVersion() = %q, want %q", got, want)
	}
}

func TestBuildVersion_Defaults(t *testing.T) {
	got := BuildVersion()
	if !strings.HasPrefix(got, Version+" (commit: ") {
		t.Errorf("unexpected version string %q", got)
	}
}
