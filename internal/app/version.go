package app

import (
	"fmt"
	"runtime/debug"
)

// Set via ldflags:
//
//	go build -ldflags "-X github.com/heartmarshall/ariane-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion returns the version string reported by /health and the CLI.
// Without ldflags the commit and time come from the embedded VCS stamp.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "":
				commit = s.Value
			case s.Key == "vcs.time" && built == "":
				built = s.Value
			}
		}
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, orUnknown(commit), orUnknown(built))
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
