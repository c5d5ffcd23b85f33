// Package version reports the build version of storeadmin.
//
// Version and Commit can be injected at link time:
//
//	go build -ldflags="-X github.com/muurk/storeadmin/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/storeadmin/internal/version.Commit=abc1234"
//
// Without ldflags they are derived from the module and VCS build info.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

var (
	// Version is the release version, e.g. v0.3.0.
	Version = ""
	// Commit is the short git revision.
	Commit = ""
)

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			fromBuildInfo(info)
		}
	}
	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102-150405")
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildInfo fills whichever of Version and Commit is still empty.
func fromBuildInfo(info *debug.BuildInfo) {
	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	if Commit == "" {
		Commit = shortRevision(settings["vcs.revision"], settings["vcs.modified"] == "true")
	}

	if Version != "" {
		return
	}
	// `go install module@vX.Y.Z` records the tag on the main module.
	if v := info.Main.Version; v != "" && v != "(devel)" {
		Version = v
		return
	}
	if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
		Version = "dev-" + t.Format("20060102")
	}
}

func shortRevision(rev string, dirty bool) string {
	if rev == "" {
		return ""
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if dirty {
		rev += "-dirty"
	}
	return rev
}

// Full returns the version with its commit.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
