// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package version provides build-time version information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// These variables are set at build time using ldflags.
var (
	// Version is the semantic version (e.g., "0.1.0", "0.1.0-alpha.1").
	Version = "dev"
	// Commit is the git commit SHA.
	Commit = "none"
	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// Build describes the running binary.
type Build struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	Go      string `json:"go" yaml:"go"`
}

var current = sync.OnceValue(func() Build {
	return fromBuildInfo(Build{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
		Go:      runtime.Version(),
	}, debug.ReadBuildInfo)
})

// fromBuildInfo fills values not set via ldflags from the module build info.
// This works when installed via "go install module@version".
func fromBuildInfo(b Build, read func() (*debug.BuildInfo, bool)) Build {
	info, ok := read()
	if !ok {
		return b
	}

	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if b.Commit == "none" && len(setting.Value) >= 7 {
				b.Commit = setting.Value[:7]
			}
		case "vcs.time":
			if b.Date == "unknown" {
				b.Date = setting.Value
			}
		}
	}
	return b
}

// Current returns the build information of the running binary.
func Current() Build {
	return current()
}

// String formats the build information on one line.
func (b Build) String() string {
	return fmt.Sprintf("schemalint version %s (commit: %s, built: %s, go: %s)",
		b.Version, b.Commit, b.Date, b.Go)
}

// Info returns formatted version information.
func Info() string {
	return Current().String()
}

// Short returns just the version string.
func Short() string {
	return Current().Version
}
