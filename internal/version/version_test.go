// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBuildInfo(t *testing.T) {
	unset := Build{Version: "dev", Commit: "none", Date: "unknown", Go: "go1.25.0"}
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		},
	}
	read := func() (*debug.BuildInfo, bool) { return info, true }

	got := fromBuildInfo(unset, read)
	assert.Equal(t, Build{Version: "v0.3.1", Commit: "0123456", Date: "2026-10-01T12:00:00Z", Go: "go1.25.0"}, got)

	ldflags := Build{Version: "1.0.0", Commit: "abcdef0", Date: "2026-09-30", Go: "go1.25.0"}
	assert.Equal(t, ldflags, fromBuildInfo(ldflags, read))

	assert.Equal(t, unset, fromBuildInfo(unset, func() (*debug.BuildInfo, bool) { return nil, false }))
}

func TestBuild_String(t *testing.T) {
	b := Build{Version: "1.0.0", Commit: "abcdef0", Date: "2026-09-30", Go: "go1.25.0"}
	assert.Equal(t, "schemalint version 1.0.0 (commit: abcdef0, built: 2026-09-30, go: go1.25.0)", b.String())
}
