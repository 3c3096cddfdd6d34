// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package check

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"schemas/orders.json":        "[]",
		"schemas/nested/items.json":  "[]",
		"schemas/readme.md":          "",
		"other/users.json":           "[]",
		"schemas/customers.yaml":     "",
		".git/objects/x.json":        "[]",
		"schemas/nested/legacy.json": "[]",
	})

	rel := func(p string) string { return filepath.Join(root, p) }

	tests := []struct {
		name   string
		args   []string
		filter Filter
		want   []string
	}{
		{
			name:   "directory by extension",
			args:   []string{root},
			filter: Filter{FileType: "json"},
			want: []string{
				rel("other/users.json"),
				rel("schemas/nested/items.json"),
				rel("schemas/nested/legacy.json"),
				rel("schemas/orders.json"),
			},
		},
		{
			name:   "extension with dot",
			args:   []string{rel("schemas")},
			filter: Filter{FileType: ".yaml"},
			want:   []string{rel("schemas/customers.yaml")},
		},
		{
			name:   "path regex",
			args:   []string{root},
			filter: Filter{FileType: "json", PathRegex: regexp.MustCompile(`nested/(items|orders)`)},
			want:   []string{rel("schemas/nested/items.json")},
		},
		{
			name:   "explicit files are not filtered",
			args:   []string{rel("schemas/readme.md"), rel("schemas/orders.json")},
			filter: Filter{FileType: "json"},
			want:   []string{rel("schemas/readme.md"), rel("schemas/orders.json")},
		},
		{
			name:   "glob",
			args:   []string{rel("schemas/*.json")},
			filter: Filter{FileType: "json"},
			want:   []string{rel("schemas/orders.json")},
		},
		{
			name:   "duplicates removed in order",
			args:   []string{rel("schemas/orders.json"), rel("schemas"), rel("schemas/orders.json")},
			filter: Filter{FileType: "json"},
			want: []string{
				rel("schemas/orders.json"),
				rel("schemas/nested/items.json"),
				rel("schemas/nested/legacy.json"),
			},
		},
		{
			name: "missing file kept",
			args: []string{rel("missing.json")},
			want: []string{rel("missing.json")},
		},
		{
			name: "glob without matches kept",
			args: []string{rel("schemas/*.avsc"), rel("schemas/orders.json")},
			want: []string{rel("schemas/*.avsc"), rel("schemas/orders.json")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Discover(tt.args, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscover_WorkingDirectory(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a.json":     "[]",
		"sub/b.json": "[]",
	})

	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	require.NoError(t, os.Chdir(root))

	got, err := Discover(nil, Filter{FileType: "json"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", filepath.Join("sub", "b.json")}, got)
}

func TestDiscover_BadGlob(t *testing.T) {
	_, err := Discover([]string{"[a-"}, Filter{})
	assert.ErrorIs(t, err, ErrDiscover)
}
