// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package check

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrDiscover indicates the input paths could not be expanded into files.
var ErrDiscover = errors.New("cannot discover schema files")

// Filter selects files found by scanning directories. Files named directly
// on the command line are never filtered.
type Filter struct {
	// FileType is the extension to keep, with or without the leading dot.
	FileType string
	// PathRegex, when set, must match somewhere in the slash-separated path.
	PathRegex *regexp.Regexp
}

func (f Filter) keep(path string) bool {
	ext := strings.TrimPrefix(f.FileType, ".")
	if ext != "" && strings.TrimPrefix(filepath.Ext(path), ".") != ext {
		return false
	}
	return f.PathRegex == nil || f.PathRegex.MatchString(filepath.ToSlash(path))
}

// Discover expands args into an ordered, duplicate-free list of files. Each
// arg may be a file, a glob or a directory; directories are scanned
// recursively through the filter. With no args the working directory is
// scanned. Paths that do not exist and globs that match nothing are kept so
// they are reported as unreadable.
func Discover(args []string, filter Filter) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		matches := []string{arg}
		if isGlob(arg) {
			var err error
			matches, err = filepath.Glob(arg)
			if err != nil {
				return nil, fmt.Errorf("%w: bad pattern %q: %v", ErrDiscover, arg, err)
			}
			if len(matches) == 0 {
				// reported as unreadable
				matches = []string{arg}
			}
		}

		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || !info.IsDir() {
				add(m)
				continue
			}
			if err := scan(m, filter, add); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrDiscover, err)
			}
		}
	}
	return files, nil
}

func scan(root string, filter Filter, add func(string)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if filter.keep(path) {
			add(path)
		}
		return nil
	})
}

func isGlob(path string) bool {
	return strings.ContainsAny(path, "*?[")
}
