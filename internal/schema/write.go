// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"fmt"
	"os"

	"github.com/moby/sys/atomicwriter"
)

const defaultFileMode os.FileMode = 0o644

// WriteFile encodes the document and atomically replaces the file at its
// path. On failure the file on disk is left as it was.
func WriteFile(d *Document) error {
	data, err := d.Encode()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	perm := defaultFileMode
	if info, err := os.Stat(d.Path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := atomicwriter.WriteFile(d.Path, data, perm); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
