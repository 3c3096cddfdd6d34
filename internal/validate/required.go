// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package validate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dacolabs/schemalint/internal/report"
	"github.com/dacolabs/schemalint/internal/schema"
)

// Position constrains where required field names sit among top-level fields.
type Position string

// Required field positions.
const (
	Anywhere  Position = "any"
	Beginning Position = "beginning"
	End       Position = "end"
)

// ParsePosition resolves a required field position by name.
func ParsePosition(name string) (Position, error) {
	switch p := Position(name); p {
	case Anywhere, Beginning, End:
		return p, nil
	case "":
		return Anywhere, nil
	default:
		return "", fmt.Errorf("invalid required field position %q (supported: %s, %s, %s)", name, Anywhere, Beginning, End)
	}
}

// ParseNames splits a comma-separated list of field names, trimming spaces and
// dropping empty and repeated entries.
func ParseNames(list string) []string {
	var names []string
	for _, part := range strings.Split(list, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return uniqueNames(names)
}

// uniqueNames drops repeated names, keeping the first occurrence.
func uniqueNames(names []string) []string {
	var out []string
	for _, name := range names {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

// RequiredFields is a document-level rule: every name must appear among the
// top-level fields, in the given order, at Position.
type RequiredFields struct {
	Names    []string
	Position Position
}

// Check returns the first problem found, or false when the fields comply.
func (r *RequiredFields) Check(fields []*schema.Field) (report.Violation, bool) {
	if len(r.Names) == 0 {
		return report.Violation{}, true
	}

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}

	var missing []string
	indexes := make([]int, 0, len(r.Names))
	for _, want := range r.Names {
		i := slices.Index(names, want)
		if i < 0 {
			missing = append(missing, want)
			continue
		}
		indexes = append(indexes, i)
	}

	expected := "[" + strings.Join(r.Names, ", ") + "]"
	fail := func(format string, args ...any) (report.Violation, bool) {
		return report.Violation{Kind: report.KindRequiredFields, Message: fmt.Sprintf(format, args...)}, false
	}

	switch {
	case len(missing) > 0:
		return fail("Missing required field names: %s", strings.Join(missing, ", "))
	case !slices.IsSorted(indexes):
		return fail("Required field names out of order. Expected order: %s", expected)
	case r.Position == Beginning && indexes[len(indexes)-1] != len(indexes)-1:
		return fail("Required field names must be at beginning of schema: %s", expected)
	case r.Position == End && indexes[0] != len(names)-len(indexes):
		return fail("Required field names must be at end of schema: %s", expected)
	}
	return report.Violation{}, true
}
