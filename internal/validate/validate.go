// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package validate walks a schema field tree and applies a dialect's rules to
// every field, optionally renaming fields that break the naming convention.
package validate

import (
	"fmt"

	"github.com/dacolabs/schemalint/internal/dialect"
	"github.com/dacolabs/schemalint/internal/naming"
	"github.com/dacolabs/schemalint/internal/report"
	"github.com/dacolabs/schemalint/internal/schema"
)

// Mode selects whether violations are only reported or also fixed.
type Mode string

// Validation modes.
const (
	Lint Mode = "lint"
	Fix  Mode = "fix"
)

// ParseMode resolves a validation mode by name.
func ParseMode(name string) (Mode, error) {
	switch m := Mode(name); m {
	case Lint, Fix:
		return m, nil
	default:
		return "", fmt.Errorf("invalid mode %q (supported: %s, %s)", name, Lint, Fix)
	}
}

// Result is the outcome of validating one tree.
type Result struct {
	// Violations in traversal order, document-level rules last.
	Violations []report.Violation
	// Fields is the input tree in Lint mode and a renamed copy in Fix mode.
	Fields []*schema.Field
	// Renamed counts the fields whose name was changed.
	Renamed int
}

// Validator applies a dialect and naming convention to field trees. It keeps
// no state between calls and may be shared across goroutines.
type Validator struct {
	dialect  dialect.Dialect
	conv     naming.Convention
	required *RequiredFields
}

// Option configures a Validator.
type Option func(*Validator)

// WithRequiredFields checks that the top-level fields include names at pos.
func WithRequiredFields(names []string, pos Position) Option {
	return func(v *Validator) {
		if len(names) > 0 {
			v.required = &RequiredFields{Names: uniqueNames(names), Position: pos}
		}
	}
}

// New creates a Validator.
func New(d dialect.Dialect, conv naming.Convention, opts ...Option) *Validator {
	v := &Validator{dialect: d, conv: conv}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate walks fields depth-first in declaration order. A parent's
// violations always precede its children's. In Fix mode the walk runs on a
// copy of the tree, and a field is renamed to its suggested name before its
// children are visited, so their paths use the corrected name. In Lint mode
// fields is never modified.
func (v *Validator) Validate(fields []*schema.Field, mode Mode) Result {
	res := Result{Fields: fields}
	if mode == Fix {
		res.Fields = schema.CloneFields(fields)
	}

	v.walk(res.Fields, nil, mode, &res)

	if v.required != nil {
		if viol, ok := v.required.Check(res.Fields); !ok {
			res.Violations = append(res.Violations, viol)
		}
	}
	return res
}

func (v *Validator) walk(fields []*schema.Field, ancestry []string, mode Mode, res *Result) {
	for _, f := range fields {
		violations := v.dialect.ValidateField(f, ancestry, v.conv)
		res.Violations = append(res.Violations, violations...)

		if mode == Fix {
			for _, viol := range violations {
				if viol.Kind == report.KindNaming && viol.SuggestedFix != "" {
					f.Name = viol.SuggestedFix
					res.Renamed++
				}
			}
		}

		if f.IsRecord() && len(f.Fields) > 0 {
			next := append(ancestry[:len(ancestry):len(ancestry)], f.DisplayName())
			v.walk(f.Fields, next, mode, res)
		}
	}
}
