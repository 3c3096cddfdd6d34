// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package report collects violations and file failures for a run and renders
// them for humans or machines.
package report

import "fmt"

// Kind classifies a violation.
type Kind string

// Violation kinds.
const (
	KindNaming           Kind = "naming"
	KindMissingAttribute Kind = "missing-attribute"
	KindEmptyAttribute   Kind = "empty-attribute"
	KindInvalidType      Kind = "invalid-type"
	KindInvalidMode      Kind = "invalid-mode"
	KindInvalidNesting   Kind = "invalid-nesting"
	KindRequiredFields   Kind = "required-fields"
)

// Violation is a single deviation from structural or naming rules. Field is
// the dotted path of the offending field and is empty for document-level
// rules. SuggestedFix is empty when no automatic fix exists.
type Violation struct {
	File         string `json:"file"`
	Field        string `json:"field,omitempty"`
	Kind         Kind   `json:"kind"`
	Message      string `json:"message"`
	SuggestedFix string `json:"suggestedFix,omitempty"`
}

// InFile returns a copy of v attributed to file.
func (v Violation) InFile(file string) Violation {
	v.File = file
	return v
}

// String renders the violation as a single report line.
func (v Violation) String() string {
	if v.Field == "" {
		return fmt.Sprintf("%s: %s", v.File, v.Message)
	}
	return fmt.Sprintf("%s: Field %s: %s", v.File, v.Field, v.Message)
}
