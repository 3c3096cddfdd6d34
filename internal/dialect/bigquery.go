// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package dialect

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dacolabs/schemalint/internal/naming"
	"github.com/dacolabs/schemalint/internal/report"
	"github.com/dacolabs/schemalint/internal/schema"
)

var bigQueryTypes = []string{
	"STRING", "BYTES", "INTEGER", "INT64", "FLOAT", "FLOAT64", "NUMERIC",
	"BIGNUMERIC", "BOOLEAN", "BOOL", "TIMESTAMP", "DATE", "TIME",
	"DATETIME", "GEOGRAPHY", "JSON", "INTERVAL", "RANGE",
	schema.TypeRecord, schema.TypeStruct,
}

var bigQueryModes = []string{"NULLABLE", "REQUIRED", "REPEATED"}

// BigQuery validates fields of BigQuery JSON table schemas.
type BigQuery struct {
	engine   *naming.Engine
	required []string
	types    []string
	modes    []string
	rules    []Rule
}

// NewBigQuery creates the BigQuery dialect.
func NewBigQuery(opts Options) *BigQuery {
	engine := opts.Engine
	if engine == nil {
		engine = naming.Default
	}

	required := []string{schema.AttrName, schema.AttrType, schema.AttrMode}
	if opts.RequireDescription {
		required = append(required, schema.AttrDescription)
	}

	b := &BigQuery{
		engine:   engine,
		required: required,
		types:    sorted(bigQueryTypes),
		modes:    sorted(bigQueryModes),
	}
	b.rules = []Rule{
		RequiredAttributes(b.required),
		OneOf(schema.AttrType, report.KindInvalidType, "types", b.types),
		OneOf(schema.AttrMode, report.KindInvalidMode, "modes", b.modes),
		Nesting,
	}
	return b
}

// Name implements Dialect.
func (b *BigQuery) Name() string { return "bigquery" }

// Info implements Dialect.
func (b *BigQuery) Info() Info {
	return Info{
		Name:          b.Name(),
		Supported:     true,
		Types:         b.types,
		Modes:         b.modes,
		RequiredAttrs: sorted(b.required),
		OptionalAttrs: optionalAttrs(b.required),
	}
}

// ValidateField implements Dialect. Structural rules run first, in a fixed
// order, and the naming check last.
func (b *BigQuery) ValidateField(f *schema.Field, ancestry []string, conv naming.Convention) []report.Violation {
	path := schema.FieldPath(ancestry, f.DisplayName())

	var out []report.Violation
	for _, rule := range b.rules {
		out = append(out, rule(f, path)...)
	}
	return append(out, NamingRule(b.engine, conv)(f, path)...)
}

func optionalAttrs(required []string) []string {
	var out []string
	for _, attr := range []string{schema.AttrDescription, schema.AttrFields} {
		if !slices.Contains(required, attr) {
			out = append(out, attr)
		}
	}
	return out
}

// RequiredAttributes reports attributes that are absent or empty.
func RequiredAttributes(attrs []string) Rule {
	return func(f *schema.Field, path string) []report.Violation {
		var out []report.Violation
		for _, attr := range attrs {
			switch {
			case !f.Has(attr):
				out = append(out, report.Violation{
					Field:   path,
					Kind:    report.KindMissingAttribute,
					Message: fmt.Sprintf("Missing required attribute '%s'", attr),
				})
			case f.Value(attr) == "":
				out = append(out, report.Violation{
					Field:   path,
					Kind:    report.KindEmptyAttribute,
					Message: fmt.Sprintf("Attribute '%s' cannot be empty", attr),
				})
			}
		}
		return out
	}
}

// OneOf reports a non-empty attribute whose value is not in valid. Empty and
// absent values are left to RequiredAttributes.
func OneOf(attr string, kind report.Kind, plural string, valid []string) Rule {
	return func(f *schema.Field, path string) []report.Violation {
		value := f.Value(attr)
		if value == "" || slices.Contains(valid, value) {
			return nil
		}
		return []report.Violation{{
			Field:   path,
			Kind:    kind,
			Message: fmt.Sprintf("Invalid %s '%s'. Valid %s: %s", attr, value, plural, strings.Join(valid, ", ")),
		}}
	}
}

// Nesting reports a RECORD without nested fields or a scalar with them. A
// field without a type is not checked: its type is already reported.
func Nesting(f *schema.Field, path string) []report.Violation {
	if f.Type == "" {
		return nil
	}

	var msg string
	switch {
	case f.IsRecord() && len(f.Fields) == 0:
		msg = fmt.Sprintf("%s field must declare at least one nested field", f.Type)
	case !f.IsRecord() && f.Has(schema.AttrFields):
		msg = fmt.Sprintf("Nested fields are only allowed on RECORD fields, not %s", f.Type)
	default:
		return nil
	}
	return []report.Violation{{Field: path, Kind: report.KindInvalidNesting, Message: msg}}
}

// NamingRule reports a name that does not follow conv, suggesting the
// converted name as fix.
func NamingRule(engine *naming.Engine, conv naming.Convention) Rule {
	return func(f *schema.Field, path string) []report.Violation {
		if f.Name == "" {
			return nil
		}

		ok, err := engine.Matches(f.Name, conv)
		if ok {
			return nil
		}
		var expected string
		if err == nil {
			expected, err = engine.Convert(f.Name, conv)
		}
		if err != nil {
			return []report.Violation{{
				Field:   path,
				Kind:    report.KindNaming,
				Message: fmt.Sprintf("Field name '%s' cannot be converted to %s: %v", f.Name, conv.DisplayName(), err),
			}}
		}
		if expected == f.Name {
			return nil
		}
		return []report.Violation{{
			Field:        path,
			Kind:         report.KindNaming,
			Message:      fmt.Sprintf("Field name '%s' does not follow %s. Expected: %s", f.Name, conv.DisplayName(), expected),
			SuggestedFix: expected,
		}}
	}
}
