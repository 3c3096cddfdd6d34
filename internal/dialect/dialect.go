// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package dialect provides the structural rule sets of the schema systems a
// document can target.
package dialect

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dacolabs/schemalint/internal/naming"
	"github.com/dacolabs/schemalint/internal/report"
	"github.com/dacolabs/schemalint/internal/schema"
)

// Sentinel errors for dialect lookup.
var (
	ErrUnknownDialect     = errors.New("unknown dialect")
	ErrUnsupportedDialect = errors.New("unsupported dialect")
)

// Dialect validates a single field against the rules of a target system.
type Dialect interface {
	// Name returns the dialect's identifier (e.g., "bigquery")
	Name() string

	// Info describes the types, modes and attributes the dialect knows about
	Info() Info

	// ValidateField checks one field. Nested fields are not visited; the
	// caller walks the tree and passes the ancestor names.
	ValidateField(f *schema.Field, ancestry []string, conv naming.Convention) []report.Violation
}

// Info is the attribute table of a dialect.
type Info struct {
	Name          string   `json:"name" yaml:"name"`
	Supported     bool     `json:"supported" yaml:"supported"`
	Types         []string `json:"types" yaml:"types"`
	Modes         []string `json:"modes" yaml:"modes"`
	RequiredAttrs []string `json:"requiredAttributes" yaml:"requiredAttributes"`
	OptionalAttrs []string `json:"optionalAttributes" yaml:"optionalAttributes"`
}

// Rule inspects a field at a dotted path and returns its violations.
type Rule func(f *schema.Field, path string) []report.Violation

// Options configure the built-in dialects.
type Options struct {
	// Engine checks and converts field names. Defaults to naming.Default.
	Engine *naming.Engine
	// RequireDescription makes description a required attribute.
	RequireDescription bool
}

// Registry maps dialect names to dialects.
type Registry map[string]Dialect

// Builtin returns a registry holding every known dialect.
func Builtin(opts Options) Registry {
	if opts.Engine == nil {
		opts.Engine = naming.Default
	}
	r := make(Registry)
	r.Register(NewBigQuery(opts))
	for _, p := range plannedDialects {
		r.Register(p)
	}
	return r
}

// Register adds a dialect to the registry.
func (r Registry) Register(d Dialect) {
	r[d.Name()] = d
}

// Get retrieves a dialect that can validate fields.
func (r Registry) Get(name string) (Dialect, error) {
	d, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w '%s'. Available dialects: %s", ErrUnknownDialect, name, strings.Join(r.Supported(), ", "))
	}
	if !d.Info().Supported {
		return nil, fmt.Errorf("%w '%s'. Available dialects: %s", ErrUnsupportedDialect, name, strings.Join(r.Supported(), ", "))
	}
	return d, nil
}

// Available returns all registered dialect names, sorted.
func (r Registry) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Supported returns the names of dialects that can validate fields, sorted.
func (r Registry) Supported() []string {
	var names []string
	for _, name := range r.Available() {
		if r[name].Info().Supported {
			names = append(names, name)
		}
	}
	return names
}

func sorted(values []string) []string {
	out := slices.Clone(values)
	slices.Sort(out)
	return out
}
