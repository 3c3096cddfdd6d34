// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema loads, models and rewrites table schema documents: ordered
// lists of typed fields where RECORD fields nest further fields.
package schema

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Attribute names of a schema field.
const (
	AttrName        = "name"
	AttrType        = "type"
	AttrMode        = "mode"
	AttrDescription = "description"
	AttrFields      = "fields"
)

// Composite field types.
const (
	TypeRecord = "RECORD"
	TypeStruct = "STRUCT"
)

// UnnamedField is used in field paths for fields without a name.
const UnnamedField = "UNNAMED"

// Field is a single column of a schema. Fields decoded from a document
// remember every declared attribute in document order; when the document is
// encoded again only Name and Fields are taken from the struct, all other
// attributes are written back exactly as they were read.
type Field struct {
	Name        string
	Type        string
	Mode        string
	Description string
	Fields      []*Field

	// attrs holds declared attributes in document order. Values are
	// codec-specific and never mutated.
	attrs *orderedmap.OrderedMap[string, any]
	// node is the mapping node of a field read from YAML.
	node *yaml.Node
}

// Has reports whether the attribute was declared on the field. For fields
// built in code an attribute counts as declared when it holds a value.
func (f *Field) Has(attr string) bool {
	if f.attrs != nil {
		_, ok := f.attrs.Get(attr)
		return ok
	}
	switch attr {
	case AttrName:
		return f.Name != ""
	case AttrType:
		return f.Type != ""
	case AttrMode:
		return f.Mode != ""
	case AttrDescription:
		return f.Description != ""
	case AttrFields:
		return f.Fields != nil
	default:
		return false
	}
}

// Value returns the string value of a well-known attribute.
func (f *Field) Value(attr string) string {
	switch attr {
	case AttrName:
		return f.Name
	case AttrType:
		return f.Type
	case AttrMode:
		return f.Mode
	case AttrDescription:
		return f.Description
	default:
		return ""
	}
}

// Keys returns the declared attribute names in document order.
func (f *Field) Keys() []string {
	if f.attrs == nil {
		var keys []string
		for _, k := range []string{AttrName, AttrType, AttrMode, AttrDescription, AttrFields} {
			if f.Has(k) {
				keys = append(keys, k)
			}
		}
		return keys
	}
	keys := make([]string, 0, f.attrs.Len())
	for pair := f.attrs.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// IsRecord reports whether the field is a composite that nests other fields.
func (f *Field) IsRecord() bool {
	return f.Type == TypeRecord || f.Type == TypeStruct
}

// DisplayName returns the field name, or UnnamedField when it has none.
func (f *Field) DisplayName() string {
	if f.Name == "" {
		return UnnamedField
	}
	return f.Name
}

// Clone returns a deep copy of the field tree. Attribute values are shared,
// they are never mutated.
func (f *Field) Clone() *Field {
	if f == nil {
		return nil
	}
	c := *f
	if f.Fields != nil {
		c.Fields = CloneFields(f.Fields)
	}
	return &c
}

// CloneFields deep-copies a list of fields.
func CloneFields(fields []*Field) []*Field {
	out := make([]*Field, len(fields))
	for i, f := range fields {
		out[i] = f.Clone()
	}
	return out
}

// FieldPath joins ancestor names and a field name with dots.
func FieldPath(ancestry []string, name string) string {
	if len(ancestry) == 0 {
		return name
	}
	return strings.Join(ancestry, ".") + "." + name
}

// Walk visits every field in depth-first pre-order, descending into nested
// fields of any type. Returning false from fn stops the walk.
func Walk(fields []*Field, fn func(f *Field, ancestry []string) bool) {
	var walk func(fields []*Field, ancestry []string) bool
	walk = func(fields []*Field, ancestry []string) bool {
		for _, f := range fields {
			if !fn(f, ancestry) {
				return false
			}
			if len(f.Fields) > 0 {
				next := append(ancestry[:len(ancestry):len(ancestry)], f.DisplayName())
				if !walk(f.Fields, next) {
					return false
				}
			}
		}
		return true
	}
	walk(fields, nil)
}
