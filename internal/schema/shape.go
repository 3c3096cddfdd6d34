// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// shapeSchema describes the serialization shape of a schema document: a list
// of objects whose well-known attributes have the right JSON types. Which
// attributes are required and which values are allowed is left to dialects.
func shapeSchema() *jsonschema.Schema {
	fieldRef := &jsonschema.Schema{Ref: "#/$defs/field"}
	return &jsonschema.Schema{
		Type:  "array",
		Items: fieldRef,
		Defs: map[string]*jsonschema.Schema{
			"field": {
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					AttrName:        {Type: "string"},
					AttrType:        {Type: "string"},
					AttrMode:        {Type: "string"},
					AttrDescription: {Types: []string{"string", "null"}},
					AttrFields: {
						Type:  "array",
						Items: &jsonschema.Schema{Ref: "#/$defs/field"},
					},
				},
			},
		},
	}
}

var resolvedShape = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	return shapeSchema().Resolve(nil)
})

// checkShape validates a generically decoded document against shapeSchema.
func checkShape(v any) error {
	resolved, err := resolvedShape()
	if err != nil {
		return parseErrorf("shape schema: %v", err)
	}
	if err := checkFieldLists(v); err != nil {
		return err
	}
	if err := resolved.Validate(v); err != nil {
		return parseErrorf("%v", err)
	}
	return nil
}

// checkFieldLists reports any 'fields' attribute that is not a list, null
// included.
func checkFieldLists(v any) error {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		children, declared := obj[AttrFields]
		if !declared {
			continue
		}
		if _, ok := children.([]any); !ok {
			return parseErrorf("'fields' must be a list")
		}
		if err := checkFieldLists(children); err != nil {
			return err
		}
	}
	return nil
}
