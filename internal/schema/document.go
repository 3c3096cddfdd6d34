// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrRead indicates the schema file could not be read.
	ErrRead = errors.New("cannot read schema file")

	// ErrParse indicates the schema file is not a valid schema document.
	ErrParse = errors.New("invalid schema document")

	// ErrWrite indicates a rewritten schema could not be persisted.
	ErrWrite = errors.New("cannot write schema file")
)

// Format is the serialization of a schema document.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension. Anything that is not
// .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return YAML
	}
	return JSON
}

// Document is a parsed schema file.
type Document struct {
	Path   string
	Format Format
	Fields []*Field

	// yamlRoot is the document node of a YAML file, kept for comments.
	yamlRoot *yaml.Node
}

// Load reads and parses the schema file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	doc, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, err
	}
	doc.Path = path
	return doc, nil
}

// Parse decodes a schema document. The top level must be a non-empty list of
// field objects.
func Parse(data []byte, format Format) (*Document, error) {
	var (
		doc *Document
		err error
	)
	switch format {
	case YAML:
		doc, err = parseYAML(data)
	case JSON:
		doc, err = parseJSON(data)
	default:
		return nil, fmt.Errorf("%w: format %q not supported", ErrParse, format)
	}
	if err != nil {
		return nil, err
	}
	doc.Format = format
	return doc, nil
}

// WithFields returns a copy of the document holding a different field tree.
func (d *Document) WithFields(fields []*Field) *Document {
	c := *d
	c.Fields = fields
	return &c
}

// Encode serializes the document in its format.
func (d *Document) Encode() ([]byte, error) {
	switch d.Format {
	case YAML:
		return encodeYAML(d)
	default:
		return encodeJSON(d.Fields)
	}
}

func parseErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}

// checkTopLevel enforces the list-of-objects shape of a decoded document.
func checkTopLevel(v any) error {
	items, ok := v.([]any)
	if !ok {
		return parseErrorf("Schema must be a list of field objects")
	}
	if len(items) == 0 {
		return parseErrorf("Schema cannot be empty")
	}
	for i, item := range items {
		if _, ok := item.(map[string]any); !ok {
			return parseErrorf("Field %d must be an object", i)
		}
	}
	return checkShape(v)
}
