// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"bytes"

	json "github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func parseJSON(data []byte) (*Document, error) {
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, parseErrorf("Invalid JSON: %v", err)
	}
	if err := checkTopLevel(generic); err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, parseErrorf("Invalid JSON: %v", err)
	}
	fields, err := jsonFields(items)
	if err != nil {
		return nil, err
	}
	return &Document{Fields: fields}, nil
}

func jsonFields(items []json.RawMessage) ([]*Field, error) {
	fields := make([]*Field, 0, len(items))
	for _, item := range items {
		f, err := jsonField(item)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func jsonField(data json.RawMessage) (*Field, error) {
	raw := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, raw); err != nil {
		return nil, parseErrorf("Invalid JSON: %v", err)
	}

	f := &Field{attrs: orderedmap.New[string, any]()}
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		f.attrs.Set(pair.Key, pair.Value)

		var target *string
		switch pair.Key {
		case AttrName:
			target = &f.Name
		case AttrType:
			target = &f.Type
		case AttrMode:
			target = &f.Mode
		case AttrDescription:
			target = &f.Description
		case AttrFields:
			var items []json.RawMessage
			if err := json.Unmarshal(pair.Value, &items); err != nil {
				return nil, parseErrorf("'fields' must be a list: %v", err)
			}
			children, err := jsonFields(items)
			if err != nil {
				return nil, err
			}
			f.Fields = children
		}
		if target != nil {
			if err := json.Unmarshal(pair.Value, target); err != nil {
				return nil, parseErrorf("attribute %q must be a string: %v", pair.Key, err)
			}
		}
	}
	return f, nil
}

// encodeJSON writes the fields as an indented JSON array with a trailing
// newline. Attribute order and unknown attributes are preserved.
func encodeJSON(fields []*Field) ([]byte, error) {
	var compact bytes.Buffer
	if err := writeJSONFields(&compact, fields); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeJSONFields(buf *bytes.Buffer, fields []*Field) error {
	buf.WriteByte('[')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONField(buf, f); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func writeJSONField(buf *bytes.Buffer, f *Field) error {
	buf.WriteByte('{')
	for i, key := range f.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(buf, key); err != nil {
			return err
		}
		buf.WriteByte(':')

		if key == AttrFields {
			if err := writeJSONFields(buf, f.Fields); err != nil {
				return err
			}
			continue
		}
		if key != AttrName && f.attrs != nil {
			value, _ := f.attrs.Get(key)
			if raw, ok := value.(json.RawMessage); ok {
				if err := writeJSONRaw(buf, raw); err != nil {
					return err
				}
				continue
			}
		}
		if err := writeJSONString(buf, f.Value(key)); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// writeJSONRaw appends a compacted raw value. go-json's Compact re-emits
// whatever the destination already holds, so it always gets an empty buffer.
func writeJSONRaw(buf *bytes.Buffer, raw json.RawMessage) error {
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return err
	}
	buf.Write(compact.Bytes())
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.MarshalNoEscape(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
