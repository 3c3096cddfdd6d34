// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"bytes"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

const (
	yamlStrTag = "!!str"
	yamlMapTag = "!!map"
	yamlSeqTag = "!!seq"
)

// yamlAttr is the attribute value stored for fields read from YAML. Keeping
// the key node keeps its comments.
type yamlAttr struct {
	key   *yaml.Node
	value *yaml.Node
}

func parseYAML(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, parseErrorf("Invalid YAML: %v", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, parseErrorf("Schema must be a list of field objects")
	}

	var generic any
	if err := root.Decode(&generic); err != nil {
		return nil, parseErrorf("Invalid YAML: %v", err)
	}
	if err := checkTopLevel(generic); err != nil {
		return nil, err
	}

	fields, err := yamlFields(root.Content[0])
	if err != nil {
		return nil, err
	}
	return &Document{Fields: fields, yamlRoot: &root}, nil
}

func yamlFields(seq *yaml.Node) ([]*Field, error) {
	if seq.Kind != yaml.SequenceNode {
		return nil, parseErrorf("'fields' must be a list")
	}
	fields := make([]*Field, 0, len(seq.Content))
	for _, item := range seq.Content {
		f, err := yamlField(item)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func yamlField(node *yaml.Node) (*Field, error) {
	if node.Kind != yaml.MappingNode {
		return nil, parseErrorf("field at line %d must be an object", node.Line)
	}

	f := &Field{attrs: orderedmap.New[string, any](), node: node}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		f.attrs.Set(key.Value, yamlAttr{key: key, value: value})

		switch key.Value {
		case AttrName:
			f.Name = yamlString(value)
		case AttrType:
			f.Type = yamlString(value)
		case AttrMode:
			f.Mode = yamlString(value)
		case AttrDescription:
			f.Description = yamlString(value)
		case AttrFields:
			children, err := yamlFields(value)
			if err != nil {
				return nil, err
			}
			f.Fields = children
		}
	}
	return f, nil
}

func yamlString(n *yaml.Node) string {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != yamlStrTag {
		return ""
	}
	return n.Value
}

func encodeYAML(d *Document) ([]byte, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: yamlSeqTag}
	doc := &yaml.Node{Kind: yaml.DocumentNode}
	if d.yamlRoot != nil {
		copyComments(doc, d.yamlRoot)
		if len(d.yamlRoot.Content) > 0 {
			copyComments(seq, d.yamlRoot.Content[0])
			seq.Style = d.yamlRoot.Content[0].Style
		}
	}
	seq.Content = yamlFieldNodes(d.Fields)
	doc.Content = []*yaml.Node{seq}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yamlFieldNodes(fields []*Field) []*yaml.Node {
	nodes := make([]*yaml.Node, len(fields))
	for i, f := range fields {
		nodes[i] = yamlFieldNode(f)
	}
	return nodes
}

func yamlFieldNode(f *Field) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: yamlMapTag}
	if f.node != nil {
		copyComments(m, f.node)
		m.Style = f.node.Style
	}

	for _, key := range f.Keys() {
		var k, v *yaml.Node
		if f.attrs != nil {
			if value, ok := f.attrs.Get(key); ok {
				if a, ok := value.(yamlAttr); ok {
					k, v = a.key, a.value
				}
			}
		}
		if k == nil {
			k = yamlScalar(key)
		}

		switch key {
		case AttrFields:
			seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: yamlSeqTag}
			if v != nil {
				copyComments(seq, v)
				seq.Style = v.Style
			}
			seq.Content = yamlFieldNodes(f.Fields)
			v = seq
		case AttrName:
			v = renamedScalar(v, f.Name)
		default:
			if v == nil {
				v = yamlScalar(f.Value(key))
			}
		}
		m.Content = append(m.Content, k, v)
	}
	return m
}

// renamedScalar returns orig when it already holds name, otherwise a copy of
// orig carrying name so comments and quoting style survive the rename.
func renamedScalar(orig *yaml.Node, name string) *yaml.Node {
	if orig == nil {
		return yamlScalar(name)
	}
	if orig.Kind == yaml.ScalarNode && orig.Value == name {
		return orig
	}
	n := *orig
	n.Kind = yaml.ScalarNode
	n.Tag = yamlStrTag
	n.Value = name
	n.Content = nil
	return &n
}

func yamlScalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: yamlStrTag, Value: s}
}

func copyComments(dst, src *yaml.Node) {
	dst.HeadComment = src.HeadComment
	dst.LineComment = src.LineComment
	dst.FootComment = src.FootComment
}
