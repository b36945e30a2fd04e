package args

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"av1an-args/internal/config"

	"gopkg.in/yaml.v3"
)

// Field is one entry of a Document. Value is nil for an unset optional,
// otherwise a string, bool, uint64 or float64.
type Field struct {
	Name  string
	Value any
}

// Document is the serialized form of a Config handed to the encoding
// pipeline: every schema option in declaration order, unset optionals
// included as null.
type Document struct {
	fields []Field
}

// Serialize renders c with the av1an schema.
func Serialize(c config.Config) Document {
	return defaultSchema.Serialize(c)
}

// Serialize renders c as a Document.
func (s *Schema) Serialize(c config.Config) Document {
	fields := make([]Field, 0, len(s.options))
	for _, opt := range s.options {
		fields = append(fields, Field{Name: opt.Name, Value: opt.value(&c)})
	}
	return Document{fields: fields}
}

// Fields returns a copy of the document entries.
func (d Document) Fields() []Field {
	return slices.Clone(d.fields)
}

// Get returns the value stored under name. The second result is false
// only when the document has no such field; a present field may hold nil.
func (d Document) Get(name string) (any, bool) {
	for _, f := range d.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON writes the fields as one object in declaration order.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range d.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		switch v := f.Value.(type) {
		case nil:
			buf.WriteString("null")
		case float64:
			buf.WriteString(formatFloat(v))
		default:
			b, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", f.Name, err)
			}
			buf.Write(b)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the fields as an ordered mapping.
func (d Document) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range d.fields {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name}
		val, err := yamlScalar(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

func yamlScalar(v any) (*yaml.Node, error) {
	scalar := func(tag, value string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
	}
	switch x := v.(type) {
	case nil:
		return scalar("!!null", "null"), nil
	case string:
		return scalar("!!str", x), nil
	case bool:
		return scalar("!!bool", strconv.FormatBool(x)), nil
	case uint64:
		return scalar("!!int", strconv.FormatUint(x, 10)), nil
	case float64:
		return scalar("!!float", formatFloat(x)), nil
	default:
		return nil, fmt.Errorf("unsupported value %T", v)
	}
}

// formatFloat keeps a fractional part or exponent so that integral values
// such as 35 stay floats for the consumer.
func formatFloat(f float64) string {
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
