package filter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Pair is one entry of a Map.
type Pair struct {
	Key   string
	Value any
}

// P is a shorthand for constructing a Pair.
//
//	filter.Map{filter.P("age__gte", 18), filter.P("age__lt", 21)}
func P(key string, value any) Pair {
	return Pair{Key: key, Value: value}
}

// Map is an ordered mapping of predicate keys (or payload columns) to values.
// Conditions are rendered in slice order.
type Map []Pair

// FromMap converts a Go map into a Map. Go maps have no order, so keys are
// sorted alphabetically.
func FromMap(m map[string]any) Map {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make(Map, 0, len(keys))
	for _, key := range keys {
		out = append(out, P(key, m[key]))
	}
	return out
}

// Get returns the value of the first pair with the given key.
func (m Map) Get(key string) (any, bool) {
	for _, p := range m {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// UnmarshalJSON decodes a JSON object keeping the key order of the document.
// Numbers are decoded as json.Number.
func (m *Map) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("filter must be a JSON object, got %v", tok)
	}

	out := Map{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected JSON key %v", tok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		out = append(out, P(key, value))
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = out
	return nil
}

// UnmarshalYAML decodes a YAML mapping keeping the key order of the document.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*m = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: filter must be a mapping", node.Line)
	}

	out := make(Map, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		var value any
		if err := valueNode.Decode(&value); err != nil {
			return fmt.Errorf("line %d: key %q: %w", valueNode.Line, keyNode.Value, err)
		}
		out = append(out, P(keyNode.Value, value))
	}
	*m = out
	return nil
}
