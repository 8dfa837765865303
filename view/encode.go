package view

import (
	"bytes"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the view as a JSON object with keys in view order.
func (v *View) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	first := true

	var encErr error

	err := v.Range(func(key string, value any) bool {
		k, err := json.Marshal(key)
		if err != nil {
			encErr = err
			return false
		}

		val, err := json.Marshal(value)
		if err != nil {
			encErr = err
			return false
		}

		if !first {
			buf.WriteByte(',')
		}

		first = false

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)

		return true
	})
	if err != nil {
		return nil, err
	}

	if encErr != nil {
		return nil, encErr
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML returns a mapping node with keys in view order.
func (v *View) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	var encErr error

	err := v.Range(func(key string, value any) bool {
		var val yaml.Node
		if encErr = val.Encode(value); encErr != nil {
			return false
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&val,
		)

		return true
	})
	if err != nil {
		return nil, err
	}

	if encErr != nil {
		return nil, encErr
	}

	return node, nil
}
