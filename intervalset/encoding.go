// Copyright 2020 Aleksandr Demakin. All rights reserved.

package intervalset

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	su "github.com/avdva/dattatypes/internal/strutil"
)

// MarshalJSON encodes the bounds as a list of integers.
func (s Set[E]) MarshalJSON() ([]byte, error) {
	return su.AppendList(nil, s.Data), nil
}

// UnmarshalJSON decodes a list of integers and validates it.
func (s *Set[E]) UnmarshalJSON(data []byte) error {
	var numbers []json.Number
	if err := json.Unmarshal(data, &numbers); err != nil {
		return err
	}
	items := make([]string, len(numbers))
	for i, n := range numbers {
		items[i] = n.String()
	}
	return s.setItems(items, 10)
}

// MarshalYAML encodes the bounds as a flow sequence of integers, like [-4, 0, 1, 5].
func (s Set[E]) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
	}
	for _, e := range s.Data {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: su.FormatInt(e),
		})
	}
	return node, nil
}

// UnmarshalYAML decodes a sequence of integers and validates it.
func (s *Set[E]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: expected a sequence", node.Line)
	}
	items := make([]string, len(node.Content))
	for i, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: expected a scalar", item.Line)
		}
		items[i] = item.Value
	}
	return s.setItems(items, 0)
}

func (s *Set[E]) setItems(items []string, base int) error {
	data, err := su.ParseList[E](items, base)
	if err != nil {
		return err
	}
	parsed := Set[E]{Data: data}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*s = parsed
	return nil
}
