// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/avdva/dattatypes/internal/mathutil"
	su "github.com/avdva/dattatypes/internal/strutil"
)

// MarshalJSON encodes v as its datum, a JSON integer.
func (v Value[T, P]) MarshalJSON() ([]byte, error) {
	return su.AppendInt(nil, v.d), nil
}

// UnmarshalJSON decodes a JSON integer as the datum.
// A JSON string is parsed as a decimal number instead, like "2.5".
// So for Plain32 the input 3 decodes as 3/256, while "3" decodes as 3.
// Bare JSON floats, like 2.5, are rejected.
func (v *Value[T, P]) UnmarshalJSON(data []byte) error {
	switch {
	case len(data) == 0:
		return fmt.Errorf("empty input")
	case string(data) == "null":
		return nil
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		return v.UnmarshalText([]byte(s))
	}
	d, err := su.ParseInt[T](string(data), 10)
	if err != nil {
		return err
	}
	v.d = d
	return nil
}

// MarshalText encodes v as a decimal number.
func (v Value[T, P]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes a decimal number truncating it to the precision of v.
func (v *Value[T, P]) UnmarshalText(text []byte) error {
	parsed, err := FromString[Value[T, P]](string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes v as its datum, a YAML integer.
func (v Value[T, P]) MarshalYAML() (interface{}, error) {
	if mathutil.IsSigned[T]() {
		return int64(v.d), nil
	}
	return uint64(v.d), nil
}

// UnmarshalYAML decodes a YAML integer as the datum.
// Other scalars, like 2.5 or "2.5", are parsed as decimal numbers.
// So for Plain32 the scalar 3 decodes as 3/256, while 3.0 or '3' decode as 3.
func (v *Value[T, P]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", node.Line)
	}
	if node.ShortTag() != "!!int" {
		return v.UnmarshalText([]byte(node.Value))
	}
	d, err := su.ParseInt[T](node.Value, 0)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	v.d = d
	return nil
}
