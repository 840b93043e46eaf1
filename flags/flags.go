// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package flags implements bit flag operations on integer-backed enums,
// and packings of an enum value together with flags into a single datum.
package flags

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"

	"github.com/avdva/dattatypes/internal/mathutil"
	su "github.com/avdva/dattatypes/internal/strutil"
)

// Or returns a | b.
func Or[E constraints.Integer](a, b E) E {
	return a | b
}

// And returns a & b.
func And[E constraints.Integer](a, b E) E {
	return a & b
}

// Xor returns a ^ b.
func Xor[E constraints.Integer](a, b E) E {
	return a ^ b
}

// Bits is a set of flags of type E. The bit pattern is kept as is.
// The zero value has no flags set.
type Bits[E constraints.Integer] struct {
	d E
}

// New returns flags with the datum e.
func New[E constraints.Integer](e E) Bits[E] {
	return Bits[E]{d: e}
}

// Check returns true, if any of the bits of mask is set.
func (b Bits[E]) Check(mask E) bool {
	return b.d&mask != 0
}

// Set sets the bits of mask.
func (b *Bits[E]) Set(mask E) {
	b.d |= mask
}

// Unset clears the bits of mask.
func (b *Bits[E]) Unset(mask E) {
	b.d &^= mask
}

// Flip toggles the bits of mask.
func (b *Bits[E]) Flip(mask E) {
	b.d ^= mask
}

// Assign replaces the datum with e.
func (b *Bits[E]) Assign(e E) {
	b.d = e
}

// Value returns the datum as E.
func (b Bits[E]) Value() E {
	return b.d
}

// Underlying returns the bit pattern of the datum.
func (b Bits[E]) Underlying() uint64 {
	return uint64(b.d) & widthMask[E]()
}

// OrWith returns b | mask.
func (b Bits[E]) OrWith(mask E) Bits[E] {
	return Bits[E]{d: b.d | mask}
}

// AndWith returns b & mask.
func (b Bits[E]) AndWith(mask E) Bits[E] {
	return Bits[E]{d: b.d & mask}
}

// XorWith returns b ^ mask.
func (b Bits[E]) XorWith(mask E) Bits[E] {
	return Bits[E]{d: b.d ^ mask}
}

// String returns the bit pattern, like 0b00010010.
func (b Bits[E]) String() string {
	return fmt.Sprintf("0b%0*b", mathutil.BitSize[E](), b.Underlying())
}

// MarshalJSON encodes the datum as a JSON integer.
func (b Bits[E]) MarshalJSON() ([]byte, error) {
	return su.AppendInt(nil, b.d), nil
}

// UnmarshalJSON decodes the datum from a JSON integer.
func (b *Bits[E]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	d, err := su.ParseInt[E](string(data), 10)
	if err != nil {
		return err
	}
	b.d = d
	return nil
}

// MarshalYAML encodes the datum as a hexadecimal YAML integer.
func (b Bits[E]) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!int",
		Value: fmt.Sprintf("0x%x", b.Underlying()),
	}, nil
}

// UnmarshalYAML decodes the datum from a YAML integer.
func (b *Bits[E]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", node.Line)
	}
	u, err := su.ParseInt[uint64](node.Value, 0)
	if err != nil {
		if d, serr := su.ParseInt[E](node.Value, 0); serr == nil {
			b.d = d
			return nil
		}
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	if u&^widthMask[E]() != 0 {
		return fmt.Errorf("line %d: value %s overflows %d bits", node.Line, node.Value, mathutil.BitSize[E]())
	}
	b.d = E(u)
	return nil
}

func widthMask[E constraints.Integer]() uint64 {
	if n := mathutil.BitSize[E](); n < 64 {
		return 1<<uint(n) - 1
	}
	return ^uint64(0)
}
