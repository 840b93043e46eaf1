// Copyright 2020 Aleksandr Demakin. All rights reserved.

package flags

import (
	"golang.org/x/exp/constraints"

	"github.com/avdva/dattatypes/internal/mathutil"
)

// UseFlagser is an enum, that stores either a value or flags.
// UseFlags returns the discriminant bit, usually the MSB, which is set, if the datum holds flags.
type UseFlagser[E any] interface {
	constraints.Integer
	UseFlags() E
}

// FlagCounter is an enum, that stores a value in the low bits, and flags in the high bits.
// NumberOfFlags returns the number of the high bits reserved for flags.
type FlagCounter interface {
	constraints.Integer
	NumberOfFlags() int
}

// ValueAndFlags holds either an enum value or a set of flags.
type ValueAndFlags[E UseFlagser[E]] struct {
	Bits[E]
}

// NewValueAndFlags returns ValueAndFlags with the datum e.
func NewValueAndFlags[E UseFlagser[E]](e E) ValueAndFlags[E] {
	return ValueAndFlags[E]{Bits: New(e)}
}

// UsesFlags returns true, if the datum holds flags.
func (v ValueAndFlags[E]) UsesFlags() bool {
	var zero E
	return v.Check(zero.UseFlags())
}

// EnumPlusFlags holds an enum value in the low bits, and flags in the high bits.
type EnumPlusFlags[E FlagCounter] struct {
	Bits[E]
}

// NewEnumPlusFlags returns EnumPlusFlags with the datum e.
func NewEnumPlusFlags[E FlagCounter](e E) EnumPlusFlags[E] {
	return EnumPlusFlags[E]{Bits: New(e)}
}

// Enum returns the enum value.
func (v EnumPlusFlags[E]) Enum() E {
	return v.d & enumMask[E]()
}

// Flags returns the flags area, the enum bits are cleared.
func (v EnumPlusFlags[E]) Flags() E {
	return v.d &^ enumMask[E]()
}

// SetEnum replaces the enum value keeping the flags.
// The bits of e, that overlap the flags area, are ignored.
func (v *EnumPlusFlags[E]) SetEnum(e E) {
	mask := enumMask[E]()
	v.d = v.d&^mask | e&mask
}

// ClearFlags clears all the flags keeping the enum value.
func (v *EnumPlusFlags[E]) ClearFlags() {
	v.d = v.Enum()
}

func enumMask[E FlagCounter]() E {
	var zero E
	width := mathutil.BitSize[E]() - zero.NumberOfFlags()
	return E(uint64(1)<<uint(width) - 1)
}
