// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixed implements binary fixed-point numbers, where an integer datum
// is interpreted with an implicit power-of-two scale.
//
//	value = datum / 2^N, where N = P.Frac()
//
// N is a property of the type, so values of different precisions can not be mixed
// without an explicit Convert. All the arithmetic is integer arithmetic on the datum,
// floating-point numbers only appear in conversions.
// All results are truncated toward zero, overflows wrap around in the two's complement form.
package fixed

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/avdva/dattatypes/internal/mathutil"
)

// Value is a fixed-point number with a datum of type T and precision P.
// The zero value is 0. Values are comparable with ==.
type Value[T constraints.Integer, P Precision] struct {
	d T
}

// valueType is implemented by every Value type.
// It allows functions to take the result type as a single type argument,
// like FromInt[Plain32](2).
type valueType[V any] interface {
	Frac() int
	fromWide(w mathutil.Wide, frac int) V
}

// FromInt returns a V for an integer value.
// If V has a negative precision, v is truncated toward zero to a multiple of 2^-N.
func FromInt[V valueType[V]](v int64) V {
	var zero V
	return zero.fromWide(mathutil.Widen(v), 0)
}

// FromUint returns a V for an unsigned integer value.
func FromUint[V valueType[V]](v uint64) V {
	var zero V
	return zero.fromWide(mathutil.Widen(v), 0)
}

// FromFloat returns a V for a float number truncating it toward zero to the precision of V.
// NaNs and infinities aren't supported.
func FromFloat[V valueType[V]](f float64) V {
	var zero V
	n := zero.Frac()
	return zero.fromWide(mathutil.WidenFloat(math.Ldexp(f, n)), n)
}

// FromRaw returns a V with the given datum. The datum is not scaled.
func FromRaw[V valueType[V]](d int64) V {
	var zero V
	return zero.fromWide(mathutil.Widen(d), zero.Frac())
}

func (v Value[T, P]) fromWide(w mathutil.Wide, frac int) Value[T, P] {
	return Value[T, P]{d: mathutil.Narrow[T](w.Shift(frac - v.Frac()))}
}

func (v Value[T, P]) withRaw(d T) Value[T, P] {
	return Value[T, P]{d: d}
}

func (v Value[T, P]) wide() mathutil.Wide {
	return mathutil.Widen(v.d)
}

// scaled returns the datum for integer i.
func (v Value[T, P]) scaled(i int64) T {
	return mathutil.Narrow[T](mathutil.Widen(i).Shift(-v.Frac()))
}

// scaledFloat returns the datum for float f.
func (v Value[T, P]) scaledFloat(f float64) T {
	return mathutil.Narrow[T](mathutil.WidenFloat(math.Ldexp(f, v.Frac())))
}

// Frac returns the number of fractional bits.
func (v Value[T, P]) Frac() int {
	var p P
	return p.Frac()
}

// Bits returns the size of the datum in bits.
func (v Value[T, P]) Bits() int {
	return mathutil.BitSize[T]()
}

// Raw returns the datum.
func (v Value[T, P]) Raw() T {
	return v.d
}

// SetRaw sets the datum.
func (v *Value[T, P]) SetRaw(d T) {
	v.d = d
}

// Add returns v+other.
func (v Value[T, P]) Add(other Value[T, P]) Value[T, P] {
	return v.withRaw(v.d + other.d)
}

// Sub returns v-other.
func (v Value[T, P]) Sub(other Value[T, P]) Value[T, P] {
	return v.withRaw(v.d - other.d)
}

// Mul returns v*other.
// The product is calculated with 128 bits and then truncated.
func (v Value[T, P]) Mul(other Value[T, P]) Value[T, P] {
	return v.withRaw(mathutil.Narrow[T](mathutil.MulShift(v.wide(), other.wide(), v.Frac())))
}

// Div returns v/other. If other is zero, Div panics.
func (v Value[T, P]) Div(other Value[T, P]) Value[T, P] {
	return v.withRaw(mathutil.Narrow[T](mathutil.ShiftDiv(v.wide(), other.wide(), v.Frac())))
}

// AddInt returns v+i.
func (v Value[T, P]) AddInt(i int64) Value[T, P] {
	return v.withRaw(v.d + v.scaled(i))
}

// SubInt returns v-i.
func (v Value[T, P]) SubInt(i int64) Value[T, P] {
	return v.withRaw(v.d - v.scaled(i))
}

// MulInt returns v*i.
func (v Value[T, P]) MulInt(i int64) Value[T, P] {
	return v.withRaw(mathutil.Narrow[T](mathutil.MulShift(v.wide(), mathutil.Widen(i), 0)))
}

// DivInt returns v/i. If i is zero, DivInt panics.
func (v Value[T, P]) DivInt(i int64) Value[T, P] {
	return v.withRaw(mathutil.Narrow[T](mathutil.ShiftDiv(v.wide(), mathutil.Widen(i), 0)))
}

// AddFloat returns v+f, where f is truncated to the precision of v first.
func (v Value[T, P]) AddFloat(f float64) Value[T, P] {
	return v.withRaw(v.d + v.scaledFloat(f))
}

// SubFloat returns v-f, where f is truncated to the precision of v first.
func (v Value[T, P]) SubFloat(f float64) Value[T, P] {
	return v.withRaw(v.d - v.scaledFloat(f))
}

// MulFloat returns v*f.
func (v Value[T, P]) MulFloat(f float64) Value[T, P] {
	return v.withRaw(mathutil.Narrow[T](mathutil.WidenFloat(float64(v.d) * f)))
}

// DivFloat returns v/f.
func (v Value[T, P]) DivFloat(f float64) Value[T, P] {
	return v.withRaw(mathutil.Narrow[T](mathutil.WidenFloat(float64(v.d) / f)))
}

// Neg returns -v.
func (v Value[T, P]) Neg() Value[T, P] {
	return v.withRaw(-v.d)
}

// Abs returns |v|.
func (v Value[T, P]) Abs() Value[T, P] {
	if v.d < 0 {
		return v.Neg()
	}
	return v
}

// Sign returns -1 if v < 0, 0 if v == 0, 1 if v > 0.
func (v Value[T, P]) Sign() int {
	switch {
	case v.d < 0:
		return -1
	case v.d > 0:
		return 1
	default:
		return 0
	}
}

// Inc returns v+1.
func (v Value[T, P]) Inc() Value[T, P] {
	return v.AddInt(1)
}

// Dec returns v-1.
func (v Value[T, P]) Dec() Value[T, P] {
	return v.SubInt(1)
}

// Not inverts all the bits of the datum.
func (v Value[T, P]) Not() Value[T, P] {
	return v.withRaw(^v.d)
}

// And returns a value with the datum d & mask.
func (v Value[T, P]) And(mask T) Value[T, P] {
	return v.withRaw(v.d & mask)
}

// Or returns a value with the datum d | mask.
func (v Value[T, P]) Or(mask T) Value[T, P] {
	return v.withRaw(v.d | mask)
}

// Xor returns a value with the datum d ^ mask.
func (v Value[T, P]) Xor(mask T) Value[T, P] {
	return v.withRaw(v.d ^ mask)
}

// AndNot returns a value with the datum d &^ mask.
func (v Value[T, P]) AndNot(mask T) Value[T, P] {
	return v.withRaw(v.d &^ mask)
}

// Shl returns a value with the datum d << n.
func (v Value[T, P]) Shl(n uint) Value[T, P] {
	return v.withRaw(v.d << n)
}

// Shr returns a value with the datum d >> n.
func (v Value[T, P]) Shr(n uint) Value[T, P] {
	return v.withRaw(v.d >> n)
}

// IsZero returns true if v == 0.
func (v Value[T, P]) IsZero() bool {
	return v.d == 0
}

// Bool returns true if v != 0.
func (v Value[T, P]) Bool() bool {
	return v.d != 0
}

// Eq returns true, if both values are equal.
func (v Value[T, P]) Eq(other Value[T, P]) bool {
	return v.d == other.d
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (v Value[T, P]) Cmp(other Value[T, P]) int {
	switch {
	case v.d < other.d:
		return -1
	case v.d > other.d:
		return 1
	default:
		return 0
	}
}

// Less returns v < other.
func (v Value[T, P]) Less(other Value[T, P]) bool {
	return v.d < other.d
}

// LessOrEqual returns v <= other.
func (v Value[T, P]) LessOrEqual(other Value[T, P]) bool {
	return v.d <= other.d
}

// Greater returns v > other.
func (v Value[T, P]) Greater(other Value[T, P]) bool {
	return v.d > other.d
}

// GreaterOrEqual returns v >= other.
func (v Value[T, P]) GreaterOrEqual(other Value[T, P]) bool {
	return v.d >= other.d
}

// Int returns the integer part of v truncated toward zero.
func (v Value[T, P]) Int() T {
	return mathutil.Narrow[T](v.wide().Shift(v.Frac()))
}

// Floor returns the integer part of v rounded toward negative infinity.
func (v Value[T, P]) Floor() T {
	if n := v.Frac(); n < 0 {
		return v.d << uint(-n)
	}
	return v.d >> uint(v.Frac())
}

// Fraction returns v - v.Int(). It has the same sign as v.
func (v Value[T, P]) Fraction() Value[T, P] {
	n := v.Frac()
	if n <= 0 {
		return v.withRaw(0)
	}
	w := v.wide()
	if n < 64 {
		w.Mag &= 1<<uint(n) - 1
	}
	return v.withRaw(mathutil.Narrow[T](w))
}

// Float64 returns v as a float64.
func (v Value[T, P]) Float64() float64 {
	return math.Ldexp(float64(v.d), -v.Frac())
}

// Clamp returns min(v, max).
// If max is out of the range of v, the bound saturates to the nearest representable value.
func (v Value[T, P]) Clamp(max int64) Value[T, P] {
	m := mathutil.Saturate[T](mathutil.Widen(max).ShiftSat(-v.Frac()))
	if v.d > m {
		return v.withRaw(m)
	}
	return v
}

// Approx returns true, if v is closer to i than the smallest step of v.
func (v Value[T, P]) Approx(i int64) bool {
	// compare d*2^k and i*2^m, where one of the shifts is zero, and the step is 2^k.
	var k, m uint
	if n := v.Frac(); n < 0 {
		k = uint(-n)
	} else {
		m = uint(n)
	}
	hi, lo, ok := mathutil.Dist128(v.wide(), k, mathutil.Widen(i), m)
	stepHi, stepLo := mathutil.Shl128(0, 1, k)
	return ok && mathutil.Less128(hi, lo, stepHi, stepLo)
}

// FApprox returns true, if v is closer to f than the smallest step of v.
func (v Value[T, P]) FApprox(f float64) bool {
	return math.Abs(float64(v.d)-math.Ldexp(f, v.Frac())) < 1
}

// GoString returns debug string representation.
func (v Value[T, P]) GoString() string {
	return v.String() + fmt.Sprintf(" {%v, %v}", v.d, v.Frac())
}
