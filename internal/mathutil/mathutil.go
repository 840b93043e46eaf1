// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil implements the wide integer helpers shared by fixed-point values.
// All integers are widened into a sign and a 64-bit magnitude, so that
// any integer type up to 64 bits can be multiplied, divided and rescaled
// with a 128-bit intermediate result.
package mathutil

import (
	"math"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

const (
	bitsInWord = int(8 * unsafe.Sizeof(uint64(0)))
	two64      = 1 << 64
)

// Wide is a sign-magnitude integer.
// Negative zero is allowed and narrows to zero.
type Wide struct {
	Neg bool
	Mag uint64
}

// IsSigned returns true if T is a signed integer type.
func IsSigned[T constraints.Integer]() bool {
	var zero T
	return ^zero < 0
}

// BitSize returns the number of bits in T.
func BitSize[T constraints.Integer]() int {
	var zero T
	return int(8 * unsafe.Sizeof(zero))
}

// MaxOf returns the maximum value of T.
func MaxOf[T constraints.Integer]() T {
	var zero T
	if IsSigned[T]() {
		return T(uint64(1)<<(BitSize[T]()-1) - 1)
	}
	return ^zero
}

// MinOf returns the minimum value of T.
func MinOf[T constraints.Integer]() T {
	if IsSigned[T]() {
		return T(uint64(1) << (BitSize[T]() - 1))
	}
	return 0
}

// Widen converts v into a sign-magnitude number.
func Widen[T constraints.Integer](v T) Wide {
	if v < 0 {
		// -MinInt64 wraps to MinInt64, whose uint64 conversion is the correct magnitude.
		return Wide{Neg: true, Mag: uint64(-int64(v))}
	}
	return Wide{Mag: uint64(v)}
}

// WidenFloat converts f into a sign-magnitude number, truncating it toward zero.
// Magnitudes that exceed 64 bits saturate. NaN is converted to zero.
func WidenFloat(f float64) Wide {
	neg := math.Signbit(f)
	f = math.Abs(f)
	switch {
	case math.IsNaN(f):
		return Wide{}
	case f >= two64:
		return Wide{Neg: neg, Mag: math.MaxUint64}
	}
	return Wide{Neg: neg, Mag: uint64(f)}
}

// Narrow converts w into T. Bits that do not fit into T are dropped
// in the two's complement form.
func Narrow[T constraints.Integer](w Wide) T {
	u := w.Mag
	if w.Neg {
		u = -u
	}
	return T(u)
}

// Shift divides w by 2^n if n > 0, or multiplies it by 2^-n if n < 0.
// Division truncates toward zero, multiplication keeps the low 64 bits.
func (w Wide) Shift(n int) Wide {
	switch {
	case n > 0:
		if n >= bitsInWord {
			w.Mag = 0
		} else {
			w.Mag >>= uint(n)
		}
	case n < 0:
		if -n >= bitsInWord {
			w.Mag = 0
		} else {
			w.Mag <<= uint(-n)
		}
	}
	return w
}

// ShiftSat is like Shift, but a magnitude, that does not fit into 64 bits
// after the multiplication, saturates to MaxUint64.
func (w Wide) ShiftSat(n int) Wide {
	if n < 0 && w.Mag != 0 && bits.Len64(w.Mag)-n > bitsInWord {
		w.Mag = math.MaxUint64
		return w
	}
	return w.Shift(n)
}

// Saturate converts w into T, clamping it to the range of T.
func Saturate[T constraints.Integer](w Wide) T {
	if w.Neg && w.Mag != 0 {
		if !IsSigned[T]() || w.Mag >= uint64(1)<<(BitSize[T]()-1) {
			return MinOf[T]()
		}
		return T(-int64(w.Mag))
	}
	if top := MaxOf[T](); w.Mag >= uint64(top) {
		return top
	}
	return T(w.Mag)
}

// Dist128 returns |a*2^sa - b*2^sb| as a 128-bit number (hi, lo).
// ok is false, if the distance does not fit into 128 bits.
func Dist128(a Wide, sa uint, b Wide, sb uint) (hi, lo uint64, ok bool) {
	ahi, alo := Shl128(0, a.Mag, sa)
	bhi, blo := Shl128(0, b.Mag, sb)
	if a.Neg != b.Neg {
		var carry uint64
		lo, carry = bits.Add64(alo, blo, 0)
		hi, carry = bits.Add64(ahi, bhi, carry)
		return hi, lo, carry == 0
	}
	if Less128(ahi, alo, bhi, blo) {
		ahi, alo, bhi, blo = bhi, blo, ahi, alo
	}
	lo, borrow := bits.Sub64(alo, blo, 0)
	hi, _ = bits.Sub64(ahi, bhi, borrow)
	return hi, lo, true
}

// Less128 returns true, if (ahi, alo) < (bhi, blo).
func Less128(ahi, alo, bhi, blo uint64) bool {
	return ahi < bhi || ahi == bhi && alo < blo
}

// MulShift returns (a*b) / 2^n, calculated with a 128-bit intermediate product.
// If n is negative, the product is multiplied by 2^-n instead.
// Only the low 64 bits of the result magnitude are kept.
func MulShift(a, b Wide, n int) Wide {
	hi, lo := bits.Mul64(a.Mag, b.Mag)
	if n >= 0 {
		_, lo = Shr128(hi, lo, uint(n))
	} else {
		_, lo = Shl128(hi, lo, uint(-n))
	}
	return Wide{Neg: a.Neg != b.Neg, Mag: lo}
}

// ShiftDiv returns (a * 2^n) / b, calculated with a 128-bit intermediate dividend.
// If n is negative, b is multiplied by 2^-n instead.
// The quotient is truncated toward zero, only its low 64 bits are kept.
// ShiftDiv panics if b is zero.
func ShiftDiv(a, b Wide, n int) Wide {
	if b.Mag == 0 {
		panic("division by zero")
	}
	result := Wide{Neg: a.Neg != b.Neg}
	if n >= 0 {
		hi, lo := Shl128(0, a.Mag, uint(n))
		_, result.Mag = Div128(hi, lo, b.Mag)
		return result
	}
	if shift := -n; shift < bitsInWord && bits.Len64(b.Mag)+shift <= bitsInWord {
		result.Mag = a.Mag / (b.Mag << uint(shift))
	}
	// otherwise the divisor exceeds 64 bits, and the quotient is zero.
	return result
}

// Shl128 shifts a 128-bit number (hi, lo) left by n bits.
func Shl128(hi, lo uint64, n uint) (uint64, uint64) {
	switch {
	case n == 0:
		return hi, lo
	case n >= 128:
		return 0, 0
	case n >= 64:
		return lo << (n - 64), 0
	}
	return hi<<n | lo>>(64-n), lo << n
}

// Shr128 shifts a 128-bit number (hi, lo) right by n bits.
func Shr128(hi, lo uint64, n uint) (uint64, uint64) {
	switch {
	case n == 0:
		return hi, lo
	case n >= 128:
		return 0, 0
	case n >= 64:
		return 0, hi >> (n - 64)
	}
	return hi >> n, lo>>n | hi<<(64-n)
}

// Add128 returns (hi, lo) + v.
func Add128(hi, lo, v uint64) (uint64, uint64) {
	lo, carry := bits.Add64(lo, v, 0)
	return hi + carry, lo
}

// Div128 returns the full 128-bit quotient of (hi, lo) / y.
// Unlike bits.Div64, it does not panic, if the quotient overflows 64 bits.
func Div128(hi, lo, y uint64) (qhi, qlo uint64) {
	qhi, r := hi/y, hi%y
	qlo, _ = bits.Div64(r, lo, y)
	return qhi, qlo
}
