// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	"github.com/avdva/dattatypes/internal/mathutil"
)

var (
	bigFive      = big.NewInt(5)
	bigMaxUint64 = new(big.Int).SetUint64(^uint64(0))
)

// Convert converts v to the type V, which may have a different datum type and precision.
// The fractional bits, that do not fit into V, are truncated toward zero,
// the integer bits, that do not fit, are dropped in the two's complement form.
func Convert[V valueType[V], T constraints.Integer, P Precision](v Value[T, P]) V {
	var zero V
	return zero.fromWide(v.wide(), v.Frac())
}

// FromDecimal returns a V for a decimal number truncating it toward zero to the precision of V.
func FromDecimal[V valueType[V]](d decimal.Decimal) V {
	var zero V
	n := zero.Frac()
	scaled := d.Mul(pow2(n)).Truncate(0).BigInt()
	return zero.fromWide(wideFromBig(scaled), n)
}

// FromString parses a decimal string, like "-12.375" or "1e3", into V.
func FromString[V valueType[V]](s string) (V, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		var zero V
		return zero, fmt.Errorf("parsing failed: %w", err)
	}
	return FromDecimal[V](d), nil
}

// MustFromString parses a decimal string into V and panics on error.
func MustFromString[V valueType[V]](s string) V {
	v, err := FromString[V](s)
	if err != nil {
		panic(err)
	}
	return v
}

// Decimal returns v as an exact decimal number.
func (v Value[T, P]) Decimal() decimal.Decimal {
	w := v.wide()
	coef := new(big.Int).SetUint64(w.Mag)
	if w.Neg {
		coef.Neg(coef)
	}
	n := v.Frac()
	if n <= 0 {
		return decimal.NewFromBigInt(coef.Lsh(coef, uint(-n)), 0)
	}
	// d / 2^n == d * 5^n / 10^n
	coef.Mul(coef, new(big.Int).Exp(bigFive, big.NewInt(int64(n)), nil))
	return decimal.NewFromBigInt(coef, int32(-n))
}

// String returns the exact decimal representation of v without trailing zeros.
func (v Value[T, P]) String() string {
	return v.Decimal().String()
}

// pow2 returns 2^n as a decimal.
func pow2(n int) decimal.Decimal {
	if n >= 0 {
		return decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), uint(n)), 0)
	}
	// 2^-k == 5^k / 10^k
	return decimal.NewFromBigInt(new(big.Int).Exp(bigFive, big.NewInt(int64(-n)), nil), int32(n))
}

// wideFromBig converts i into a Wide keeping the low 64 bits of the magnitude.
func wideFromBig(i *big.Int) mathutil.Wide {
	mag := new(big.Int).Abs(i)
	mag.And(mag, bigMaxUint64)
	return mathutil.Wide{Neg: i.Sign() < 0, Mag: mag.Uint64()}
}
