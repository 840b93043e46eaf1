// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/avdva/dattatypes/internal/mathutil"
)

const defaultSqrtIterations = 32

var (
	// ErrInvalidArgument is returned, if an argument is out of the function's domain.
	ErrInvalidArgument = errors.New("invalid argument")
)

type sqrtOptions struct {
	iterations int
	logger     *slog.Logger
}

// SqrtOption configures Sqrt.
type SqrtOption func(*sqrtOptions)

// Iterations sets the maximum number of Newton-Raphson iterations. The default is 32.
func Iterations(n int) SqrtOption {
	return func(o *sqrtOptions) {
		o.iterations = n
	}
}

// Logger makes Sqrt log every iteration at the debug level.
func Logger(l *slog.Logger) SqrtOption {
	return func(o *sqrtOptions) {
		o.logger = l
	}
}

// Sqrt returns the square root of v calculated with the dampened Newton-Raphson method.
// The result is exact for perfect squares, and is within a couple of steps of v otherwise.
// An error wrapping ErrInvalidArgument is returned for negative values.
func Sqrt[T constraints.Integer, P Precision](v Value[T, P], opts ...SqrtOption) (Value[T, P], error) {
	if v.d < 0 {
		return v, fmt.Errorf("%w: square root of negative number %v", ErrInvalidArgument, v)
	}
	o := sqrtOptions{iterations: defaultSqrtIterations}
	for _, opt := range opts {
		opt(&o)
	}
	s := uint64(v.d)
	if s == 0 {
		return v, nil
	}
	n := v.Frac()
	x := s >> 1
	if x == 0 {
		x = 1
	}
	for i := 0; i < o.iterations; i++ {
		next := sqrtStep(x, s, n)
		if o.logger != nil {
			o.logger.Debug("sqrt iteration", "iter", i, "x", next)
		}
		if next == x {
			break
		}
		x = next
	}
	return v.withRaw(T(x)), nil
}

// MustSqrt returns the square root of v and panics if v is negative.
func MustSqrt[T constraints.Integer, P Precision](v Value[T, P], opts ...SqrtOption) Value[T, P] {
	result, err := Sqrt(v, opts...)
	if err != nil {
		panic(err)
	}
	return result
}

// SqrtOrSentinel returns the square root of v, or -1 if v is negative.
func SqrtOrSentinel[T constraints.Integer, P Precision](v Value[T, P], opts ...SqrtOption) Value[T, P] {
	result, err := Sqrt(v, opts...)
	if err != nil {
		return v.withRaw(v.scaled(-1))
	}
	return result
}

// sqrtStep returns ((x + 1) + (s * 2^n) / x) / 2 for the datum s.
func sqrtStep(x, s uint64, n int) uint64 {
	var hi, lo uint64
	if n >= 0 {
		hi, lo = mathutil.Shl128(0, s, uint(n))
		hi, lo = mathutil.Div128(hi, lo, x)
	} else {
		lo = mathutil.ShiftDiv(mathutil.Wide{Mag: s}, mathutil.Wide{Mag: x}, n).Mag
	}
	hi, lo = mathutil.Add128(hi, lo, x)
	hi, lo = mathutil.Add128(hi, lo, 1)
	hi, lo = mathutil.Shr128(hi, lo, 1)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
