// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package strutil converts integer datums of any width to and from text.
package strutil

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/avdva/dattatypes/internal/mathutil"
)

// AppendInt appends the decimal form of v to b.
func AppendInt[T constraints.Integer](b []byte, v T) []byte {
	if mathutil.IsSigned[T]() {
		return strconv.AppendInt(b, int64(v), 10)
	}
	return strconv.AppendUint(b, uint64(v), 10)
}

// FormatInt returns the decimal form of v.
func FormatInt[T constraints.Integer](v T) string {
	return string(AppendInt(nil, v))
}

// ParseInt parses s as an integer of type T.
// If base is 0, the base is implied by the prefix, like "0x".
// Values out of T's range are reported as errors.
func ParseInt[T constraints.Integer](s string, base int) (T, error) {
	if mathutil.IsSigned[T]() {
		i, err := strconv.ParseInt(s, base, mathutil.BitSize[T]())
		if err != nil {
			return 0, fmt.Errorf("parsing failed: %w", err)
		}
		return T(i), nil
	}
	u, err := strconv.ParseUint(s, base, mathutil.BitSize[T]())
	if err != nil {
		return 0, fmt.Errorf("parsing failed: %w", err)
	}
	return T(u), nil
}

// AppendList appends a JSON-style list of integers, like [1,-2,3], to b.
func AppendList[T constraints.Integer](b []byte, list []T) []byte {
	b = append(b, '[')
	for i, v := range list {
		if i > 0 {
			b = append(b, ',')
		}
		b = AppendInt(b, v)
	}
	return append(b, ']')
}

// ParseList parses decimal integers. The position of a bad element is reported.
func ParseList[T constraints.Integer](items []string, base int) ([]T, error) {
	result := make([]T, 0, len(items))
	for i, item := range items {
		v, err := ParseInt[T](item, base)
		if err != nil {
			return nil, fmt.Errorf("%w at pos %d", err, i)
		}
		result = append(result, v)
	}
	return result, nil
}
