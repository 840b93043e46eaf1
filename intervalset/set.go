// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package intervalset implements a set of integers, stored as a flat sorted list
// of disjoint half-open intervals.
//
//	Data = [a0, b0, a1, b1, ...], a0 < b0 < a1 < b1 < ...
//
// represents the union of [a0, b0), [a1, b1), ...
// Touching intervals are always merged, so the representation of a set is unique.
// A value e is in the set if the number of bounds, that are not greater than e, is odd.
package intervalset

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

var (
	// ErrMalformed is returned, if the bounds violate the ordering invariant.
	ErrMalformed = errors.New("malformed interval set")
)

// Interval is a half-open interval [Lo, Hi).
type Interval[E constraints.Integer] struct {
	Lo, Hi E
}

// Set is a set of integer-like values. The zero value is an empty set.
// The maximum value of E can not be a member of a set.
type Set[E constraints.Integer] struct {
	// Data holds the bounds of the intervals. It is exported for serialization,
	// and must not be modified directly.
	Data []E
}

// New returns a set with the given bounds. The bounds are not validated,
// call Validate, if data comes from an untrusted source.
func New[E constraints.Integer](data []E) *Set[E] {
	return &Set[E]{Data: data}
}

// Insert adds e to the set.
// The maximum value of E is never added, see InsertRange.
func (s *Set[E]) Insert(e E) {
	s.InsertRange(e, e)
}

// InsertRange adds all values from the inclusive range [lo, hi] to the set.
// Empty ranges, where lo > hi, are ignored.
// If hi is the maximum value of E, the range is clipped to [lo, hi-1],
// as the half-open bound hi+1 is not representable in E.
func (s *Set[E]) InsertRange(lo, hi E) {
	if end, ok := halfOpen(lo, hi); ok {
		s.insert(lo, end)
	}
}

// Erase removes e from the set.
func (s *Set[E]) Erase(e E) {
	s.EraseRange(e, e)
}

// EraseRange removes all values from the inclusive range [lo, hi] from the set.
// Empty ranges, where lo > hi, are ignored. hi is clipped as in InsertRange.
func (s *Set[E]) EraseRange(lo, hi E) {
	if end, ok := halfOpen(lo, hi); ok {
		s.erase(lo, end)
	}
}

func (s *Set[E]) insert(lo, hi E) {
	d := s.Data
	n := len(d)
	switch {
	case n == 0 || hi < d[0]:
		s.Data = slices.Insert(d, 0, lo, hi)
		return
	case lo > d[n-1]:
		s.Data = append(d, lo, hi)
		return
	}
	i, j := lowerBound(d, lo), upperBound(d, hi)
	// a bound at an odd position is inside an existing interval and is absorbed by it.
	var buf [2]E
	repl := buf[:0]
	if i%2 == 0 {
		repl = append(repl, lo)
	}
	if j%2 == 0 {
		repl = append(repl, hi)
	}
	s.Data = slices.Replace(d, i, j, repl...)
}

func (s *Set[E]) erase(lo, hi E) {
	d := s.Data
	n := len(d)
	if n == 0 || hi <= d[0] || lo >= d[n-1] {
		return
	}
	i, j := lowerBound(d, lo), upperBound(d, hi)
	// a bound at an odd position splits an existing interval.
	var buf [2]E
	repl := buf[:0]
	if i%2 == 1 {
		repl = append(repl, lo)
	}
	if j%2 == 1 {
		repl = append(repl, hi)
	}
	s.Data = slices.Replace(d, i, j, repl...)
}

// Check returns true, if e is in the set.
func (s *Set[E]) Check(e E) bool {
	return upperBound(s.Data, e)%2 == 1
}

// Size returns the number of values in the set.
func (s *Set[E]) Size() uint64 {
	var size uint64
	for i := 0; i+1 < len(s.Data); i += 2 {
		size += uint64(s.Data[i+1]) - uint64(s.Data[i])
	}
	return size
}

// Empty returns true, if the set has no values.
func (s *Set[E]) Empty() bool {
	return len(s.Data) == 0
}

// Clear removes all the values keeping the allocated memory.
func (s *Set[E]) Clear() {
	s.Data = s.Data[:0]
}

// Reserve makes the set able to hold n intervals without reallocations.
func (s *Set[E]) Reserve(n int) {
	if need := 2*n - len(s.Data); need > 0 {
		s.Data = slices.Grow(s.Data, need)
	}
}

// ShrinkToFit releases unused memory.
func (s *Set[E]) ShrinkToFit() {
	if len(s.Data) == cap(s.Data) {
		return
	}
	if len(s.Data) == 0 {
		s.Data = nil
		return
	}
	d := make([]E, len(s.Data))
	copy(d, s.Data)
	s.Data = d
}

// Len returns the number of intervals.
func (s *Set[E]) Len() int {
	return len(s.Data) / 2
}

// Intervals returns the intervals of the set in ascending order.
func (s *Set[E]) Intervals() []Interval[E] {
	result := make([]Interval[E], 0, s.Len())
	for i := 0; i+1 < len(s.Data); i += 2 {
		result = append(result, Interval[E]{Lo: s.Data[i], Hi: s.Data[i+1]})
	}
	return result
}

// Equal returns true, if both sets have the same values.
func (s *Set[E]) Equal(other *Set[E]) bool {
	return slices.Equal(s.Data, other.Data)
}

// Clone returns a deep copy of s.
func (s *Set[E]) Clone() *Set[E] {
	return &Set[E]{Data: slices.Clone(s.Data)}
}

// Validate checks, that the bounds are strictly increasing, and their number is even.
func (s *Set[E]) Validate() error {
	if len(s.Data)%2 != 0 {
		return fmt.Errorf("%w: odd number of bounds %d", ErrMalformed, len(s.Data))
	}
	for i := 1; i < len(s.Data); i++ {
		if s.Data[i] <= s.Data[i-1] {
			return fmt.Errorf("%w: bound %v at pos %d is not greater than %v", ErrMalformed, s.Data[i], i, s.Data[i-1])
		}
	}
	return nil
}

// String returns the intervals, like "{[-4, 0) [1, 5)}".
func (s Set[E]) String() string {
	var builder strings.Builder
	builder.WriteRune('{')
	for i := 0; i+1 < len(s.Data); i += 2 {
		if i > 0 {
			builder.WriteRune(' ')
		}
		fmt.Fprintf(&builder, "[%v, %v)", s.Data[i], s.Data[i+1])
	}
	builder.WriteRune('}')
	return builder.String()
}

// halfOpen converts the inclusive upper bound hi into an exclusive one.
// If hi is the maximum value of E, the range is clipped to [lo, hi).
func halfOpen[E constraints.Integer](lo, hi E) (E, bool) {
	end := hi + 1
	if end < hi {
		end = hi
	}
	return end, lo < end
}

// lowerBound returns the index of the first bound, that is >= e.
func lowerBound[E constraints.Integer](d []E, e E) int {
	i, _ := slices.BinarySearch(d, e)
	return i
}

// upperBound returns the index of the first bound, that is > e.
func upperBound[E constraints.Integer](d []E, e E) int {
	i, found := slices.BinarySearch(d, e)
	if found {
		i++
	}
	return i
}
