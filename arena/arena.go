// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package arena implements an owning container with stable generation-tagged handles.
// Items are stored densely and may be moved inside the arena on removals and swaps.
// Handles stay valid across moves, because every handle points to a slot,
// and only the slot of a moved item is updated.
// A slot is reused after its item is removed, and the generation of the slot is incremented,
// so stale handles never resolve to a new item.
package arena

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

const freePos = math.MaxUint32

// Handle is a reference to an item of an Arena[T].
// The zero value is never valid.
type Handle[T any] struct {
	index uint32
	gen   uint32
}

// IsZero returns true, if h is the zero handle.
func (h Handle[T]) IsZero() bool {
	return h == Handle[T]{}
}

// String returns debug string representation.
func (h Handle[T]) String() string {
	return fmt.Sprintf("%d:%d", h.index, h.gen)
}

type slot struct {
	// pos is the position of the item in the dense storage, or freePos.
	pos uint32
	gen uint32
}

// Arena owns items of type T. The zero value is an empty arena.
// Pointers, returned by Get, are valid until the next Insert, Remove or Swap.
type Arena[T any] struct {
	items []T
	// owners[i] is the slot index of items[i].
	owners []uint32
	slots  []slot
	// free slot indices, reused in LIFO order.
	free []uint32
}

// New returns an arena with the space for capacity items.
func New[T any](capacity int) *Arena[T] {
	a := &Arena[T]{}
	a.Reserve(capacity)
	return a
}

// Reserve makes the arena able to hold n more items without reallocations.
func (a *Arena[T]) Reserve(n int) {
	if n <= 0 {
		return
	}
	a.items = slices.Grow(a.items, n)
	a.owners = slices.Grow(a.owners, n)
}

// Insert adds v to the arena and returns its handle.
func (a *Arena[T]) Insert(v T) Handle[T] {
	pos := uint32(len(a.items))
	a.items = append(a.items, v)
	idx := a.allocSlot()
	a.owners = append(a.owners, idx)
	s := &a.slots[idx]
	s.pos = pos
	return Handle[T]{index: idx, gen: s.gen}
}

func (a *Arena[T]) allocSlot() uint32 {
	var idx uint32
	if l := len(a.free); l > 0 {
		idx = a.free[l-1]
		a.free = a.free[:l-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot{pos: freePos})
	}
	s := &a.slots[idx]
	s.gen++
	if s.gen == 0 { // the zero generation is reserved for the zero handle.
		s.gen = 1
	}
	return idx
}

func (a *Arena[T]) lookup(h Handle[T]) (uint32, bool) {
	if int(h.index) >= len(a.slots) {
		return 0, false
	}
	s := a.slots[h.index]
	if s.gen != h.gen || s.pos == freePos {
		return 0, false
	}
	return s.pos, true
}

// Valid returns true, if h refers to an item of the arena.
func (a *Arena[T]) Valid(h Handle[T]) bool {
	_, ok := a.lookup(h)
	return ok
}

// Get returns a pointer to the item referred by h.
func (a *Arena[T]) Get(h Handle[T]) (*T, bool) {
	pos, ok := a.lookup(h)
	if !ok {
		return nil, false
	}
	return &a.items[pos], true
}

// MustGet returns a pointer to the item referred by h and panics, if h is not valid.
func (a *Arena[T]) MustGet(h Handle[T]) *T {
	v, ok := a.Get(h)
	if !ok {
		panic(fmt.Sprintf("invalid handle %v", h))
	}
	return v
}

// Remove removes the item referred by h. The last item is moved into its place.
// Returns false, if h is not valid.
func (a *Arena[T]) Remove(h Handle[T]) bool {
	pos, ok := a.lookup(h)
	if !ok {
		return false
	}
	last := uint32(len(a.items) - 1)
	if pos != last {
		a.items[pos] = a.items[last]
		moved := a.owners[last]
		a.owners[pos] = moved
		a.slots[moved].pos = pos
	}
	var zero T
	a.items[last] = zero
	a.items = a.items[:last]
	a.owners = a.owners[:last]
	a.slots[h.index].pos = freePos
	a.free = append(a.free, h.index)
	return true
}

// Swap exchanges the storage positions of two items. Both handles stay valid.
// Returns false, if any of the handles is not valid.
func (a *Arena[T]) Swap(h1, h2 Handle[T]) bool {
	p1, ok1 := a.lookup(h1)
	p2, ok2 := a.lookup(h2)
	if !ok1 || !ok2 {
		return false
	}
	a.items[p1], a.items[p2] = a.items[p2], a.items[p1]
	a.owners[p1], a.owners[p2] = a.owners[p2], a.owners[p1]
	a.slots[h1.index].pos, a.slots[h2.index].pos = p2, p1
	return true
}

// Len returns the number of items.
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// Each calls fn for every item in the storage order, until fn returns false.
// fn must not insert or remove items.
func (a *Arena[T]) Each(fn func(h Handle[T], v *T) bool) {
	for pos := range a.items {
		idx := a.owners[pos]
		if !fn(Handle[T]{index: idx, gen: a.slots[idx].gen}, &a.items[pos]) {
			return
		}
	}
}
