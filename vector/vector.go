// Package vector provides a growable, indexed container with explicit
// capacity doubling.
//
// The vector stores values of T (typically pointers owned by the caller) in a
// buffer it manages itself rather than relying on append's growth policy, so
// capacity after any sequence of operations is deterministic.
package vector

import (
	"iter"

	"git.home.luguber.info/inful/collections/internal/contract"
	"git.home.luguber.info/inful/collections/internal/foundation"
	"git.home.luguber.info/inful/collections/internal/foundation/errors"
)

// Vector is a contiguous sequence of items. len(data) is the capacity; items
// occupy data[:length].
type Vector[T any] struct {
	data     []T
	length   int
	consumed bool
}

// New returns an empty vector with room for capacity items.
func New[T any](capacity int) *Vector[T] {
	contract.Positive("capacity", capacity)
	return &Vector[T]{data: make([]T, capacity)}
}

// Len returns the number of items.
func (v *Vector[T]) Len() int {
	v.live()
	return v.length
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	v.live()
	return len(v.data)
}

// Get returns the item at idx.
func (v *Vector[T]) Get(idx int) T {
	v.live()
	contract.Index(idx, v.length)
	return v.data[idx]
}

// First returns the item at index 0, or None when the vector is empty.
func (v *Vector[T]) First() foundation.Option[T] {
	v.live()
	if v.length == 0 {
		return foundation.None[T]()
	}
	return foundation.Some(v.data[0])
}

// Last returns the item at index Len()-1, or None when the vector is empty.
func (v *Vector[T]) Last() foundation.Option[T] {
	v.live()
	if v.length == 0 {
		return foundation.None[T]()
	}
	return foundation.Some(v.data[v.length-1])
}

// Append adds item at the end, doubling capacity first when full.
func (v *Vector[T]) Append(item T) {
	v.live()
	if v.length == len(v.data) {
		grown := make([]T, 2*len(v.data))
		copy(grown, v.data[:v.length])
		v.data = grown
	}
	v.data[v.length] = item
	v.length++
}

// Insert places item at idx, shifting [idx, Len()) one slot right. idx may
// equal Len(). When full, the doubled buffer is filled in a single pass with
// item already spliced in.
func (v *Vector[T]) Insert(item T, idx int) {
	v.live()
	contract.Position(idx, v.length)

	if v.length == len(v.data) {
		grown := make([]T, 2*len(v.data))
		copy(grown, v.data[:idx])
		grown[idx] = item
		copy(grown[idx+1:], v.data[idx:v.length])
		v.data = grown
	} else {
		copy(v.data[idx+1:v.length+1], v.data[idx:v.length])
		v.data[idx] = item
	}
	v.length++
}

// Concatenate moves b's items onto the end of a and returns a. a's buffer is
// reallocated to twice the combined length (at least one slot, so an empty
// result can still grow). b is consumed: its storage is
// released and any further use of it panics.
func Concatenate[T any](a, b *Vector[T]) *Vector[T] {
	a.live()
	b.live()
	contract.Require(a != b, "cannot concatenate a vector with itself")

	total := a.length + b.length
	merged := make([]T, max(2*total, 1))
	copy(merged, a.data[:a.length])
	copy(merged[a.length:], b.data[:b.length])

	a.data = merged
	a.length = total

	b.data = nil
	b.length = 0
	b.consumed = true

	return a
}

// Remove deletes and returns the item at idx, shifting [idx+1, Len()) left.
func (v *Vector[T]) Remove(idx int) T {
	v.live()
	contract.Index(idx, v.length)

	item := v.data[idx]
	copy(v.data[idx:v.length-1], v.data[idx+1:v.length])
	v.length--

	var zero T
	v.data[v.length] = zero
	return item
}

// Pop removes and returns the last item.
func (v *Vector[T]) Pop() T {
	v.live()
	contract.Require(v.length > 0, "pop from empty vector", "length", v.length)

	v.length--
	item := v.data[v.length]

	var zero T
	v.data[v.length] = zero
	return item
}

// Slice returns the live items as a slice aliasing the vector's buffer. It
// lets in-place algorithms (see package sorting) operate on the backing
// storage. The slice is invalidated by any growth of the vector.
func (v *Vector[T]) Slice() []T {
	v.live()
	return v.data[:v.length:v.length]
}

// Iterator returns an iterator positioned before the first item.
func (v *Vector[T]) Iterator() *Iterator[T] {
	v.live()
	return &Iterator[T]{vector: v}
}

// All returns a sequence over the items in index order. The vector must not
// be mutated while the sequence is being ranged over.
func (v *Vector[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

func (v *Vector[T]) live() {
	if v.consumed {
		panic(errors.StateError("vector was consumed by Concatenate").Build())
	}
}

// Iterator walks a vector in index order. It is not restartable and is
// invalidated by structural changes to the vector.
type Iterator[T any] struct {
	vector *Vector[T]
	idx    int
}

// Next returns the next item, or the zero value and false once exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.idx >= it.vector.Len() {
		var zero T
		return zero, false
	}
	item := it.vector.data[it.idx]
	it.idx++
	return item, true
}
