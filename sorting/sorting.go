// Package sorting implements bubble, merge and heap sort over slices of
// opaque items using an external comparator.
//
// All three sort ascending and act only on the "greater" outcome of the
// comparator, so a comparator returning {-1, 0, 1} and one returning {0, 1}
// produce identical results. Only Mergesort is stable: Bubblesort swaps
// non-adjacent pairs and Heapsort reorders through the heap.
package sorting

import (
	"cmp"
	"fmt"

	"git.home.luguber.info/inful/collections/internal/foundation/errors"
	"git.home.luguber.info/inful/collections/internal/foundation/normalization"
)

// Comparator orders two items. A result greater than zero means a sorts
// after b; any other result means it does not.
type Comparator[T any] func(a, b T) int

// Ordered returns the natural ascending comparator for ordered types.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse inverts c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// Algorithm selects one of the sort routines.
type Algorithm int

const (
	AlgorithmBubble Algorithm = iota + 1
	AlgorithmMerge
	AlgorithmHeap
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmBubble:
		return "bubblesort"
	case AlgorithmMerge:
		return "mergesort"
	case AlgorithmHeap:
		return "heapsort"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

var algorithmNormalizer = normalization.NewNormalizer("sort algorithm", map[string]Algorithm{
	"bubble":     AlgorithmBubble,
	"bubblesort": AlgorithmBubble,
	"merge":      AlgorithmMerge,
	"mergesort":  AlgorithmMerge,
	"heap":       AlgorithmHeap,
	"heapsort":   AlgorithmHeap,
}, 0)

// ParseAlgorithm maps a name such as "merge" or "HeapSort" to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	return algorithmNormalizer.NormalizeWithError(name)
}

// Sort runs the selected algorithm on data in place.
func Sort[T any](alg Algorithm, data []T, c Comparator[T]) {
	switch alg {
	case AlgorithmBubble:
		Bubblesort(data, c)
	case AlgorithmMerge:
		Mergesort(data, c)
	case AlgorithmHeap:
		Heapsort(data, c)
	default:
		panic(errors.ValidationError("unknown sort algorithm").
			WithContext("algorithm", int(alg)).
			Build())
	}
}

// Bubblesort compares every pair (i, j>i) and swaps when data[i] is greater.
// Swaps are not limited to adjacent items, so equal items may be reordered.
func Bubblesort[T any](data []T, c Comparator[T]) {
	for i := 0; i < len(data); i++ {
		for j := i + 1; j < len(data); j++ {
			if c(data[i], data[j]) > 0 {
				data[i], data[j] = data[j], data[i]
			}
		}
	}
}

// Mergesort sorts data by top-down recursive halving. Each merge uses a
// temporary buffer sized to its range; ties are taken from the low half.
func Mergesort[T any](data []T, c Comparator[T]) {
	mergesortDivide(data, 0, len(data), c)
}

func mergesortDivide[T any](data []T, start, end int, c Comparator[T]) {
	if end-start < 2 {
		return
	}

	mid := start + (end-start)/2
	mergesortDivide(data, start, mid, c)
	mergesortDivide(data, mid, end, c)

	mergesortMerge(data, start, mid, end, c)
}

func mergesortMerge[T any](data []T, start, mid, end int, c Comparator[T]) {
	merged := make([]T, 0, end-start)

	low, high := start, mid
	for low < mid && high < end {
		if c(data[low], data[high]) > 0 {
			merged = append(merged, data[high])
			high++
		} else {
			merged = append(merged, data[low])
			low++
		}
	}
	merged = append(merged, data[low:mid]...)
	merged = append(merged, data[high:end]...)

	copy(data[start:end], merged)
}

// Heapsort builds a max-heap in place, then repeatedly moves the root to the
// end of the shrinking active range.
func Heapsort[T any](data []T, c Comparator[T]) {
	n := len(data)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, n, i, c)
	}

	for end := n - 1; end > 0; end-- {
		data[0], data[end] = data[end], data[0]
		siftDown(data, end, 0, c)
	}
}

// siftDown restores the heap property below idx within data[:length].
func siftDown[T any](data []T, length, idx int, c Comparator[T]) {
	for {
		largest := idx
		l := 2*idx + 1
		r := l + 1

		if l < length && c(data[l], data[largest]) > 0 {
			largest = l
		}
		if r < length && c(data[r], data[largest]) > 0 {
			largest = r
		}
		if largest == idx {
			return
		}

		data[idx], data[largest] = data[largest], data[idx]
		idx = largest
	}
}
