package linkedlist

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// chain returns the nodes reachable from l.head, failing if it disagrees
// with l.length.
func chain[T any](t *testing.T, l *List[T]) []*Node[T] {
	t.Helper()
	var out []*Node[T]
	for n := l.head; n != nil; n = n.next {
		out = append(out, n)
		require.LessOrEqual(t, len(out), l.length, "chain longer than length")
	}
	require.Len(t, out, l.length)
	return out
}

func nodes(n int) []*Node[int] {
	out := make([]*Node[int], n)
	for i := range out {
		out[i] = NewNode(i + 1)
	}
	return out
}

func TestNew(t *testing.T) {
	l := New[int]()

	require.Equal(t, 0, l.Len())
	require.Nil(t, l.head)
	require.Nil(t, l.First())
	require.Nil(t, l.Last())
}

func TestNewNode(t *testing.T) {
	n := NewNode("x")

	require.Nil(t, n.Next())
	require.Equal(t, "x", n.Data)
}

func TestAppend(t *testing.T) {
	ns := nodes(3)
	l := New[int]()

	l.Append(ns[0])
	require.Equal(t, 1, l.Len())
	require.Same(t, ns[0], l.head)

	l.Append(ns[1])
	l.Append(ns[2])
	require.Equal(t, ns, chain(t, l))
	require.Same(t, ns[2], l.Last())
}

func TestAppend_DropsStaleLink(t *testing.T) {
	ns := nodes(2)
	ns[0].next = ns[1]

	l := New[int]()
	l.Append(ns[0])

	require.Equal(t, 1, l.Len())
	require.Nil(t, ns[0].Next())
}

func TestInsert(t *testing.T) {
	ns := nodes(4)
	l := New[int]()

	// Insert at start of empty list
	l.Insert(ns[0], 0)
	require.Equal(t, []*Node[int]{ns[0]}, chain(t, l))

	// Insert at start
	l.Insert(ns[1], 0)
	require.Equal(t, []*Node[int]{ns[1], ns[0]}, chain(t, l))

	// Insert at middle
	l.Insert(ns[2], 1)
	require.Equal(t, []*Node[int]{ns[1], ns[2], ns[0]}, chain(t, l))

	// Insert at end
	l.Insert(ns[3], 3)
	require.Equal(t, []*Node[int]{ns[1], ns[2], ns[0], ns[3]}, chain(t, l))
}

func TestInsert_OutOfRangePanics(t *testing.T) {
	l := New[int]()
	require.PanicsWithError(t, "[validation:fatal] insert position out of range index=1 length=0", func() {
		l.Insert(NewNode(1), 1)
	})
	require.Panics(t, func() { l.Insert(nil, 0) })
	require.Panics(t, func() { l.Append(nil) })
}

func TestGet(t *testing.T) {
	ns := nodes(3)
	l := New[int]()
	for _, n := range ns {
		l.Append(n)
	}

	for i, n := range ns {
		require.Same(t, n, l.Get(i))
	}
	require.PanicsWithError(t, "[validation:fatal] index out of range index=3 length=3", func() {
		l.Get(3)
	})
}

func TestFirstLast(t *testing.T) {
	ns := nodes(3)
	l := New[int]()

	l.Append(ns[0])
	require.Same(t, ns[0], l.First())
	require.Same(t, ns[0], l.Last())

	l.Append(ns[1])
	l.Append(ns[2])
	require.Same(t, ns[0], l.First())
	require.Same(t, ns[2], l.Last())
}

func TestConcatenate(t *testing.T) {
	ns := nodes(6)
	a := New[int]()
	b := New[int]()
	for _, n := range ns[:3] {
		a.Append(n)
	}
	for _, n := range ns[3:] {
		b.Append(n)
	}

	got := Concatenate(a, b)

	require.Same(t, a, got)
	require.Equal(t, ns, chain(t, a))
	require.Equal(t, 0, b.Len())
	require.Nil(t, b.head)
}

func TestConcatenate_EmptyA(t *testing.T) {
	ns := nodes(2)
	a := New[int]()
	b := New[int]()
	b.Append(ns[0])
	b.Append(ns[1])

	Concatenate(a, b)
	require.Equal(t, ns, chain(t, a))

	Concatenate(a, New[int]())
	require.Equal(t, ns, chain(t, a))
}

func TestConcatenate_SelfPanics(t *testing.T) {
	l := New[int]()
	require.Panics(t, func() { Concatenate(l, l) })
}

func TestRemove(t *testing.T) {
	ns := nodes(3)
	l := New[int]()
	for _, n := range ns {
		l.Append(n)
	}

	// Remove from middle
	removed := l.Remove(1)
	require.Same(t, ns[1], removed)
	require.Nil(t, removed.Next())
	require.Equal(t, []*Node[int]{ns[0], ns[2]}, chain(t, l))

	// Remove from end
	require.Same(t, ns[2], l.Remove(1))
	require.Equal(t, []*Node[int]{ns[0]}, chain(t, l))

	// Remove from start
	require.Same(t, ns[0], l.Remove(0))
	require.Empty(t, chain(t, l))

	require.Panics(t, func() { l.Remove(0) })
}

func TestPop(t *testing.T) {
	ns := nodes(3)
	l := New[int]()
	for _, n := range ns {
		l.Append(n)
	}

	require.Same(t, ns[2], l.Pop())
	require.Equal(t, []*Node[int]{ns[0], ns[1]}, chain(t, l))
	require.Nil(t, ns[1].Next())

	require.Same(t, ns[1], l.Pop())
	require.Same(t, ns[0], l.Pop())
	require.Equal(t, 0, l.Len())
	require.Nil(t, l.head)

	require.Nil(t, l.Pop())
}

func TestIterator(t *testing.T) {
	ns := nodes(3)
	l := New[int]()
	for _, n := range ns {
		l.Append(n)
	}

	it := l.Iterator()
	for _, n := range ns {
		require.Same(t, n, it.Next())
	}
	require.Nil(t, it.Next())
	require.Nil(t, it.Next())

	require.Nil(t, New[int]().Iterator().Next())
}

func TestAll(t *testing.T) {
	l := New[string]()
	for _, s := range []string{"x", "y", "z"} {
		l.Append(NewNode(s))
	}

	require.Equal(t, []string{"x", "y", "z"}, slices.Collect(l.All()))
}

func TestMixedOperations_MatchSlice(t *testing.T) {
	l := New[int]()
	var model []int

	for i := 0; i < 20; i++ {
		switch {
		case i%5 == 4 && len(model) > 0:
			idx := i % len(model)
			require.Equal(t, model[idx], l.Remove(idx).Data)
			model = slices.Delete(model, idx, idx+1)
		case i%3 == 0:
			idx := i % (len(model) + 1)
			l.Insert(NewNode(i), idx)
			model = slices.Insert(model, idx, i)
		default:
			l.Append(NewNode(i))
			model = append(model, i)
		}
		require.Equal(t, model, slices.Collect(l.All()))
		require.Len(t, chain(t, l), len(model))
	}
}
