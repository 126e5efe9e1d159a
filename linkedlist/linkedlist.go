// Package linkedlist provides a singly linked list of caller-built nodes.
//
// The list keeps no tail pointer: Last, Append and Pop walk the chain and are
// O(n). Insert at index 0 is O(1).
package linkedlist

import (
	"iter"

	"git.home.luguber.info/inful/collections/internal/contract"
)

// Node is one link in a List. Data is the caller's item; the list never
// inspects it.
type Node[T any] struct {
	next *Node[T]
	Data T
}

// NewNode returns an unlinked node holding data.
func NewNode[T any](data T) *Node[T] {
	return &Node[T]{Data: data}
}

// Next returns the following node, or nil at the end of the chain.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// List is a chain of nodes starting at head. length always equals the number
// of nodes reachable from head.
type List[T any] struct {
	head   *Node[T]
	length int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of nodes.
func (l *List[T]) Len() int {
	return l.length
}

// Get returns the node at idx by walking from the head.
func (l *List[T]) Get(idx int) *Node[T] {
	contract.Index(idx, l.length)
	return l.nodeAt(idx)
}

// First returns the head node, or nil when the list is empty.
func (l *List[T]) First() *Node[T] {
	return l.head
}

// Last returns the tail node, or nil when the list is empty.
func (l *List[T]) Last() *Node[T] {
	curr := l.head
	if curr == nil {
		return nil
	}
	for curr.next != nil {
		curr = curr.next
	}
	return curr
}

// Append links node after the current tail. Any chain already hanging off
// node is dropped; node becomes the new tail.
func (l *List[T]) Append(node *Node[T]) {
	contract.Require(node != nil, "node must not be nil")

	node.next = nil
	if l.head == nil {
		l.head = node
	} else {
		l.Last().next = node
	}
	l.length++
}

// Insert links node so that it ends up at position idx. idx may equal Len().
func (l *List[T]) Insert(node *Node[T], idx int) {
	contract.Require(node != nil, "node must not be nil")
	contract.Position(idx, l.length)

	if idx == 0 {
		node.next = l.head
		l.head = node
		l.length++
		return
	}

	prev := l.nodeAt(idx - 1)
	node.next = prev.next
	prev.next = node
	l.length++
}

// Concatenate links b's nodes after a's tail and returns a. Ownership of b's
// nodes moves to a; b is left empty.
func Concatenate[T any](a, b *List[T]) *List[T] {
	contract.Require(a != b, "cannot concatenate a list with itself")

	if a.head == nil {
		a.head = b.head
	} else {
		a.Last().next = b.head
	}
	a.length += b.length

	b.head = nil
	b.length = 0

	return a
}

// Remove unlinks and returns the node at idx. The returned node's link is
// cleared.
func (l *List[T]) Remove(idx int) *Node[T] {
	contract.Index(idx, l.length)

	var node *Node[T]
	if idx == 0 {
		node = l.head
		l.head = node.next
	} else {
		prev := l.nodeAt(idx - 1)
		node = prev.next
		prev.next = node.next
	}
	node.next = nil
	l.length--

	return node
}

// Pop unlinks and returns the tail node, or nil when the list is empty.
func (l *List[T]) Pop() *Node[T] {
	switch l.length {
	case 0:
		return nil
	case 1:
		node := l.head
		l.head = nil
		l.length = 0
		return node
	}

	penultimate := l.nodeAt(l.length - 2)
	node := penultimate.next
	penultimate.next = nil
	l.length--

	return node
}

// Iterator returns an iterator positioned before the head.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{next: l.head}
}

// All returns a sequence over node data in link order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.Data) {
				return
			}
		}
	}
}

func (l *List[T]) nodeAt(idx int) *Node[T] {
	curr := l.head
	for ; idx > 0; idx-- {
		curr = curr.next
	}
	return curr
}

// Iterator walks a list in link order. It is not restartable and is
// invalidated by structural changes to the list.
type Iterator[T any] struct {
	next *Node[T]
}

// Next returns the next node, or nil once exhausted.
func (it *Iterator[T]) Next() *Node[T] {
	node := it.next
	if node == nil {
		return nil
	}
	it.next = node.next
	return node
}
