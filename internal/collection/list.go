package collection

import (
	"errors"
	"iter"
)

var (
	// ErrForeignNode is returned when a node does not belong to the list it is used with.
	ErrForeignNode = errors.New("node does not belong to this list")
	// ErrNotAdjacent is returned by SwapAdjacent when b is not a's successor.
	ErrNotAdjacent = errors.New("nodes are not adjacent")
)

// Node is a single element of a List. Only the owning list mutates its links.
type Node[T any] struct {
	Value T

	next *Node[T]
	prev *Node[T]
	list *List[T]
}

// Next returns the following node or nil at the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the preceding node or nil at the head.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// List is a doubly-linked sequence. head and tail point into the chain the
// list owns; head == nil exactly when the list is empty.
//
// The zero value is an empty list ready to use.
type List[T any] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
}

// NewList returns a list holding the given values in order.
func NewList[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// PushBack appends v in O(1) and returns its node.
func (l *List[T]) PushBack(v T) *Node[T] {
	n := &Node[T]{Value: v, list: l}
	if l.tail == nil {
		l.head = n
		l.tail = n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.length++
	return n
}

// Push is PushBack without the node result, so List satisfies Pusher.
func (l *List[T]) Push(v T) {
	l.PushBack(v)
}

func (l *List[T]) Front() *Node[T] { return l.head }

func (l *List[T]) Back() *Node[T] { return l.tail }

func (l *List[T]) Len() int { return l.length }

func (l *List[T]) IsEmpty() bool { return l.length == 0 }

// NodeAt walks from the head to position i.
func (l *List[T]) NodeAt(i int) (*Node[T], error) {
	if err := checkIndex(i, l.length); err != nil {
		return nil, err
	}
	n := l.head
	for k := 0; k < i; k++ {
		n = n.next
	}
	return n, nil
}

// Get returns the value at position i in O(i).
func (l *List[T]) Get(i int) (T, error) {
	n, err := l.NodeAt(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.Value, nil
}

// Set replaces the value at position i in O(i).
func (l *List[T]) Set(i int, v T) error {
	n, err := l.NodeAt(i)
	if err != nil {
		return err
	}
	n.Value = v
	return nil
}

// SwapAdjacent exchanges the positions of a and its successor b by relinking
// the chain. Payloads stay in their nodes, so node identity follows the value.
func (l *List[T]) SwapAdjacent(a, b *Node[T]) error {
	if a == nil || b == nil || a.list != l || b.list != l {
		return ErrForeignNode
	}
	if a.next != b {
		return ErrNotAdjacent
	}

	before := a.prev
	after := b.next

	// before <-> b <-> a <-> after
	b.prev = before
	b.next = a
	a.prev = b
	a.next = after

	if before != nil {
		before.next = b
	} else {
		l.head = b
	}
	if after != nil {
		after.prev = a
	} else {
		l.tail = a
	}

	return nil
}

// Clear unlinks every node and empties the list.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		n.prev = nil
		n.list = nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.length = 0
}

// Clone duplicates the chain node by node, preserving order.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{}
	for n := l.head; n != nil; n = n.next {
		c.PushBack(cloneValue(n.Value))
	}
	return c
}

// Values iterates from head to tail.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Nodes iterates the nodes from head to tail. The iteration must not be used
// while the chain is being relinked.
func (l *List[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n) {
				return
			}
		}
	}
}

// ToSlice copies the values into a new slice, head first.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.Value)
	}
	return out
}
