// Package collection provides the two owning containers the rest of skillmatch
// is built on: a growable contiguous Array and a doubly-linked List.
package collection

import "iter"

// Sequence is the read-only view shared by Array and List.
type Sequence[T any] interface {
	Len() int
	Values() iter.Seq[T]
}

// Pusher is anything records can be appended to.
type Pusher[T any] interface {
	Push(v T)
}

// Cloner is implemented by element types that own nested data. Clone on a
// container calls it for every element so copies never share that data.
type Cloner[T any] interface {
	Clone() T
}

func cloneValue[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}
