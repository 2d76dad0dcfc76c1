package collection

import "iter"

// Array is a growable contiguous sequence. Capacity starts at zero, becomes 1
// on the first push and doubles every time the buffer is full.
//
// The zero value is an empty array ready to use.
type Array[T any] struct {
	buf    []T
	length int
}

// NewArray returns an array holding the given values in order.
func NewArray[T any](values ...T) *Array[T] {
	a := &Array[T]{}
	for _, v := range values {
		a.Push(v)
	}
	return a
}

// Push appends v, growing the buffer when length reaches capacity.
func (a *Array[T]) Push(v T) {
	if a.length == len(a.buf) {
		a.grow()
	}
	a.buf[a.length] = v
	a.length++
}

func (a *Array[T]) grow() {
	newCap := 1
	if len(a.buf) > 0 {
		newCap = len(a.buf) * 2
	}

	buf := make([]T, newCap)
	copy(buf, a.buf[:a.length])
	a.buf = buf
}

// Get returns the element at i or an error wrapping ErrIndexOutOfRange.
func (a *Array[T]) Get(i int) (T, error) {
	if err := checkIndex(i, a.length); err != nil {
		var zero T
		return zero, err
	}
	return a.buf[i], nil
}

// Set replaces the element at i.
func (a *Array[T]) Set(i int, v T) error {
	if err := checkIndex(i, a.length); err != nil {
		return err
	}
	a.buf[i] = v
	return nil
}

// At returns the element at i and panics with an *IndexError when i is out of
// range, the same way slice indexing does. Algorithms use it on ranges they
// have already bounded by Len.
func (a *Array[T]) At(i int) T {
	if err := checkIndex(i, a.length); err != nil {
		panic(err)
	}
	return a.buf[i]
}

// Put is the panicking counterpart of Set.
func (a *Array[T]) Put(i int, v T) {
	if err := checkIndex(i, a.length); err != nil {
		panic(err)
	}
	a.buf[i] = v
}

// Swap exchanges the elements at i and j.
func (a *Array[T]) Swap(i, j int) {
	if err := checkIndex(i, a.length); err != nil {
		panic(err)
	}
	if err := checkIndex(j, a.length); err != nil {
		panic(err)
	}
	a.buf[i], a.buf[j] = a.buf[j], a.buf[i]
}

func (a *Array[T]) Len() int { return a.length }

// Cap reports the number of allocated slots.
func (a *Array[T]) Cap() int { return len(a.buf) }

func (a *Array[T]) IsEmpty() bool { return a.length == 0 }

// Clear drops the buffer and resets length and capacity to zero.
func (a *Array[T]) Clear() {
	a.buf = nil
	a.length = 0
}

// Clone returns an independent array. Elements implementing Cloner are
// deep-copied through it.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{}
	for i := 0; i < a.length; i++ {
		c.Push(cloneValue(a.buf[i]))
	}
	return c
}

// Values iterates the elements in index order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.length; i++ {
			if !yield(a.buf[i]) {
				return
			}
		}
	}
}

// ToSlice copies the elements into a new slice.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, a.length)
	copy(out, a.buf[:a.length])
	return out
}
