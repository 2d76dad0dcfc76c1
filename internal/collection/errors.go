package collection

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned (or panicked with, for the unchecked accessors)
// whenever an index falls outside [0, length).
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError carries the offending index and the collection length.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d, length %d", ErrIndexOutOfRange, e.Index, e.Length)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func checkIndex(i, length int) error {
	if i < 0 || i >= length {
		return &IndexError{Index: i, Length: length}
	}
	return nil
}
