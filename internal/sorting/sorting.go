// Package sorting implements bubble, quick and merge sort directly on the
// skillmatch containers.
//
// Every sort works in place and returns Stats describing the work done.
// The result is informational; callers that only need the order may ignore it.
package sorting

import (
	"fmt"
	"strings"

	"github.com/spigell/skillmatch/internal/collection"
)

// Compare returns a negative number when a sorts before b, zero when equal
// and a positive number otherwise.
type Compare[T any] func(a, b T) int

// Reverse flips the direction of cmp.
func Reverse[T any](cmp Compare[T]) Compare[T] {
	return func(a, b T) int { return cmp(b, a) }
}

// Indexed is the random-access surface the array sorts need.
// collection.Array satisfies it.
type Indexed[T any] interface {
	Len() int
	At(i int) T
	Put(i int, v T)
	Swap(i, j int)
}

var _ Indexed[int] = (*collection.Array[int])(nil)

// Algorithm selects a sort implementation.
type Algorithm string

const (
	AlgorithmBubble Algorithm = "bubble"
	AlgorithmQuick  Algorithm = "quick"
	AlgorithmMerge  Algorithm = "merge"
)

// Algorithms lists the supported algorithms.
var Algorithms = []Algorithm{AlgorithmBubble, AlgorithmQuick, AlgorithmMerge}

// ParseAlgorithm accepts an algorithm name case-insensitively. An empty name
// selects merge sort.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return AlgorithmMerge, nil
	}
	for _, alg := range Algorithms {
		if string(alg) == name {
			return alg, nil
		}
	}
	return "", fmt.Errorf("unsupported sort algorithm: %s", name)
}

// Stats describes the work a sort performed. Quick and merge sort only fill
// Comparisons and Swaps (element writes for merge).
type Stats struct {
	Passes      int
	Comparisons int
	Swaps       int
}

// Sort dispatches to the selected algorithm.
func Sort[T any](a Indexed[T], cmp Compare[T], alg Algorithm) (Stats, error) {
	switch alg {
	case AlgorithmBubble:
		return Bubble(a, cmp), nil
	case AlgorithmQuick:
		return Quick(a, cmp), nil
	case AlgorithmMerge, "":
		return Merge(a, cmp), nil
	default:
		return Stats{}, fmt.Errorf("unsupported sort algorithm: %s", alg)
	}
}
