package sorting

import (
	"github.com/spigell/skillmatch/internal/collection"
)

// Bubble sorts a in place with adjacent swaps, stopping after the first pass
// that swaps nothing.
func Bubble[T any](a Indexed[T], cmp Compare[T]) Stats {
	var stats Stats
	n := a.Len()

	for i := 0; i < n-1; i++ {
		stats.Passes++
		swapped := false

		for j := 0; j < n-i-1; j++ {
			stats.Comparisons++
			if cmp(a.At(j), a.At(j+1)) > 0 {
				a.Swap(j, j+1)
				stats.Swaps++
				swapped = true
			}
		}

		if !swapped {
			break
		}
	}

	return stats
}

// BubbleList sorts l in place by relinking neighbouring nodes, so every
// *Node keeps its value. It stops after the first pass that swaps nothing.
func BubbleList[T any](l *collection.List[T], cmp Compare[T]) Stats {
	var stats Stats
	if l.Len() < 2 {
		return stats
	}

	// Nodes from end onwards are already in their final position.
	var end *collection.Node[T]
	for pass := 0; pass < l.Len()-1; pass++ {
		stats.Passes++
		swapped := false

		n := l.Front()
		for n.Next() != end {
			next := n.Next()
			stats.Comparisons++
			if cmp(n.Value, next.Value) > 0 {
				// Cannot fail: both nodes belong to l and next follows n.
				_ = l.SwapAdjacent(n, next)
				stats.Swaps++
				swapped = true
				continue
			}
			n = next
		}
		end = n

		if !swapped {
			break
		}
	}

	return stats
}
