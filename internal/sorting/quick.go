package sorting

// Quick sorts a in place using Lomuto partitioning with the last element as
// pivot. Already sorted or reverse sorted input hits the O(n²) worst case.
func Quick[T any](a Indexed[T], cmp Compare[T]) Stats {
	var stats Stats
	quickSort(a, cmp, 0, a.Len()-1, &stats)
	return stats
}

func quickSort[T any](a Indexed[T], cmp Compare[T], low, high int, stats *Stats) {
	if low >= high {
		return
	}

	p := partition(a, cmp, low, high, stats)
	quickSort(a, cmp, low, p-1, stats)
	quickSort(a, cmp, p+1, high, stats)
}

func partition[T any](a Indexed[T], cmp Compare[T], low, high int, stats *Stats) int {
	pivot := a.At(high)
	i := low - 1

	for j := low; j < high; j++ {
		stats.Comparisons++
		if cmp(a.At(j), pivot) <= 0 {
			i++
			if i != j {
				a.Swap(i, j)
				stats.Swaps++
			}
		}
	}

	if i+1 != high {
		a.Swap(i+1, high)
		stats.Swaps++
	}
	return i + 1
}
