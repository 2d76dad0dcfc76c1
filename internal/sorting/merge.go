package sorting

// Merge sorts a in place with top-down merge sort. On equal keys the element
// from the left half is taken first, which makes the sort stable.
func Merge[T any](a Indexed[T], cmp Compare[T]) Stats {
	var stats Stats
	mergeSort(a, cmp, 0, a.Len()-1, &stats)
	return stats
}

func mergeSort[T any](a Indexed[T], cmp Compare[T], left, right int, stats *Stats) {
	if left >= right {
		return
	}

	mid := left + (right-left)/2
	mergeSort(a, cmp, left, mid, stats)
	mergeSort(a, cmp, mid+1, right, stats)
	merge(a, cmp, left, mid, right, stats)
}

func merge[T any](a Indexed[T], cmp Compare[T], left, mid, right int, stats *Stats) {
	leftBuf := make([]T, mid-left+1)
	rightBuf := make([]T, right-mid)

	for i := range leftBuf {
		leftBuf[i] = a.At(left + i)
	}
	for j := range rightBuf {
		rightBuf[j] = a.At(mid + 1 + j)
	}

	i, j, k := 0, 0, left
	for i < len(leftBuf) && j < len(rightBuf) {
		stats.Comparisons++
		if cmp(leftBuf[i], rightBuf[j]) <= 0 {
			a.Put(k, leftBuf[i])
			i++
		} else {
			a.Put(k, rightBuf[j])
			j++
		}
		stats.Swaps++
		k++
	}

	for ; i < len(leftBuf); i++ {
		a.Put(k, leftBuf[i])
		stats.Swaps++
		k++
	}
	for ; j < len(rightBuf); j++ {
		a.Put(k, rightBuf[j])
		stats.Swaps++
		k++
	}
}
