package metrics

// Sum adds value(item) over items.
func Sum[T any](items []T, value func(T) float64) float64 {
	total := 0.0
	for _, item := range items {
		total += value(item)
	}
	return total
}

// Count returns how many items satisfy pred. A nil pred counts everything.
func Count[T any](items []T, pred func(T) bool) int {
	if pred == nil {
		return len(items)
	}

	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// Average is 0 for an empty set.
func Average(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
