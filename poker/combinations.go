package poker

// Combinations returns every size-element subset of items in lexicographic
// index order. Each subset keeps the relative order of items. The result has
// exactly C(len(items), size) entries; it is empty when size is negative or
// larger than len(items).
func Combinations[T any](items []T, size int) [][]T {
	if size < 0 || size > len(items) {
		return nil
	}

	var out [][]T
	current := make([]T, 0, size)

	var backtrack func(start int)
	backtrack = func(start int) {
		if len(current) == size {
			out = append(out, append([]T(nil), current...))
			return
		}
		// Stop early once not enough items remain to fill the subset.
		for i := start; i <= len(items)-(size-len(current)); i++ {
			current = append(current, items[i])
			backtrack(i + 1)
			current = current[:len(current)-1]
		}
	}
	backtrack(0)

	return out
}

// Binomial returns C(n, k), or 0 when k is out of range.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}

// Hands returns every five-card hand that can be formed from cards.
func Hands(cards []Card) []Hand {
	subsets := Combinations(cards, HandSize)
	hands := make([]Hand, len(subsets))
	for i, subset := range subsets {
		copy(hands[i][:], subset)
	}
	return hands
}
