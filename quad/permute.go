package quad

import "iter"

// Permutations yields every ordering of 0..n-1 in lexicographic order.
// Each yielded slice is freshly allocated. n == 0 yields one empty ordering.
func Permutations(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if n < 0 {
			return
		}
		p := make([]int, n)
		for i := range p {
			p[i] = i
		}
		for {
			if !yield(append(make([]int, 0, n), p...)) {
				return
			}
			// Next permutation: find the rightmost ascent.
			i := n - 2
			for i >= 0 && p[i] >= p[i+1] {
				i--
			}
			if i < 0 {
				return
			}
			j := n - 1
			for p[j] <= p[i] {
				j--
			}
			p[i], p[j] = p[j], p[i]
			for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
				p[l], p[r] = p[r], p[l]
			}
		}
	}
}

// combinations calls fn with every ascending k-subset of from, in
// lexicographic order. It stops early when fn returns false and reports
// whether it ran to completion.
func combinations(from []int, k int, fn func([]int) bool) bool {
	pick := make([]int, 0, k)
	var rec func(start int) bool
	rec = func(start int) bool {
		if len(pick) == k {
			return fn(pick)
		}
		for i := start; i <= len(from)-(k-len(pick)); i++ {
			pick = append(pick, from[i])
			if !rec(i + 1) {
				return false
			}
			pick = pick[:len(pick)-1]
		}
		return true
	}
	return rec(0)
}
