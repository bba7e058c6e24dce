/*
Package suffix builds a suffix array with its LCP array over a byte sequence
and answers exact substring queries against it.

The text is extended with one virtual terminator whose rank sits below every
byte value. It never appears in the input, so any byte (0x00 included) is a
legal character, and the terminator suffix is always SA()[0].

Construction is prefix doubling with one comparison sort per round:

	arr := suffix.Build("GATTACA")
	arr.Search("ATT") // [1]

The LCP array is built with Kasai's algorithm in O(n).
*/
package suffix

import (
	"slices"
)

// Array is an immutable suffix array over text plus the terminator.
type Array struct {
	text string
	sa   []int
	lcp  []int
}

// rankKey is the (first, second) rank pair a suffix is sorted by in one doubling round.
type rankKey struct {
	first  int
	second int
}

// Build constructs the suffix array and LCP array of text.
func Build(text string) *Array {
	a := &Array{text: text}
	a.sa = buildSA(text)
	a.lcp = buildLCP(text, a.sa)
	return a
}

// buildSA sorts all n+1 suffixes (terminator included) by prefix doubling.
func buildSA(text string) []int {
	n := len(text) + 1
	order := make([]int, n)
	rank := make([]int, n)
	next := make([]int, n)
	keys := make([]rankKey, n)

	for i := 0; i < n-1; i++ {
		order[i] = i
		rank[i] = int(text[i]) + 1
	}
	// terminator
	order[n-1] = n - 1
	rank[n-1] = 0

	for l := 1; ; l <<= 1 {
		// keys are fixed before sorting; the comparator never reads rank
		for i := 0; i < n; i++ {
			second := -1
			if i+l < n {
				second = rank[i+l]
			}
			keys[i] = rankKey{first: rank[i], second: second}
		}

		slices.SortFunc(order, func(x, y int) int {
			kx, ky := keys[x], keys[y]
			if kx.first != ky.first {
				return kx.first - ky.first
			}
			return kx.second - ky.second
		})

		next[order[0]] = 0
		for i := 1; i < n; i++ {
			prev, cur := order[i-1], order[i]
			next[cur] = next[prev]
			if keys[prev] != keys[cur] {
				next[cur]++
			}
		}
		rank, next = next, rank

		if rank[order[n-1]] == n-1 || l >= n {
			break
		}
	}
	return order
}

// buildLCP runs Kasai over the terminator-extended text. The terminator never
// matches, so character comparisons stay inside text.
func buildLCP(text string, sa []int) []int {
	n := len(sa)
	m := len(text)
	lcp := make([]int, n)
	inv := make([]int, n)
	for i, pos := range sa {
		inv[pos] = i
	}

	h := 0
	for i := 0; i < n; i++ {
		r := inv[i]
		if r == 0 {
			h = 0
			continue
		}
		j := sa[r-1]
		for i+h < m && j+h < m && text[i+h] == text[j+h] {
			h++
		}
		lcp[r] = h
		if h > 0 {
			h--
		}
	}
	return lcp
}

// Len returns the length of the indexed text, terminator excluded.
func (a *Array) Len() int {
	return len(a.text)
}

// SA returns a copy of the suffix array, terminator position included.
func (a *Array) SA() []int {
	return slices.Clone(a.sa)
}

// LCP returns a copy of the LCP array; LCP()[i] is the common prefix length
// of the suffixes at SA()[i] and SA()[i-1], and LCP()[0] is 0.
func (a *Array) LCP() []int {
	return slices.Clone(a.lcp)
}

// LongestRepeat returns the length of the longest substring occurring at least
// twice, and the offset of one of its occurrences. Length is 0 when no byte repeats.
func (a *Array) LongestRepeat() (offset, length int) {
	for i := 1; i < len(a.lcp); i++ {
		if a.lcp[i] > length {
			length = a.lcp[i]
			offset = min(a.sa[i], a.sa[i-1])
		}
	}
	return offset, length
}
