package suffix

import (
	"sort"
)

// Search returns the ascending offsets in the original text where pattern occurs.
// An empty pattern, or one longer than the text, has no occurrences.
func (a *Array) Search(pattern string) []int {
	lo, hi := a.bounds(pattern)
	if lo < 0 {
		return []int{}
	}

	res := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		// the terminator suffix can never equal a non-empty pattern,
		// but keep it out of the results regardless
		if pos := a.sa[i]; pos < len(a.text) {
			res = append(res, pos)
		}
	}
	sort.Ints(res)
	return res
}

// Count returns the number of occurrences of pattern.
func (a *Array) Count(pattern string) int {
	lo, hi := a.bounds(pattern)
	if lo < 0 {
		return 0
	}
	return hi - lo + 1
}

// bounds returns the first and last SA index whose suffix starts with pattern,
// or (-1, -1) when there is none.
func (a *Array) bounds(pattern string) (int, int) {
	if len(pattern) == 0 || len(pattern) > len(a.text) {
		return -1, -1
	}
	lo := a.lowerBound(pattern)
	if lo < 0 {
		return -1, -1
	}
	return lo, a.upperBound(pattern)
}

// compare reports how the suffix at pos orders against pattern, looking at no
// more than len(pattern) bytes: 0 when pattern is a prefix of the suffix,
// negative when the suffix sorts first, positive otherwise.
func (a *Array) compare(pos int, pattern string) int {
	for i := 0; i < len(pattern); i++ {
		if pos+i >= len(a.text) {
			// reached the terminator, which sorts below every byte
			return -1
		}
		sc, pc := a.text[pos+i], pattern[i]
		if sc != pc {
			return int(sc) - int(pc)
		}
	}
	return 0
}

func (a *Array) lowerBound(pattern string) int {
	low, high, ans := 0, len(a.sa)-1, -1
	for low <= high {
		mid := int(uint(low+high) >> 1)
		cmp := a.compare(a.sa[mid], pattern)
		switch {
		case cmp == 0:
			ans = mid
			high = mid - 1
		case cmp < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return ans
}

func (a *Array) upperBound(pattern string) int {
	low, high, ans := 0, len(a.sa)-1, -1
	for low <= high {
		mid := int(uint(low+high) >> 1)
		cmp := a.compare(a.sa[mid], pattern)
		switch {
		case cmp == 0:
			ans = mid
			low = mid + 1
		case cmp < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return ans
}
