package report

// Snippet splits seq around a hit of length n at pos, keeping up to width
// bytes on each side. Out of range hits are clamped to the sequence.
func Snippet(seq string, pos, n, width int) (before, match, after string) {
	pos = clamp(pos, 0, len(seq))
	end := clamp(pos+n, pos, len(seq))
	width = max(0, width)

	before = seq[max(0, pos-width):pos]
	match = seq[pos:end]
	after = seq[end:min(len(seq), end+width)]
	return before, match, after
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
