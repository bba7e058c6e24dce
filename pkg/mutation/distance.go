// Package mutation scores how far two sequences are apart with the unweighted
// Levenshtein distance and maps that distance to a coarse severity level.
package mutation

// Result is the scored comparison of two sequences.
type Result struct {
	A        string
	B        string
	Distance int
	Level    Level
}

// Distance returns the minimum number of single-byte insertions, deletions or
// substitutions turning a into b. Every edit costs 1.
func Distance(a, b string) int {
	la, lb := len(a), len(b)

	dp := make([][]int, la+1)
	for i := range dp {
		dp[i] = make([]int, lb+1)
		dp[i][0] = i
	}
	for j := 0; j <= lb; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1]
				continue
			}
			insert := dp[i][j-1]
			del := dp[i-1][j]
			replace := dp[i-1][j-1]
			dp[i][j] = 1 + min(insert, del, replace)
		}
	}
	return dp[la][lb]
}

// Score computes the distance between a and b and classifies it.
func Score(a, b string) Result {
	d := Distance(a, b)
	return Result{
		A:        a,
		B:        b,
		Distance: d,
		Level:    Classify(d),
	}
}
