package mutation

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKnownPairs(t *testing.T) {
	testCases := []struct {
		a, b string
		want int
	}{
		{"KITTEN", "SITTING", 3},
		{"", "", 0},
		{"", "ACGT", 4},
		{"ACGT", "", 4},
		{"GATTACA", "GATTACA", 0},
		{"GATTACA", "GCATGCU", 4},
		{"flaw", "lawn", 2},
		{"AAAA", "TTTT", 4},
		{"ACGT", "TGCA", 4},
		{"ACGTACGT", "ACGACGT", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.a+"_"+tc.b, func(t *testing.T) {
			assert.Equal(t, tc.want, Distance(tc.a, tc.b))
		})
	}
}

func TestDistanceProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	gen := func() string {
		n := rng.Intn(12)
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteByte("ACG"[rng.Intn(3)])
		}
		return sb.String()
	}

	for iter := 0; iter < 300; iter++ {
		a, b, c := gen(), gen(), gen()
		dab := Distance(a, b)

		assert.GreaterOrEqual(t, dab, 0)
		assert.Equal(t, dab, Distance(b, a), "symmetry a=%q b=%q", a, b)
		assert.Equal(t, a == b, dab == 0, "zero iff equal a=%q b=%q", a, b)
		assert.LessOrEqual(t, dab, Distance(a, c)+Distance(c, b), "triangle a=%q b=%q c=%q", a, b, c)
		assert.LessOrEqual(t, dab, max(len(a), len(b)))
		assert.GreaterOrEqual(t, dab, abs(len(a)-len(b)))
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestScore(t *testing.T) {
	res := Score("KITTEN", "SITTING")
	assert.Equal(t, Result{A: "KITTEN", B: "SITTING", Distance: 3, Level: Low}, res)
	assert.Equal(t, "Low", res.Level.String())
	assert.Equal(t, "Similar (Low Mutation)", res.Level.Description())
}
