package kmer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountExample(t *testing.T) {
	got := Count("AGATAGATC", 3)
	want := Table{"AGA": 2, "GAT": 2, "ATA": 1, "TAG": 1, "ATC": 1}
	assert.Equal(t, want, got)
	assert.Equal(t, 7, got.Total())
}

func TestCountInvalidInputs(t *testing.T) {
	testCases := []struct {
		name string
		seq  string
		k    int
	}{
		{"empty sequence", "", 3},
		{"zero k", "ACGT", 0},
		{"negative k", "ACGT", -2},
		{"k longer than sequence", "ACGT", 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Count(tc.seq, tc.k)
			require.NotNil(t, got)
			assert.Empty(t, got)
			assert.Equal(t, 0, got.Total())
		})
	}
}

func TestCountWholeSequence(t *testing.T) {
	assert.Equal(t, Table{"GATTACA": 1}, Count("GATTACA", 7))
}

func TestCountArbitraryBytes(t *testing.T) {
	got := Count("a\x00a\x00", 2)
	assert.Equal(t, Table{"a\x00": 2, "\x00a": 1}, got)
}

func TestCountTotalsProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := "ACGT"

	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(40)
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = alphabet[rng.Intn(len(alphabet))]
		}
		seq := string(buf)

		for k := -1; k <= n+1; k++ {
			table := Count(seq, k)
			if k <= 0 || k > n {
				assert.Empty(t, table, "seq=%q k=%d", seq, k)
				continue
			}
			assert.Equal(t, n-k+1, table.Total(), "seq=%q k=%d", seq, k)
			for kmer := range table {
				assert.Len(t, kmer, k)
			}
		}
	}
}

func TestTop(t *testing.T) {
	table := Count("AGATAGATC", 3)

	top := table.Top(3)
	require.Len(t, top, 3)
	assert.Equal(t, []Entry{
		{Kmer: "AGA", Count: 2},
		{Kmer: "GAT", Count: 2},
		{Kmer: "ATA", Count: 1},
	}, top)

	assert.Len(t, table.Top(0), 5)
	assert.Len(t, table.Top(100), 5)
	assert.Empty(t, Table{}.Top(5))
}
