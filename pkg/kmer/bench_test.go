package kmer

import (
	"math/rand"
	"testing"
)

func randomSequence(n int) string {
	rng := rand.New(rand.NewSource(1))
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = "ACGT"[rng.Intn(4)]
	}
	return string(buf)
}

func BenchmarkCount_100k_k8(b *testing.B) {
	seq := randomSequence(100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Count(seq, 8)
	}
}

func BenchmarkTop_100k_k6(b *testing.B) {
	table := Count(randomSequence(100_000), 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = table.Top(20)
	}
}
