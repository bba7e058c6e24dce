package suffix

import (
	"math/rand"
	"testing"
)

func BenchmarkBuild_10k(b *testing.B) {
	text := randomText(rand.New(rand.NewSource(1)), 10_000, "ACGT")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Build(text)
	}
}

func BenchmarkSearch_100k(b *testing.B) {
	text := randomText(rand.New(rand.NewSource(1)), 100_000, "ACGT")
	arr := Build(text)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = arr.Search("GATTACA")
	}
}
