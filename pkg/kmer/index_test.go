package kmer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexEntriesSorted(t *testing.T) {
	idx := NewIndex(Count("AGATAGATC", 3))

	assert.Equal(t, 5, idx.Len())
	assert.Equal(t, []Entry{
		{Kmer: "AGA", Count: 2},
		{Kmer: "ATA", Count: 1},
		{Kmer: "ATC", Count: 1},
		{Kmer: "GAT", Count: 2},
		{Kmer: "TAG", Count: 1},
	}, idx.Entries())
}

func TestIndexWithPrefix(t *testing.T) {
	idx := NewIndex(Count("AGATAGATC", 3))

	testCases := []struct {
		prefix string
		want   []Entry
	}{
		{"A", []Entry{{"AGA", 2}, {"ATA", 1}, {"ATC", 1}}},
		{"AT", []Entry{{"ATA", 1}, {"ATC", 1}}},
		{"GAT", []Entry{{"GAT", 2}}},
		{"C", []Entry{}},
		{"GATT", []Entry{}},
	}

	for _, tc := range testCases {
		t.Run(tc.prefix, func(t *testing.T) {
			assert.Equal(t, tc.want, idx.WithPrefix(tc.prefix))
		})
	}

	assert.Len(t, idx.WithPrefix(""), 5)
}

func TestIndexEmpty(t *testing.T) {
	idx := NewIndex(Table{})
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Entries())
	assert.Empty(t, idx.WithPrefix("A"))
}
