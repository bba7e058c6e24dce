// Package kmer counts fixed-length substrings (k-mers) of a sequence in a single pass.
package kmer

import (
	"sort"
)

// Table maps each k-mer to the number of windows it occupies.
type Table map[string]int

// Entry is a single k-mer with its count.
type Entry struct {
	Kmer  string `msgpack:"m" json:"kmer"`
	Count int    `msgpack:"c" json:"count"`
}

// Count slides a window of width k across seq and counts every window.
// An empty seq, k <= 0 or k > len(seq) returns an empty table.
func Count(seq string, k int) Table {
	n := len(seq)
	if n == 0 || k <= 0 || k > n {
		return Table{}
	}

	table := make(Table)
	for i := 0; i <= n-k; i++ {
		// slicing shares the backing array, no copy per window
		table[seq[i:i+k]]++
	}
	return table
}

// Total returns the sum of all counts, which is len(seq)-k+1 for a non-empty table.
func (t Table) Total() int {
	total := 0
	for _, c := range t {
		total += c
	}
	return total
}

// Top returns the n most frequent k-mers, ties broken lexicographically.
// n <= 0 returns every entry.
func (t Table) Top(n int) []Entry {
	entries := make([]Entry, 0, len(t))
	for kmer, c := range t {
		entries = append(entries, Entry{Kmer: kmer, Count: c})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Kmer < entries[j].Kmer
	})

	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
