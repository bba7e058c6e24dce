package kmer

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Index is a read-only prefix index over a Table.
type Index struct {
	trie *patricia.Trie
	size int
}

// NewIndex loads every k-mer of t into a patricia trie.
func NewIndex(t Table) *Index {
	trie := patricia.NewTrie()
	for kmer, c := range t {
		trie.Insert(patricia.Prefix(kmer), c)
	}
	return &Index{trie: trie, size: len(t)}
}

// Len returns the number of distinct k-mers.
func (idx *Index) Len() int {
	return idx.size
}

// Entries returns all k-mers in lexicographic order.
func (idx *Index) Entries() []Entry {
	entries := make([]Entry, 0, idx.size)
	err := idx.trie.Visit(func(p patricia.Prefix, item patricia.Item) error {
		entries = append(entries, Entry{Kmer: string(p), Count: item.(int)})
		return nil
	})
	if err != nil {
		log.Errorf("Visiting kmer index: %v", err)
	}
	sortEntries(entries)
	return entries
}

// WithPrefix returns the k-mers starting with prefix in lexicographic order.
// An empty prefix matches everything.
func (idx *Index) WithPrefix(prefix string) []Entry {
	var entries []Entry
	err := idx.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		entries = append(entries, Entry{Kmer: string(p), Count: item.(int)})
		return nil
	})
	if err != nil {
		log.Errorf("Visiting kmer subtree for %q: %v", prefix, err)
	}
	if entries == nil {
		return []Entry{}
	}
	sortEntries(entries)
	return entries
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Kmer < entries[j].Kmer
	})
}
