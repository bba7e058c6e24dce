package analysis

import (
	"github.com/bastiangx/seqserve/pkg/kmer"
)

// Kind names one of the three analyses.
type Kind string

const (
	KindFrequency Kind = "frequency"
	KindMotif     Kind = "motif"
	KindMutation  Kind = "mutation"
)

// FrequencyResult is the k-mer count of one sequence.
type FrequencyResult struct {
	Frequencies      map[string]int `msgpack:"f" json:"frequencies"`
	K                int            `msgpack:"k" json:"k"`
	TotalUniqueKmers int            `msgpack:"u" json:"totalUniqueKmers"`
	TotalWindows     int            `msgpack:"w" json:"totalWindows"`
	Top              []kmer.Entry   `msgpack:"top,omitempty" json:"top,omitempty"`
}

// MotifResult lists where a pattern occurs in a sequence.
type MotifResult struct {
	MotifSearched    string `msgpack:"p" json:"motifSearched"`
	LocationsFound   []int  `msgpack:"l" json:"locationsFound"`
	TotalOccurrences int    `msgpack:"c" json:"totalOccurrences"`
}

// MutationResult is the edit distance between two sequences and its severity.
type MutationResult struct {
	SequenceA              string `msgpack:"a" json:"sequenceA"`
	SequenceB              string `msgpack:"b" json:"sequenceB"`
	EditDistance           int    `msgpack:"d" json:"editDistance"`
	MutationClassification string `msgpack:"m" json:"mutationClassification"`
	Description            string `msgpack:"desc" json:"description"`
}

// Job is one analysis request. Only the fields of its Kind are read.
type Job struct {
	ID   string `yaml:"id" json:"id"`
	Kind Kind   `yaml:"kind" json:"kind"`

	// frequency and motif
	Sequence string `yaml:"sequence" json:"sequence"`

	// frequency
	K      int    `yaml:"k" json:"k"`
	Top    int    `yaml:"top" json:"top"`
	Prefix string `yaml:"prefix" json:"prefix"`

	// motif
	Pattern string `yaml:"pattern" json:"pattern"`

	// mutation
	SequenceA string `yaml:"sequence_a" json:"sequence_a"`
	SequenceB string `yaml:"sequence_b" json:"sequence_b"`
}

// Result carries the outcome of one Job. Exactly one of the result
// pointers is set when Err is nil.
type Result struct {
	ID        string
	Kind      Kind
	Frequency *FrequencyResult
	Motif     *MotifResult
	Mutation  *MutationResult
	Err       error
}
