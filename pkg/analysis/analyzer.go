/*
Package analysis dispatches requests to the k-mer, suffix array and edit
distance engines and shapes their output into result records.

The engines are stateless, so an Analyzer is safe for concurrent use and
Batch runs independent jobs in parallel:

	a := analysis.New(cfg)
	res, err := a.Motif("GATTACA", "ATT") // LocationsFound: [1]

Request limits (sequence, pattern and top sizes) come from the server section
of the config; a zero limit disables the check.
*/
package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/bastiangx/seqserve/pkg/config"
	"github.com/bastiangx/seqserve/pkg/kmer"
	"github.com/bastiangx/seqserve/pkg/mutation"
	"github.com/bastiangx/seqserve/pkg/suffix"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnknownKind      = errors.New("unknown analysis kind")
	ErrSequenceTooLong  = errors.New("sequence exceeds maximum length")
	ErrPatternTooLong   = errors.New("pattern exceeds maximum length")
	ErrTopLimitExceeded = errors.New("top exceeds maximum")
)

// Analyzer runs analyses within the configured limits.
type Analyzer struct {
	maxSequenceLen int
	maxPatternLen  int
	maxTop         int
	workers        int
}

// New builds an Analyzer from cfg. A nil cfg uses the defaults.
func New(cfg *config.Config) *Analyzer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Analyzer{
		maxSequenceLen: cfg.Server.MaxSequenceLen,
		maxPatternLen:  cfg.Server.MaxPatternLen,
		maxTop:         cfg.Server.MaxTop,
		workers:        max(1, cfg.Engine.Workers),
	}
}

// Workers returns the parallelism used by Batch.
func (a *Analyzer) Workers() int {
	return a.workers
}

func (a *Analyzer) checkSequence(name, seq string) error {
	if a.maxSequenceLen > 0 && len(seq) > a.maxSequenceLen {
		return fmt.Errorf("%s has %d bytes, limit %d: %w", name, len(seq), a.maxSequenceLen, ErrSequenceTooLong)
	}
	return nil
}

// Frequency counts the k-mers of seq. top > 0 adds the top most frequent
// k-mers; a non-empty prefix keeps only k-mers starting with it.
func (a *Analyzer) Frequency(seq string, k, top int, prefix string) (*FrequencyResult, error) {
	if err := a.checkSequence("sequence", seq); err != nil {
		return nil, err
	}
	if a.maxTop > 0 && top > a.maxTop {
		return nil, fmt.Errorf("top=%d, limit %d: %w", top, a.maxTop, ErrTopLimitExceeded)
	}

	table := kmer.Count(seq, k)
	total := table.Total()
	if prefix != "" {
		table = filterPrefix(table, prefix)
	}

	res := &FrequencyResult{
		Frequencies:      table,
		K:                k,
		TotalUniqueKmers: len(table),
		TotalWindows:     total,
	}
	if top > 0 {
		res.Top = table.Top(top)
	}

	log.Debug("frequency", "seq", Fingerprint(seq), "k", k, "unique", res.TotalUniqueKmers)
	return res, nil
}

func filterPrefix(table kmer.Table, prefix string) kmer.Table {
	entries := kmer.NewIndex(table).WithPrefix(prefix)
	filtered := make(kmer.Table, len(entries))
	for _, e := range entries {
		filtered[e.Kmer] = e.Count
	}
	return filtered
}

// Motif finds every occurrence of pattern in seq through a suffix array
// built for this call only.
func (a *Analyzer) Motif(seq, pattern string) (*MotifResult, error) {
	if err := a.checkSequence("sequence", seq); err != nil {
		return nil, err
	}
	if a.maxPatternLen > 0 && len(pattern) > a.maxPatternLen {
		return nil, fmt.Errorf("pattern has %d bytes, limit %d: %w", len(pattern), a.maxPatternLen, ErrPatternTooLong)
	}

	locations := suffix.Build(seq).Search(pattern)
	log.Debug("motif", "seq", Fingerprint(seq), "pattern", pattern, "hits", len(locations))
	return &MotifResult{
		MotifSearched:    pattern,
		LocationsFound:   locations,
		TotalOccurrences: len(locations),
	}, nil
}

// Mutation scores the edit distance between seqA and seqB.
func (a *Analyzer) Mutation(seqA, seqB string) (*MutationResult, error) {
	if err := a.checkSequence("sequence_a", seqA); err != nil {
		return nil, err
	}
	if err := a.checkSequence("sequence_b", seqB); err != nil {
		return nil, err
	}

	score := mutation.Score(seqA, seqB)
	log.Debug("mutation", "a", Fingerprint(seqA), "b", Fingerprint(seqB), "distance", score.Distance)
	return &MutationResult{
		SequenceA:              score.A,
		SequenceB:              score.B,
		EditDistance:           score.Distance,
		MutationClassification: score.Level.String(),
		Description:            score.Level.Description(),
	}, nil
}

// Run executes a single job. Failures are reported in Result.Err.
func (a *Analyzer) Run(job Job) Result {
	res := Result{ID: job.ID, Kind: job.Kind}
	switch job.Kind {
	case KindFrequency:
		res.Frequency, res.Err = a.Frequency(job.Sequence, job.K, job.Top, job.Prefix)
	case KindMotif:
		res.Motif, res.Err = a.Motif(job.Sequence, job.Pattern)
	case KindMutation:
		res.Mutation, res.Err = a.Mutation(job.SequenceA, job.SequenceB)
	default:
		res.Err = fmt.Errorf("%q: %w", job.Kind, ErrUnknownKind)
	}
	return res
}

// Batch runs jobs on up to Workers goroutines and returns results in job order.
// Per-job failures land in Result.Err; the returned error is only set when ctx
// is cancelled, in which case jobs that never started carry ctx.Err().
func (a *Analyzer) Batch(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = Result{ID: job.ID, Kind: job.Kind, Err: err}
				return err
			}
			results[i] = a.Run(job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
