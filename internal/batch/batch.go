// Package batch loads analysis jobs from YAML files.
//
//	jobs:
//	  - id: promoter
//	    kind: motif
//	    sequence_file: reads.fa
//	    pattern: TATA
//	  - kind: mutation
//	    sequence_a: KITTEN
//	    sequence_b: SITTING
//
// Relative sequence_file paths resolve against the directory of the job file.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bastiangx/seqserve/pkg/analysis"
	"github.com/bastiangx/seqserve/pkg/sequence"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

var ErrEmptyJobs = errors.New("job file has no jobs")

// File is the top level of a job file.
type File struct {
	Jobs []Spec `yaml:"jobs"`
}

// Spec is one job as written in YAML.
type Spec struct {
	analysis.Job `yaml:",inline"`
	SequenceFile string `yaml:"sequence_file"`
}

// Options control how specs become jobs.
type Options struct {
	DefaultK  int
	Uppercase bool
}

// Load reads a job file and resolves it into runnable jobs.
func Load(path string, opts Options) ([]analysis.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	return Parse(data, filepath.Dir(path), opts)
}

// Parse decodes job YAML. baseDir anchors relative sequence_file paths.
func Parse(data []byte, baseDir string, opts Options) ([]analysis.Job, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing job file: %w", err)
	}
	if len(f.Jobs) == 0 {
		return nil, ErrEmptyJobs
	}

	jobs := make([]analysis.Job, 0, len(f.Jobs))
	for i, spec := range f.Jobs {
		job, err := resolve(spec, i, baseDir, opts)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	log.Debug("Loaded jobs", "count", len(jobs))
	return jobs, nil
}

func resolve(spec Spec, i int, baseDir string, opts Options) (analysis.Job, error) {
	job := spec.Job
	if job.ID == "" {
		job.ID = fmt.Sprintf("job-%d", i+1)
	}
	if job.Kind == "" {
		return job, fmt.Errorf("job %s: missing kind", job.ID)
	}
	if job.Kind == analysis.KindFrequency && job.K == 0 {
		job.K = opts.DefaultK
	}

	// every input goes through the same folding as the loaded sequence
	job.Sequence = sequence.Normalize(job.Sequence, opts.Uppercase)
	job.Pattern = sequence.Normalize(job.Pattern, opts.Uppercase)
	job.Prefix = sequence.Normalize(job.Prefix, opts.Uppercase)
	job.SequenceA = sequence.Normalize(job.SequenceA, opts.Uppercase)
	job.SequenceB = sequence.Normalize(job.SequenceB, opts.Uppercase)

	if spec.SequenceFile == "" {
		return job, nil
	}
	if job.Sequence != "" {
		return job, fmt.Errorf("job %s: sequence and sequence_file are mutually exclusive", job.ID)
	}

	path := spec.SequenceFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	records, err := sequence.Load(path, sequence.Options{Uppercase: opts.Uppercase})
	if err != nil {
		return job, fmt.Errorf("job %s: %w", job.ID, err)
	}
	job.Sequence = records[0].Seq
	if len(records) > 1 {
		log.Warn("Only the first record is analyzed", "job", job.ID, "file", path, "records", len(records))
	}
	return job, nil
}

// Run loads path and runs its jobs on a. The jobs are returned alongside
// their results, in the same order, so callers can report on both. When ctx
// is cancelled mid-run both slices are still returned with the error.
func Run(ctx context.Context, a *analysis.Analyzer, path string, opts Options) ([]analysis.Job, []analysis.Result, error) {
	jobs, err := Load(path, opts)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("Running batch", "jobs", len(jobs), "workers", a.Workers())
	results, err := a.Batch(ctx, jobs)
	return jobs, results, err
}
