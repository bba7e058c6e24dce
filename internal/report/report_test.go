package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/bastiangx/seqserve/pkg/analysis"
	"github.com/bastiangx/seqserve/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnippet(t *testing.T) {
	tests := []struct {
		name                 string
		seq                  string
		pos, n, width        int
		before, match, after string
	}{
		{"middle", "AAAAAGATTACCCCC", 5, 3, 5, "AAAAA", "GAT", "TACCC"},
		{"start", "GATTACA", 0, 3, 5, "", "GAT", "TACA"},
		{"end", "GATTACA", 4, 3, 2, "TT", "ACA", ""},
		{"zero width", "GATTACA", 1, 3, 0, "", "ATT", ""},
		{"negative width", "GATTACA", 1, 3, -4, "", "ATT", ""},
		{"past end", "GATTACA", 6, 5, 1, "C", "A", ""},
		{"out of range", "ACGT", 10, 2, 2, "GT", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, m, a := Snippet(tc.seq, tc.pos, tc.n, tc.width)
			assert.Equal(t, tc.before, b)
			assert.Equal(t, tc.match, m)
			assert.Equal(t, tc.after, a)
		})
	}
}

func frequencyResult(t *testing.T, top int) *analysis.FrequencyResult {
	t.Helper()
	res, err := analysis.New(nil).Frequency("AGATAGATC", 3, top, "")
	require.NoError(t, err)
	return res
}

func TestFrequencyMarkdown(t *testing.T) {
	md := FrequencyMarkdown(frequencyResult(t, 0), 2)
	assert.Contains(t, md, "## K-mer frequency (k=3)")
	assert.Contains(t, md, "**Distinct:** 5")
	assert.Contains(t, md, "**Windows:** 7")
	assert.Contains(t, md, "| 1 | `AGA` | 2 |")
	assert.Contains(t, md, "| 2 | `GAT` | 2 |")
	assert.Contains(t, md, "3 more not shown")
}

func TestFrequencyMarkdownEmpty(t *testing.T) {
	res, err := analysis.New(nil).Frequency("AC", 5, 0, "")
	require.NoError(t, err)
	assert.Contains(t, FrequencyMarkdown(res, 20), "_No k-mers._")
}

func TestMotifMarkdown(t *testing.T) {
	seq := "GATTACAGATTACA"
	res, err := analysis.New(nil).Motif(seq, "TTA")
	require.NoError(t, err)

	md := MotifMarkdown(seq, res, 2, 0)
	assert.Contains(t, md, "**Occurrences:** 2")
	assert.Contains(t, md, "| 2 | `GA[TTA]CA` |")
	assert.Contains(t, md, "| 9 | `GA[TTA]CA` |")

	md = MotifMarkdown(seq, res, 2, 1)
	assert.NotContains(t, md, "| 9 |")
	assert.Contains(t, md, "1 more not shown")
}

func TestMotifMarkdownNotFound(t *testing.T) {
	res, err := analysis.New(nil).Motif("GATTACA", "CCC")
	require.NoError(t, err)
	assert.Contains(t, MotifMarkdown("GATTACA", res, 5, 20), "_Not found._")
}

func TestMarkdownEscapesPipes(t *testing.T) {
	res, err := analysis.New(nil).Motif("a|b|c", "|")
	require.NoError(t, err)
	md := MotifMarkdown("a|b|c", res, 1, 0)
	assert.Contains(t, md, "`a[\\|]b`")
}

func TestMutationMarkdown(t *testing.T) {
	res, err := analysis.New(nil).Mutation("KITTEN", "SITTING")
	require.NoError(t, err)
	md := MutationMarkdown(res, 60)
	assert.Contains(t, md, "**Edit distance:** 3")
	assert.Contains(t, md, "Similar (Low Mutation)")
	assert.Contains(t, md, "`KITTEN` (6)")

	long := strings.Repeat("A", 100)
	res, err = analysis.New(nil).Mutation(long, long)
	require.NoError(t, err)
	assert.Contains(t, MutationMarkdown(res, 10), "`AAAAAAAAAA...` (100)")
}

func plainRenderer(t *testing.T) *Renderer {
	t.Helper()
	cfg := config.DefaultConfig().CLI
	cfg.Markdown = false
	r, err := NewRenderer(cfg, 0)
	require.NoError(t, err)
	return r
}

func TestPlainRenderer(t *testing.T) {
	r := plainRenderer(t)
	a := analysis.New(nil)

	out := r.Frequency(frequencyResult(t, 0))
	assert.Contains(t, out, "k=3")
	assert.Contains(t, out, "AGA")
	assert.Contains(t, out, "5 distinct")

	motif, err := a.Motif("GATTACA", "ATT")
	require.NoError(t, err)
	out = r.Motif("GATTACA", motif)
	assert.Contains(t, out, "1 occurrences")
	assert.Contains(t, out, "ATT")
	assert.Contains(t, out, "ACA")

	mut, err := a.Mutation("KITTEN", "SITTING")
	require.NoError(t, err)
	out = r.Mutation(mut)
	assert.Contains(t, out, "distance 3")
	assert.Contains(t, out, "Similar (Low Mutation)")
}

func TestPlainMotifTruncates(t *testing.T) {
	r := plainRenderer(t)
	r.top = 2
	res, err := analysis.New(nil).Motif("AAAAA", "A")
	require.NoError(t, err)
	assert.Contains(t, r.Motif("AAAAA", res), "... 3 more")
}

func TestMarkdownRenderer(t *testing.T) {
	r, err := NewRenderer(config.DefaultConfig().CLI, 80)
	require.NoError(t, err)
	require.NotNil(t, r.md)

	out := r.Frequency(frequencyResult(t, 0))
	assert.Contains(t, out, "AGA")
	assert.Contains(t, out, "K-mer frequency")
}

func TestBatch(t *testing.T) {
	r := plainRenderer(t)
	a := analysis.New(nil)
	jobs := []analysis.Job{
		{ID: "m", Kind: analysis.KindMotif, Sequence: "GATTACA", Pattern: "ATT"},
		{ID: "x", Kind: "bogus"},
	}
	results := []analysis.Result{a.Run(jobs[0]), a.Run(jobs[1])}

	out := r.Batch(jobs, results)
	assert.Contains(t, out, "# m (motif)")
	assert.Contains(t, out, "# x (bogus)")
	assert.Contains(t, out, "unknown analysis kind")
	assert.Contains(t, out, "2 jobs, 1 failed")
}

func TestError(t *testing.T) {
	assert.Contains(t, plainRenderer(t).Error(errors.New("boom")), "error: boom")
}
