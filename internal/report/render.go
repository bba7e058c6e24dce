/*
Package report turns analysis results into terminal output.

With markdown enabled, results are written as markdown and rendered through
glamour. Otherwise they are printed as plain lines styled with lipgloss.
Motif hits are shown with a few bytes of flanking context:

	   1  G[ATT]ACA
*/
package report

import (
	"fmt"
	"strings"

	"github.com/bastiangx/seqserve/internal/utils"
	"github.com/bastiangx/seqserve/pkg/analysis"
	"github.com/bastiangx/seqserve/pkg/config"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
)

// previewLen caps how much of a long sequence is echoed back.
const previewLen = 60

// Renderer formats results according to the cli config.
type Renderer struct {
	md           *glamour.TermRenderer
	theme        Theme
	top          int
	contextWidth int
}

// NewRenderer builds a renderer. wrap is the markdown word wrap width, 0 for the glamour default.
func NewRenderer(cfg config.CliConfig, wrap int) (*Renderer, error) {
	r := &Renderer{
		theme:        DefaultTheme,
		top:          cfg.DefaultTop,
		contextWidth: cfg.ContextWidth,
	}
	if !cfg.Markdown {
		return r, nil
	}

	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if wrap > 0 {
		opts = append(opts, glamour.WithWordWrap(wrap))
	}
	md, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	r.md = md
	return r, nil
}

// render passes markdown through glamour, falling back to the raw text.
func (r *Renderer) render(markdown string) string {
	out, err := r.md.Render(markdown)
	if err != nil {
		log.Debugf("Markdown render failed: %v", err)
		return markdown
	}
	return out
}

// Frequency formats a k-mer count.
func (r *Renderer) Frequency(res *analysis.FrequencyResult) string {
	if r.md != nil {
		return r.render(FrequencyMarkdown(res, r.top))
	}

	var sb strings.Builder
	sb.WriteString(r.theme.Title.Render(fmt.Sprintf("k=%d", res.K)))
	sb.WriteString(r.theme.Dim.Render(fmt.Sprintf("  %s distinct, %s windows",
		utils.FormatWithCommas(res.TotalUniqueKmers), utils.FormatWithCommas(res.TotalWindows))))
	sb.WriteByte('\n')
	for _, e := range topEntries(res, r.top) {
		sb.WriteString(fmt.Sprintf("  %s  %s\n", r.theme.Kmer.Render(e.Kmer), r.theme.Count.Render(utils.FormatWithCommas(e.Count))))
	}
	return sb.String()
}

// Motif formats motif hits found in seq.
func (r *Renderer) Motif(seq string, res *analysis.MotifResult) string {
	if r.md != nil {
		return r.render(MotifMarkdown(seq, res, r.contextWidth, r.top))
	}

	var sb strings.Builder
	sb.WriteString(r.theme.Title.Render(res.MotifSearched))
	sb.WriteString(r.theme.Dim.Render(fmt.Sprintf("  %s occurrences", utils.FormatWithCommas(res.TotalOccurrences))))
	sb.WriteByte('\n')

	hits := res.LocationsFound
	if r.top > 0 && len(hits) > r.top {
		hits = hits[:r.top]
	}
	for _, pos := range hits {
		before, match, after := Snippet(seq, pos, len(res.MotifSearched), r.contextWidth)
		sb.WriteString(fmt.Sprintf("  %s  %s%s%s\n",
			r.theme.Position.Render(fmt.Sprintf("%4d", pos)),
			r.theme.Dim.Render(before), r.theme.Match.Render(match), r.theme.Dim.Render(after)))
	}
	if rest := len(res.LocationsFound) - len(hits); rest > 0 {
		sb.WriteString(r.theme.Dim.Render(fmt.Sprintf("  ... %d more", rest)))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Mutation formats an edit distance score.
func (r *Renderer) Mutation(res *analysis.MutationResult) string {
	if r.md != nil {
		return r.render(MutationMarkdown(res, previewLen))
	}

	return fmt.Sprintf("%s  %s\n  %s\n  %s\n",
		r.theme.Count.Render(fmt.Sprintf("distance %d", res.EditDistance)),
		r.theme.level(res.MutationClassification).Render(res.Description),
		r.theme.Dim.Render("A: "+utils.Preview(res.SequenceA, previewLen)),
		r.theme.Dim.Render("B: "+utils.Preview(res.SequenceB, previewLen)))
}

// Error formats a failed request.
func (r *Renderer) Error(err error) string {
	return r.theme.Error.Render("error: "+err.Error()) + "\n"
}

// Result formats the outcome of job.
func (r *Renderer) Result(job analysis.Job, res analysis.Result) string {
	switch {
	case res.Err != nil:
		return r.Error(res.Err)
	case res.Frequency != nil:
		return r.Frequency(res.Frequency)
	case res.Motif != nil:
		return r.Motif(job.Sequence, res.Motif)
	case res.Mutation != nil:
		return r.Mutation(res.Mutation)
	}
	return ""
}

// Batch formats every job result under a heading with its ID.
func (r *Renderer) Batch(jobs []analysis.Job, results []analysis.Result) string {
	var sb strings.Builder
	failed := 0
	for i, res := range results {
		if res.Err != nil {
			failed++
		}
		sb.WriteString(r.theme.Title.Render(fmt.Sprintf("# %s (%s)", res.ID, res.Kind)))
		sb.WriteByte('\n')
		if i < len(jobs) {
			sb.WriteString(r.Result(jobs[i], res))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(r.theme.Dim.Render(fmt.Sprintf("%d jobs, %d failed", len(results), failed)))
	sb.WriteByte('\n')
	return sb.String()
}
