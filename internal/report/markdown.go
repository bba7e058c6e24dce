package report

import (
	"fmt"
	"strings"

	"github.com/bastiangx/seqserve/internal/utils"
	"github.com/bastiangx/seqserve/pkg/analysis"
	"github.com/bastiangx/seqserve/pkg/kmer"
)

// topEntries prefers the list the analyzer already computed.
func topEntries(res *analysis.FrequencyResult, top int) []kmer.Entry {
	if len(res.Top) > 0 {
		return res.Top
	}
	return kmer.Table(res.Frequencies).Top(top)
}

// escapeCell keeps sequence bytes from breaking table or code span syntax.
func escapeCell(s string) string {
	return strings.NewReplacer("|", `\|`, "`", "'", "\n", " ").Replace(s)
}

// FrequencyMarkdown renders a k-mer count as a markdown table of the top entries.
func FrequencyMarkdown(res *analysis.FrequencyResult, top int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## K-mer frequency (k=%d)\n\n", res.K))
	sb.WriteString(fmt.Sprintf("**Distinct:** %s  **Windows:** %s\n\n",
		utils.FormatWithCommas(res.TotalUniqueKmers), utils.FormatWithCommas(res.TotalWindows)))

	entries := topEntries(res, top)
	if len(entries) == 0 {
		sb.WriteString("_No k-mers._\n")
		return sb.String()
	}

	sb.WriteString("| # | k-mer | count |\n|---|---|---|\n")
	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("| %d | `%s` | %s |\n", i+1, escapeCell(e.Kmer), utils.FormatWithCommas(e.Count)))
	}
	if rest := res.TotalUniqueKmers - len(entries); rest > 0 {
		sb.WriteString(fmt.Sprintf("\n_%s more not shown._\n", utils.FormatWithCommas(rest)))
	}
	return sb.String()
}

// MotifMarkdown renders motif hits with width bytes of context on each side.
// At most limit hits are listed; limit <= 0 lists all.
func MotifMarkdown(seq string, res *analysis.MotifResult, width, limit int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Motif `%s`\n\n", escapeCell(res.MotifSearched)))
	sb.WriteString(fmt.Sprintf("**Occurrences:** %s\n\n", utils.FormatWithCommas(res.TotalOccurrences)))

	if res.TotalOccurrences == 0 {
		sb.WriteString("_Not found._\n")
		return sb.String()
	}

	hits := res.LocationsFound
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	sb.WriteString("| offset | context |\n|---|---|\n")
	for _, pos := range hits {
		before, match, after := Snippet(seq, pos, len(res.MotifSearched), width)
		sb.WriteString(fmt.Sprintf("| %d | `%s[%s]%s` |\n", pos, escapeCell(before), escapeCell(match), escapeCell(after)))
	}
	if rest := len(res.LocationsFound) - len(hits); rest > 0 {
		sb.WriteString(fmt.Sprintf("\n_%s more not shown._\n", utils.FormatWithCommas(rest)))
	}
	return sb.String()
}

// MutationMarkdown renders an edit distance score.
func MutationMarkdown(res *analysis.MutationResult, preview int) string {
	var sb strings.Builder
	sb.WriteString("## Mutation\n\n")
	sb.WriteString(fmt.Sprintf("- **A:** `%s` (%d)\n", escapeCell(utils.Preview(res.SequenceA, preview)), len(res.SequenceA)))
	sb.WriteString(fmt.Sprintf("- **B:** `%s` (%d)\n", escapeCell(utils.Preview(res.SequenceB, preview)), len(res.SequenceB)))
	sb.WriteString(fmt.Sprintf("- **Edit distance:** %s\n", utils.FormatWithCommas(res.EditDistance)))
	sb.WriteString(fmt.Sprintf("- **Classification:** %s\n", res.Description))
	return sb.String()
}
