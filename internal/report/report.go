// Package report renders analyzed leads into human-readable output: a
// per-site text report with the outreach draft, a sortable batch table,
// and JSON for machine consumers.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jonesrussell/siteleads/internal/domain"
)

const (
	bannerWidth = 60

	// flameBarCap limits the score intensity bar to five glyphs.
	flameBarCap = 5

	// Opportunity score bands for the batch footer. Lower scores are
	// hotter leads.
	hotThreshold  = 25
	warmThreshold = 45
)

// Lead renders one analyzed lead into the full text report: banner,
// key/value summary, contact lines when present, the issue list in
// extractor order, and the complete email draft.
func Lead(lead domain.Lead) string {
	res := lead.Result
	banner := strings.Repeat("=", bannerWidth)

	var b strings.Builder

	fmt.Fprintln(&b, banner)
	fmt.Fprintf(&b, "LEAD REPORT: %s\n", lead.Title)
	fmt.Fprintln(&b, banner)
	fmt.Fprintf(&b, "URL:      %s\n", lead.URL)
	fmt.Fprintf(&b, "Score:    %s (%d/%d)\n", flameBar(res.Score), res.Score, domain.SeverityScoreMax)
	fmt.Fprintf(&b, "Mobile:   %s\n", yesNo(res.MobileFriendly))
	fmt.Fprintf(&b, "HTTPS:    %s\n", yesNo(res.Secure))
	fmt.Fprintf(&b, "Size:     %d KB\n", res.PageSizeKB)

	if len(res.Emails) > 0 {
		fmt.Fprintf(&b, "Emails:   %s\n", strings.Join(res.Emails, ", "))
	}
	if len(res.Phones) > 0 {
		fmt.Fprintf(&b, "Phones:   %s\n", strings.Join(res.Phones, ", "))
	}

	if len(res.Issues) > 0 {
		fmt.Fprintln(&b, "\nIssues found:")
		for _, issue := range res.Issues {
			fmt.Fprintf(&b, "  %s\n", issue.String())
		}
	}

	fmt.Fprintln(&b, "\n--- EMAIL DRAFT ---")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, lead.Draft.String())

	return b.String()
}

// flameBar renders the score as repeated flame glyphs, capped at five.
func flameBar(score int) string {
	n := score
	if n > flameBarCap {
		n = flameBarCap
	}
	if n < 0 {
		n = 0
	}

	return strings.Repeat("🔥", n)
}

func yesNo(ok bool) string {
	if ok {
		return "✅ Yes"
	}

	return "❌ NO"
}

// BatchTable writes the scored leads as a table sorted ascending by
// opportunity score, worst sites first, followed by a count per score
// band. The input slice is not modified.
func BatchTable(w io.Writer, leads []domain.Lead) {
	sorted := make([]domain.Lead, len(leads))
	copy(sorted, leads)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Result.Score < sorted[j].Result.Score
	})

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Business", "URL", "Score", "Top Issue"})

	for i, lead := range sorted {
		t.AppendRow(table.Row{
			i + 1,
			lead.Title,
			lead.URL,
			lead.Result.Score,
			topIssue(lead.Result.Issues),
		})
	}

	t.Render()

	hot, warm, cold := bucketCounts(sorted)
	fmt.Fprintf(w, "\n🔥 Hot leads (score < %d):   %d\n", hotThreshold, hot)
	fmt.Fprintf(w, "🟡 Warm leads (%d-%d):      %d\n", hotThreshold, warmThreshold-1, warm)
	fmt.Fprintf(w, "❄️  Cold leads (score >= %d): %d\n", warmThreshold, cold)
}

// topIssue returns the first issue's display string, preferring the
// extractor's order over any severity ranking.
func topIssue(issues []domain.Issue) string {
	if len(issues) == 0 {
		return ""
	}

	return issues[0].String()
}

// bucketCounts tallies leads into the three opportunity bands.
func bucketCounts(leads []domain.Lead) (hot, warm, cold int) {
	for _, lead := range leads {
		switch {
		case lead.Result.Score < hotThreshold:
			hot++
		case lead.Result.Score < warmThreshold:
			warm++
		default:
			cold++
		}
	}

	return hot, warm, cold
}

// JSON writes the leads as indented JSON, one array element per lead.
func JSON(w io.Writer, leads []domain.Lead) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(leads); err != nil {
		return fmt.Errorf("encoding leads: %w", err)
	}

	return nil
}
