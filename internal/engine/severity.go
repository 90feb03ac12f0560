package engine

import (
	"strings"

	"github.com/jonesrussell/siteleads/internal/domain"
)

const bytesPerKB = 1024

// AnalyzeDocument runs signal and contact extraction over a fetched
// document and produces the single-site severity result. The score is the
// sum of fired rule weights clamped to [0, domain.SeverityScoreMax]:
// ascending, higher means a worse site.
//
// A degraded document (StatusCode 0, produced by the caller from a fetch
// failure) yields the fixed unreachable result so batch runs never abort:
// score 2 with a single explanatory issue and no extracted contacts.
//
// This is deliberately a separate policy from ScoreOpportunity: the two
// scales run in opposite directions and must not be unified.
func AnalyzeDocument(doc *domain.Document) domain.ScoreResult {
	if !doc.Reachable() {
		return unreachableResult(doc)
	}

	issues := ExtractSignals(doc)
	emails, phones := ExtractContacts(doc.Content)

	raw := 0
	for _, issue := range issues {
		raw += issue.Weight
	}

	score := raw
	clamped := false
	if score > domain.SeverityScoreMax {
		score = domain.SeverityScoreMax
		clamped = true
	}

	return domain.ScoreResult{
		URL:            doc.URL,
		Score:          score,
		Clamped:        clamped,
		Issues:         issues,
		Emails:         emails,
		Phones:         phones,
		MobileFriendly: hasViewportTag(strings.ToLower(doc.Content)),
		Secure:         strings.HasPrefix(doc.URL, "https"),
		PageSizeKB:     (len(doc.Content) + bytesPerKB/2) / bytesPerKB,
	}
}

// unreachableResult is the degraded-input result: a near-zero severity
// score with exactly one issue explaining why nothing else was scored.
func unreachableResult(doc *domain.Document) domain.ScoreResult {
	return domain.ScoreResult{
		URL:   doc.URL,
		Score: weightUnreachable,
		Issues: []domain.Issue{{
			Kind:     domain.KindUnreachable,
			Weight:   weightUnreachable,
			Message:  "Site unreachable",
			Negative: true,
		}},
	}
}
