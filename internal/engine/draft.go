package engine

import (
	"fmt"
	"strings"

	"github.com/jonesrussell/siteleads/internal/domain"
)

// maxBusinessNameLen is the longest inferred business name the draft will
// use before falling back to the generic placeholder.
const maxBusinessNameLen = 40

// maxDraftIssues is how many negative issues the draft body enumerates.
const maxDraftIssues = 3

// genericBusinessName is used when no usable name can be inferred.
const genericBusinessName = "your business"

// Fixed draft fragments. Draft generation is fully deterministic: no
// clock, no randomness, no external state.
const (
	draftIntro = "I specialize in rebuilding websites for local businesses — fast, " +
		"affordable, and designed to actually bring in customers."

	draftMobileParagraph = "Over 60% of your potential customers are searching on " +
		"their phones. If your site doesn't work on mobile, you're invisible to them."

	draftClosing = `Would you be open to a free site analysis? No obligation — just a quick report on what's working and what's not.

Best,
The SiteLeads Team
hello@siteleads.dev`
)

// GenerateDraft turns a score result and a page-title hint into a cold
// outreach draft. The opening hook depends on how many negative issues
// were found: none gives a generic refresh hook, exactly one names the
// issue, more than one states the count.
func GenerateDraft(res domain.ScoreResult, titleHint string) domain.DraftMessage {
	biz := inferBusinessName(titleHint, res.URL)
	pains := domain.NegativeIssues(res.Issues)

	var body strings.Builder

	body.WriteString("Hi,\n\n")
	body.WriteString(hookSentence(pains))
	body.WriteString(". ")
	body.WriteString(draftIntro)
	body.WriteString("\n\nHere's what I found:\n")

	for i, pain := range pains {
		if i == maxDraftIssues {
			break
		}
		body.WriteString("  • " + pain.Message + "\n")
	}

	if !res.MobileFriendly {
		body.WriteString("\n" + draftMobileParagraph + "\n")
	}

	fmt.Fprintf(&body,
		"\nWe can have a modern, mobile-friendly website live for %s within "+
			"48 hours — starting at $0 down, $20/month (everything included).\n\n",
		biz)
	body.WriteString(draftClosing)

	return domain.DraftMessage{
		Subject:      fmt.Sprintf("Quick question about %s's website", biz),
		Body:         body.String(),
		BusinessName: biz,
	}
}

// inferBusinessName derives a display name from a page title by splitting
// at the first separator, checking "|" then "-" then "—" in that order on
// the running result. Overlong names and names that are just the raw URL
// fall back to the generic placeholder.
func inferBusinessName(title, rawURL string) string {
	name := title
	for _, sep := range []string{"|", "-", "—"} {
		name, _, _ = strings.Cut(name, sep)
	}
	name = strings.TrimSpace(name)

	if name == "" || len(name) > maxBusinessNameLen || name == rawURL {
		return genericBusinessName
	}

	return name
}

// hookSentence picks the draft's opening line from the negative issues.
func hookSentence(pains []domain.Issue) string {
	switch len(pains) {
	case 0:
		return "I noticed your website could use a refresh"
	case 1:
		return fmt.Sprintf("I noticed %s on your website", strings.ToLower(pains[0].Message))
	default:
		return fmt.Sprintf(
			"I found %d issues with your current website that are likely costing you customers",
			len(pains))
	}
}
