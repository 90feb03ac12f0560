package domain

// IssueKind identifies the category of a detected site quality issue.
// The set is closed: scoring and reporting depend on these exact values.
type IssueKind string

// Issue kinds detected from fetched page content.
const (
	KindMissingViewport   IssueKind = "missing-mobile-viewport"
	KindInsecureTransport IssueKind = "insecure-transport"
	KindTableLayout       IssueKind = "legacy-table-layout"
	KindDeprecatedMarkup  IssueKind = "deprecated-markup"
	KindLegacyPlugin      IssueKind = "legacy-multimedia-plugin"
	KindPoorTypography    IssueKind = "poor-typography-choice"
	KindStaleCopyright    IssueKind = "stale-copyright-year"
	KindOversizedPage     IssueKind = "oversized-page"
	KindMaintenancePage   IssueKind = "maintenance-placeholder"
	KindBuilderPlatform   IssueKind = "low-effort-builder"
	KindCMSFingerprint    IssueKind = "content-management-fingerprint"
	KindUnreachable       IssueKind = "unreachable-site"
)

// Issue kinds detected from search-result metadata in batch lead mode.
const (
	KindNoWebsite         IssueKind = "no-website"
	KindSocialOrDirectory IssueKind = "hosted-on-social-or-directory"
	KindFreeHostSubdomain IssueKind = "free-hosted-subdomain"
	KindStaleTechSnippet  IssueKind = "technology-staleness-in-snippet"
	KindManualReview      IssueKind = "manual-review"
)

// Issue is a single fired analysis rule: what was found, how much it
// weighs, and whether it is a negative finding or an informational note.
type Issue struct {
	// Kind is the issue category
	Kind IssueKind `json:"kind" mapstructure:"kind"`
	// Weight is the scoring contribution of this issue. In severity mode
	// it is added to the score; in opportunity mode it is subtracted.
	Weight int `json:"weight" mapstructure:"weight"`
	// Message is the human-readable finding, without any polarity marker
	Message string `json:"message" mapstructure:"message"`
	// Negative marks a pain point as opposed to an informational note.
	// Draft generation enumerates only negative issues.
	Negative bool `json:"negative" mapstructure:"negative"`
}

// Marker returns the display prefix for the issue: a cross for negative
// findings, a warning sign for weighted notes, an info sign otherwise.
func (i Issue) Marker() string {
	switch {
	case i.Negative:
		return "❌"
	case i.Weight > 0:
		return "⚠️"
	default:
		return "ℹ️"
	}
}

// String renders the issue the way reports display it.
func (i Issue) String() string {
	return i.Marker() + " " + i.Message
}

// NegativeIssues filters issues down to negative findings, preserving order.
func NegativeIssues(issues []Issue) []Issue {
	var out []Issue
	for _, issue := range issues {
		if issue.Negative {
			out = append(out, issue)
		}
	}

	return out
}
