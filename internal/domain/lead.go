package domain

import "time"

// Score range bounds. These bands are part of the engine's contract with
// downstream consumers and must not change.
const (
	// SeverityScoreMax is the upper clamp of the single-site severity
	// score. Higher severity means a worse site.
	SeverityScoreMax = 10

	// OpportunityBaseline is the neutral starting point of the lead
	// opportunity score.
	OpportunityBaseline = 50
	// OpportunityScoreMin and OpportunityScoreMax bound the opportunity
	// score. Lower opportunity score means a worse site and a hotter lead.
	OpportunityScoreMin = 0
	OpportunityScoreMax = 100
)

// MaxContacts caps how many emails and phone numbers are kept per result.
const MaxContacts = 5

// ScoreResult is the outcome of scoring one input, in either mode.
// It is constructed once and read-only afterwards.
type ScoreResult struct {
	// URL is the subject of the scoring, empty in the no-website case
	URL string `json:"url" mapstructure:"url"`
	// Score is the numeric result. Severity mode uses [0,10] ascending,
	// opportunity mode uses [0,100] descending.
	Score int `json:"score" mapstructure:"score"`
	// Clamped reports whether the raw accumulated score fell outside the
	// mode's bounds and was clamped
	Clamped bool `json:"clamped,omitempty" mapstructure:"clamped"`
	// Issues holds the fired rules in evaluation order
	Issues []Issue `json:"issues" mapstructure:"issues"`
	// Emails holds up to MaxContacts extracted addresses in scan order
	Emails []string `json:"emails" mapstructure:"emails"`
	// Phones holds up to MaxContacts extracted phone numbers in scan order
	Phones []string `json:"phones" mapstructure:"phones"`
	// MobileFriendly is true when a viewport meta tag was found
	MobileFriendly bool `json:"mobile_friendly" mapstructure:"mobile_friendly"`
	// Secure is true when the resolved URL uses HTTPS
	Secure bool `json:"https" mapstructure:"https"`
	// PageSizeKB is the page weight in kilobytes
	PageSizeKB int `json:"page_size_kb" mapstructure:"page_size_kb"`
}

// DraftMessage is a generated outreach draft for one scored site.
type DraftMessage struct {
	// Subject is the email subject line
	Subject string `json:"subject" mapstructure:"subject"`
	// Body is the full message body
	Body string `json:"body" mapstructure:"body"`
	// BusinessName is the display name inferred from the page title
	BusinessName string `json:"business_name" mapstructure:"business_name"`
}

// String renders the draft as a single sendable block.
func (d DraftMessage) String() string {
	return "Subject: " + d.Subject + "\n\n" + d.Body
}

// Lead is the persisted record for one analyzed input: the score result
// plus page identity and the generated draft.
type Lead struct {
	// URL is the final resolved URL of the analyzed site
	URL string `json:"url" mapstructure:"url"`
	// Title is the page title or the listing title in batch mode
	Title string `json:"title" mapstructure:"title"`
	// Description is the meta description when one was found
	Description string `json:"description,omitempty" mapstructure:"description"`
	// Result is the full score result
	Result ScoreResult `json:"result" mapstructure:"result"`
	// Draft is the generated outreach message
	Draft DraftMessage `json:"draft" mapstructure:"draft"`
	// Index is the submission position of the input within its batch,
	// kept so callers can recover input order after score sorting
	Index int `json:"index" mapstructure:"index"`
	// AnalyzedAt is when the analysis ran
	AnalyzedAt time.Time `json:"analyzed_at" mapstructure:"analyzed_at"`
}

// AnalysisRun groups the leads produced by one invocation for persistence.
type AnalysisRun struct {
	// ID uniquely identifies the run
	ID string `json:"id" mapstructure:"id"`
	// StartedAt is when the run began
	StartedAt time.Time `json:"started_at" mapstructure:"started_at"`
	// Leads holds one record per analyzed input
	Leads []Lead `json:"leads" mapstructure:"leads"`
}
