// Package engine implements the website quality assessment and
// lead-scoring core: signal extraction, contact extraction, the two
// scoring policies, and outreach draft generation. Everything in this
// package is a pure function of its inputs.
package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonesrussell/siteleads/internal/domain"
)

// Signal rule thresholds.
const (
	// tableLayoutThreshold is how many <table tags a page may contain
	// before it counts as a table-based layout.
	tableLayoutThreshold = 3

	// oversizedPageBytes is the content length beyond which a page is
	// flagged as very heavy.
	oversizedPageBytes = 500_000

	// staleCopyrightCutoff is the first year that does NOT count as a
	// stale copyright.
	staleCopyrightCutoff = 2022
)

// Severity weights per signal rule. Evaluation order is fixed; the sum is
// clamped to domain.SeverityScoreMax.
const (
	weightNoViewport   = 3
	weightNoHTTPS      = 2
	weightTableLayout  = 3
	weightMarquee      = 4
	weightFrames       = 5
	weightFlash        = 5
	weightBadFonts     = 3
	weightOldCopyright = 2
	weightHeavyPage    = 1
	weightUnderConstr  = 2
	weightUnreachable  = 2
)

// copyrightYearPattern matches a copyright marker followed by a year,
// e.g. "© 1998" or "copyright 2019".
var copyrightYearPattern = regexp.MustCompile(`(?:©|copyright)\s*(\d{4})`)

// builderFingerprints map a page content marker to the builder platform
// name. Order matters for deterministic issue output.
var builderFingerprints = []struct {
	marker string
	name   string
}{
	{"wix.com", "Wix"},
	{"squarespace", "Squarespace"},
	{"weebly", "Weebly"},
}

// maintenancePhrases are placeholder texts that indicate an unfinished site.
var maintenancePhrases = []string{
	"under construction",
	"coming soon",
}

// ExtractSignals scans a document's content for structural and technology
// signals and returns one Issue per fired rule, in fixed rule order.
// It is total over any content, including empty documents.
func ExtractSignals(doc *domain.Document) []domain.Issue {
	lower := strings.ToLower(doc.Content)

	var issues []domain.Issue

	if !hasViewportTag(lower) {
		issues = append(issues, domain.Issue{
			Kind:     domain.KindMissingViewport,
			Weight:   weightNoViewport,
			Message:  "Not mobile responsive",
			Negative: true,
		})
	}

	if !strings.HasPrefix(doc.URL, "https") {
		issues = append(issues, domain.Issue{
			Kind:     domain.KindInsecureTransport,
			Weight:   weightNoHTTPS,
			Message:  "No HTTPS (insecure)",
			Negative: true,
		})
	}

	if strings.Count(lower, "<table") > tableLayoutThreshold {
		issues = append(issues, domain.Issue{
			Kind:     domain.KindTableLayout,
			Weight:   weightTableLayout,
			Message:  "Table-based layout (very outdated)",
			Negative: true,
		})
	}

	if strings.Contains(lower, "<marquee") {
		issues = append(issues, domain.Issue{
			Kind:     domain.KindDeprecatedMarkup,
			Weight:   weightMarquee,
			Message:  "Uses <marquee> (ancient)",
			Negative: true,
		})
	}

	if strings.Contains(lower, "<frame") {
		issues = append(issues, domain.Issue{
			Kind:     domain.KindDeprecatedMarkup,
			Weight:   weightFrames,
			Message:  "Uses frames",
			Negative: true,
		})
	}

	// Flash needs both the generic keyword and a plugin-specific token,
	// otherwise the word "flash" alone would misfire on e.g. "flash sale".
	if strings.Contains(lower, "flash") &&
		(strings.Contains(lower, ".swf") || strings.Contains(lower, "swfobject")) {
		issues = append(issues, domain.Issue{
			Kind:     domain.KindLegacyPlugin,
			Weight:   weightFlash,
			Message:  "Uses Flash",
			Negative: true,
		})
	}

	if strings.Contains(lower, "comic sans") || strings.Contains(lower, "papyrus") {
		issues = append(issues, domain.Issue{
			Kind:     domain.KindPoorTypography,
			Weight:   weightBadFonts,
			Message:  "Comic Sans / Papyrus font",
			Negative: true,
		})
	}

	if year, found := firstStaleCopyrightYear(lower); found {
		issues = append(issues, domain.Issue{
			Kind:     domain.KindStaleCopyright,
			Weight:   weightOldCopyright,
			Message:  "Copyright year: " + strconv.Itoa(year),
			Negative: true,
		})
	}

	if len(doc.Content) > oversizedPageBytes {
		issues = append(issues, domain.Issue{
			Kind:    domain.KindOversizedPage,
			Weight:  weightHeavyPage,
			Message: "Very heavy page (slow load)",
		})
	}

	if containsAny(lower, maintenancePhrases) {
		issues = append(issues, domain.Issue{
			Kind:     domain.KindMaintenancePage,
			Weight:   weightUnderConstr,
			Message:  "Under construction / coming soon",
			Negative: true,
		})
	}

	for _, b := range builderFingerprints {
		if strings.Contains(lower, b.marker) {
			issues = append(issues, domain.Issue{
				Kind:    domain.KindBuilderPlatform,
				Message: "Built on " + b.name,
			})
		}
	}

	issues = append(issues, wordpressIssues(lower)...)

	return issues
}

// hasViewportTag reports whether the page declares a mobile viewport.
func hasViewportTag(lower string) bool {
	return strings.Contains(lower, `<meta name="viewport"`)
}

// firstStaleCopyrightYear returns the first copyright year found that is
// older than the cutoff. Scanning stops at the first qualifying match;
// newer years are skipped without ending the scan.
func firstStaleCopyrightYear(lower string) (year int, found bool) {
	for _, m := range copyrightYearPattern.FindAllStringSubmatch(lower, -1) {
		yr, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		if yr < staleCopyrightCutoff {
			return yr, true
		}
	}

	return 0, false
}

// wordpressIssues detects a WordPress install. The secondary default-theme
// check is informational only: its guard in the reference behavior is
// self-contradictory and can never add weight, so it is not carried as a
// scoring rule.
func wordpressIssues(lower string) []domain.Issue {
	if !strings.Contains(lower, "wp-content") {
		return nil
	}

	return []domain.Issue{{
		Kind:    domain.KindCMSFingerprint,
		Message: "WordPress site",
	}}
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
