package engine

import (
	"net/url"
	"strings"

	"github.com/jonesrussell/siteleads/internal/domain"
)

// Opportunity penalties per rule. Each fired rule subtracts its penalty
// from domain.OpportunityBaseline; the result is clamped into
// [domain.OpportunityScoreMin, domain.OpportunityScoreMax].
const (
	penaltyBuilderHost   = 15
	penaltySocialHost    = 25
	penaltyFreeSubdomain = 10
	penaltyParkedSite    = 30
	penaltyLegacyTech    = 25
)

// builderHosts are low-cost website-builder platforms. A business whose
// only web presence lives on one of these is a rebuild candidate.
var builderHosts = []string{
	"wix.com",
	"squarespace.com",
	"weebly.com",
}

// socialOrDirectoryHosts indicate the business has no dedicated site,
// only a profile on a social network or listing directory.
var socialOrDirectoryHosts = []string{
	"facebook.com",
	"instagram.com",
	"yelp.com",
	"linkedin.com",
	"yellowpages.com",
}

// freeHostSuffix marks free-hosted CMS subdomains like joes-pizza.wordpress.com.
const freeHostSuffix = ".wordpress.com"

// parkedSnippetPhrases in a search snippet mean the site is a placeholder.
var parkedSnippetPhrases = []string{
	"under construction",
	"coming soon",
	"domain is parked",
	"parked domain",
}

// legacyTechSnippetKeywords in a search snippet indicate dead plugin tech.
var legacyTechSnippetKeywords = []string{
	"adobe flash",
	"flash player",
	"requires flash",
	"silverlight",
}

// ScoreOpportunity ranks a business from sparse search-result metadata on
// the lead-opportunity scale: 0-100 descending, where a lower score means
// a worse site and therefore a hotter sales lead.
//
// A missing URL is a hard override: score 0 with a single "no website"
// issue, skipping every other rule. Otherwise domain rules are evaluated
// before snippet rules, all matching rules apply cumulatively, and the
// final score is clamped. When no rule fires, one informational issue
// notes that the site exists and may need manual review.
func ScoreOpportunity(rawURL, title, snippet string) domain.ScoreResult {
	if strings.TrimSpace(rawURL) == "" {
		return domain.ScoreResult{
			Score: domain.OpportunityScoreMin,
			Issues: []domain.Issue{{
				Kind:     domain.KindNoWebsite,
				Weight:   domain.OpportunityBaseline,
				Message:  "No website found",
				Negative: true,
			}},
		}
	}

	host := hostOf(rawURL)
	lowerSnippet := strings.ToLower(snippet)

	score := domain.OpportunityBaseline

	var issues []domain.Issue

	if matchesHost(host, builderHosts) {
		score -= penaltyBuilderHost
		issues = append(issues, domain.Issue{
			Kind:     domain.KindBuilderPlatform,
			Weight:   penaltyBuilderHost,
			Message:  "Hosted on a website builder",
			Negative: true,
		})
	}

	if matchesHost(host, socialOrDirectoryHosts) {
		score -= penaltySocialHost
		issues = append(issues, domain.Issue{
			Kind:     domain.KindSocialOrDirectory,
			Weight:   penaltySocialHost,
			Message:  "No dedicated site, only a social or directory profile",
			Negative: true,
		})
	}

	if strings.HasSuffix(host, freeHostSuffix) {
		score -= penaltyFreeSubdomain
		issues = append(issues, domain.Issue{
			Kind:     domain.KindFreeHostSubdomain,
			Weight:   penaltyFreeSubdomain,
			Message:  "Free-hosted subdomain",
			Negative: true,
		})
	}

	if containsAny(lowerSnippet, parkedSnippetPhrases) {
		score -= penaltyParkedSite
		issues = append(issues, domain.Issue{
			Kind:     domain.KindMaintenancePage,
			Weight:   penaltyParkedSite,
			Message:  "Site appears parked or under construction",
			Negative: true,
		})
	}

	if containsAny(lowerSnippet, legacyTechSnippetKeywords) {
		score -= penaltyLegacyTech
		issues = append(issues, domain.Issue{
			Kind:     domain.KindStaleTechSnippet,
			Weight:   penaltyLegacyTech,
			Message:  "Built on legacy plugin technology",
			Negative: true,
		})
	}

	if len(issues) == 0 {
		issues = append(issues, domain.Issue{
			Kind:    domain.KindManualReview,
			Message: "Site exists, may need manual review",
		})
	}

	clamped := false
	if score < domain.OpportunityScoreMin {
		score = domain.OpportunityScoreMin
		clamped = true
	}
	if score > domain.OpportunityScoreMax {
		score = domain.OpportunityScoreMax
		clamped = true
	}

	return domain.ScoreResult{
		URL:     rawURL,
		Score:   score,
		Clamped: clamped,
		Issues:  issues,
	}
}

// hostOf extracts the lowercased host from a raw URL, tolerating bare
// hosts without a scheme. It never fails: unparseable input falls back to
// the lowercased raw string so substring rules still apply.
func hostOf(rawURL string) string {
	candidate := rawURL
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}

	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Host == "" {
		return strings.ToLower(rawURL)
	}

	return strings.ToLower(parsed.Host)
}

// matchesHost reports whether host equals or is a subdomain of any entry.
func matchesHost(host string, entries []string) bool {
	for _, entry := range entries {
		if host == entry || strings.HasSuffix(host, "."+entry) {
			return true
		}
	}

	return false
}
