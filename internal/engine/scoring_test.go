package engine_test

import (
	"strings"
	"testing"

	"github.com/jonesrussell/siteleads/internal/domain"
	"github.com/jonesrussell/siteleads/internal/engine"
)

// ---------- AnalyzeDocument (severity, 0-10 ascending) ----------

func TestAnalyzeDocument_ScoreClampedAtTen(t *testing.T) {
	t.Parallel()

	// Four tables, no viewport, http scheme, ancient copyright:
	// 3 + 3 + 2 + 2 = 10 exactly at the clamp boundary.
	content := `<table></table><table></table><table></table><table></table> © 1998`
	res := engine.AnalyzeDocument(docFor("http://old.example.com", content))

	if res.Score != 10 {
		t.Errorf("expected score 10, got %d", res.Score)
	}
}

func TestAnalyzeDocument_ClampedFlagSet(t *testing.T) {
	t.Parallel()

	// Everything fires: raw sum is far above 10.
	res := engine.AnalyzeDocument(docFor("http://old.example.com", ancientHTML))

	if res.Score != domain.SeverityScoreMax {
		t.Errorf("expected clamped score %d, got %d", domain.SeverityScoreMax, res.Score)
	}
	if !res.Clamped {
		t.Error("expected Clamped to be set when the raw sum exceeds the bound")
	}
}

func TestAnalyzeDocument_CleanPageScoresZero(t *testing.T) {
	t.Parallel()

	res := engine.AnalyzeDocument(docFor("https://freshbakery.example", modernHTML))

	if res.Score != 0 {
		t.Errorf("expected score 0 for a clean page, got %d", res.Score)
	}
	if res.Clamped {
		t.Error("clean page must not be marked clamped")
	}
	if !res.MobileFriendly {
		t.Error("expected mobile friendly")
	}
	if !res.Secure {
		t.Error("expected secure transport")
	}
}

func TestAnalyzeDocument_ScoreAlwaysInRange(t *testing.T) {
	t.Parallel()

	contents := []string{
		"",
		modernHTML,
		ancientHTML,
		strings.Repeat("<table>", 100) + "© 1800",
		strings.Repeat("x", 600_000),
	}
	for _, content := range contents {
		for _, url := range []string{"http://a.example", "https://a.example"} {
			res := engine.AnalyzeDocument(docFor(url, content))

			if res.Score < 0 || res.Score > domain.SeverityScoreMax {
				t.Errorf("score %d out of range for url %s", res.Score, url)
			}
		}
	}
}

func TestAnalyzeDocument_OversizedPage(t *testing.T) {
	t.Parallel()

	content := `<meta name="viewport" content="">` + strings.Repeat("x", 600_000)
	res := engine.AnalyzeDocument(docFor("https://heavy.example", content))

	found := false
	for _, issue := range res.Issues {
		if issue.Kind == domain.KindOversizedPage {
			found = true
		}
	}

	if !found {
		t.Fatal("expected oversized page issue")
	}
	if res.PageSizeKB < 580 {
		t.Errorf("expected page size around 586 KB, got %d", res.PageSizeKB)
	}
}

func TestAnalyzeDocument_DegradedDocument(t *testing.T) {
	t.Parallel()

	res := engine.AnalyzeDocument(&domain.Document{URL: "https://gone.example"})

	if res.Score != 2 {
		t.Errorf("expected fixed unreachable score 2, got %d", res.Score)
	}
	if len(res.Issues) != 1 || res.Issues[0].Kind != domain.KindUnreachable {
		t.Fatalf("expected exactly one unreachable issue, got %v", res.Issues)
	}
	if res.MobileFriendly || res.Secure {
		t.Error("degraded document must not report mobile or secure flags")
	}
	if len(res.Emails) != 0 || len(res.Phones) != 0 {
		t.Error("degraded document must not report contacts")
	}
}

func TestAnalyzeDocument_ContactsAttached(t *testing.T) {
	t.Parallel()

	res := engine.AnalyzeDocument(docFor("https://joespizza.example", contactHTML))

	if len(res.Emails) != 2 {
		t.Errorf("expected 2 emails, got %v", res.Emails)
	}
	if len(res.Phones) != 2 {
		t.Errorf("expected 2 phones, got %v", res.Phones)
	}
}

// ---------- ScoreOpportunity (0-100 descending) ----------

func TestScoreOpportunity_NoURLHardOverride(t *testing.T) {
	t.Parallel()

	// Fields other than URL must not influence the override.
	snippets := []string{"", "under construction", "award winning adobe flash site"}
	for _, snippet := range snippets {
		res := engine.ScoreOpportunity("", "Joe's Plumbing - Chicago", snippet)

		if res.Score != 0 {
			t.Errorf("snippet %q: expected score 0, got %d", snippet, res.Score)
		}
		if len(res.Issues) != 1 {
			t.Fatalf("snippet %q: expected exactly one issue, got %v", snippet, res.Issues)
		}
		if res.Issues[0].Message != "No website found" {
			t.Errorf("unexpected issue message %q", res.Issues[0].Message)
		}
	}
}

func TestScoreOpportunity_BuilderPlusParked(t *testing.T) {
	t.Parallel()

	res := engine.ScoreOpportunity("https://joe.wix.com", "Joe's", "under construction")

	// 50 - 15 (builder) - 30 (parked) = 5.
	if res.Score != 5 {
		t.Errorf("expected score 5, got %d", res.Score)
	}
	if len(res.Issues) != 2 {
		t.Fatalf("expected builder and parked issues, got %v", res.Issues)
	}
	if res.Issues[0].Kind != domain.KindBuilderPlatform {
		t.Errorf("domain rules must fire before snippet rules, got %v first", res.Issues[0])
	}
}

func TestScoreOpportunity_SocialProfileOnly(t *testing.T) {
	t.Parallel()

	res := engine.ScoreOpportunity("https://www.facebook.com/joesplumbing", "Joe's", "")

	if res.Score != 25 {
		t.Errorf("expected 50-25=25, got %d", res.Score)
	}
	if res.Issues[0].Kind != domain.KindSocialOrDirectory {
		t.Errorf("expected social/directory issue, got %v", res.Issues[0])
	}
}

func TestScoreOpportunity_FreeHostedSubdomain(t *testing.T) {
	t.Parallel()

	res := engine.ScoreOpportunity("https://joes-pizza.wordpress.com", "Joe's", "")

	if res.Score != 40 {
		t.Errorf("expected 50-10=40, got %d", res.Score)
	}
	if res.Issues[0].Kind != domain.KindFreeHostSubdomain {
		t.Errorf("expected free-host issue, got %v", res.Issues[0])
	}
}

func TestScoreOpportunity_LegacyTechSnippet(t *testing.T) {
	t.Parallel()

	res := engine.ScoreOpportunity("https://joesplumbing.com", "Joe's",
		"This site requires Adobe Flash Player to view.")

	if res.Score != 25 {
		t.Errorf("expected 50-25=25, got %d", res.Score)
	}
}

func TestScoreOpportunity_CumulativeRulesClampAtZero(t *testing.T) {
	t.Parallel()

	res := engine.ScoreOpportunity("https://joe.wix.com", "Joe's",
		"coming soon - requires adobe flash")

	// 50 - 15 - 30 - 25 = -20, clamped to 0.
	if res.Score != 0 {
		t.Errorf("expected clamp at 0, got %d", res.Score)
	}
	if !res.Clamped {
		t.Error("expected Clamped flag when the raw score goes negative")
	}
}

func TestScoreOpportunity_HealthySiteGetsReviewNote(t *testing.T) {
	t.Parallel()

	res := engine.ScoreOpportunity("https://joesplumbing.com", "Joe's Plumbing", "Chicago plumber since 1985")

	if res.Score != domain.OpportunityBaseline {
		t.Errorf("expected untouched baseline %d, got %d", domain.OpportunityBaseline, res.Score)
	}
	if len(res.Issues) != 1 || res.Issues[0].Kind != domain.KindManualReview {
		t.Fatalf("expected single manual-review note, got %v", res.Issues)
	}
	if res.Issues[0].Negative {
		t.Error("manual-review note must be informational")
	}
}

func TestScoreOpportunity_ScoreAlwaysInRange(t *testing.T) {
	t.Parallel()

	cases := []struct{ url, snippet string }{
		{"", ""},
		{"https://joe.wix.com", "under construction requires flash silverlight parked domain"},
		{"https://www.yelp.com/biz/joes", "coming soon"},
		{"example.com", ""},
		{"://bad url::", "under construction"},
	}
	for _, tc := range cases {
		res := engine.ScoreOpportunity(tc.url, "title", tc.snippet)

		if res.Score < domain.OpportunityScoreMin || res.Score > domain.OpportunityScoreMax {
			t.Errorf("url %q: score %d out of range", tc.url, res.Score)
		}
		if len(res.Issues) == 0 {
			t.Errorf("url %q: every result must carry at least one issue", tc.url)
		}
	}
}
