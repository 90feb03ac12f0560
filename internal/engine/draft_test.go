package engine_test

import (
	"strings"
	"testing"

	"github.com/jonesrussell/siteleads/internal/domain"
	"github.com/jonesrussell/siteleads/internal/engine"
)

func negativeIssue(msg string) domain.Issue {
	return domain.Issue{Kind: domain.KindMissingViewport, Weight: 3, Message: msg, Negative: true}
}

func TestGenerateDraft_ZeroIssuesGenericHook(t *testing.T) {
	t.Parallel()

	res := domain.ScoreResult{URL: "https://example.com", MobileFriendly: true}

	draft := engine.GenerateDraft(res, "Joe's Pizza | Best in Chicago")

	if !strings.Contains(draft.Body, "could use a refresh") {
		t.Errorf("expected generic refresh hook, got body:\n%s", draft.Body)
	}
}

func TestGenerateDraft_SingleIssueNamedInHook(t *testing.T) {
	t.Parallel()

	res := domain.ScoreResult{
		URL:            "https://example.com",
		Issues:         []domain.Issue{negativeIssue("Not mobile responsive")},
		MobileFriendly: true,
	}

	draft := engine.GenerateDraft(res, "Joe's Pizza")

	if !strings.Contains(draft.Body, "I noticed not mobile responsive on your website") {
		t.Errorf("expected the single issue named lower-cased in the hook, got:\n%s", draft.Body)
	}
}

func TestGenerateDraft_MultipleIssuesCountedInHook(t *testing.T) {
	t.Parallel()

	res := domain.ScoreResult{
		URL: "https://example.com",
		Issues: []domain.Issue{
			negativeIssue("Not mobile responsive"),
			negativeIssue("No HTTPS (insecure)"),
			negativeIssue("Uses frames"),
		},
		MobileFriendly: true,
	}

	draft := engine.GenerateDraft(res, "Joe's Pizza")

	if !strings.Contains(draft.Body, "I found 3 issues with your current website") {
		t.Errorf("expected count-based hook, got:\n%s", draft.Body)
	}
}

func TestGenerateDraft_BodyListsAtMostThreeIssuesInOrder(t *testing.T) {
	t.Parallel()

	res := domain.ScoreResult{
		URL: "https://example.com",
		Issues: []domain.Issue{
			negativeIssue("first issue"),
			negativeIssue("second issue"),
			negativeIssue("third issue"),
			negativeIssue("fourth issue"),
		},
		MobileFriendly: true,
	}

	draft := engine.GenerateDraft(res, "Joe's Pizza")

	for _, want := range []string{"• first issue", "• second issue", "• third issue"} {
		if !strings.Contains(draft.Body, want) {
			t.Errorf("expected body to list %q", want)
		}
	}
	if strings.Contains(draft.Body, "fourth issue") {
		t.Error("body must list at most three issues")
	}

	if strings.Index(draft.Body, "first issue") > strings.Index(draft.Body, "second issue") {
		t.Error("issues must keep extractor order")
	}
}

func TestGenerateDraft_InformationalIssuesExcluded(t *testing.T) {
	t.Parallel()

	res := domain.ScoreResult{
		URL: "https://example.com",
		Issues: []domain.Issue{
			{Kind: domain.KindBuilderPlatform, Message: "Built on Wix"},
			{Kind: domain.KindCMSFingerprint, Message: "WordPress site"},
		},
		MobileFriendly: true,
	}

	draft := engine.GenerateDraft(res, "Joe's Pizza")

	if !strings.Contains(draft.Body, "could use a refresh") {
		t.Error("informational issues must not count as pain points")
	}
	if strings.Contains(draft.Body, "Built on Wix") {
		t.Error("informational issues must not be enumerated")
	}
}

func TestGenerateDraft_MobileParagraphAppended(t *testing.T) {
	t.Parallel()

	res := domain.ScoreResult{URL: "https://example.com", MobileFriendly: false}

	draft := engine.GenerateDraft(res, "Joe's Pizza")

	if !strings.Contains(draft.Body, "searching on their phones") {
		t.Error("expected the mobile traffic paragraph for non-mobile-friendly sites")
	}

	res.MobileFriendly = true
	draft = engine.GenerateDraft(res, "Joe's Pizza")

	if strings.Contains(draft.Body, "searching on their phones") {
		t.Error("mobile paragraph must be omitted for mobile-friendly sites")
	}
}

func TestGenerateDraft_BusinessNameFromTitle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		title string
		url   string
		want  string
	}{
		{"pipe separator", "Joe's Pizza | Best in Chicago", "https://joespizza.com", "Joe's Pizza"},
		{"dash separator", "Joe's Pizza - Chicago", "https://joespizza.com", "Joe's Pizza"},
		{"em dash separator", "Joe's Pizza — Chicago", "https://joespizza.com", "Joe's Pizza"},
		{"pipe wins over dash", "Joe's Pizza | Deep-Dish Specialists", "https://joespizza.com", "Joe's Pizza"},
		{"plain title", "Joe's Pizza", "https://joespizza.com", "Joe's Pizza"},
		{
			"overlong name falls back",
			strings.Repeat("Very Long Business Name ", 4),
			"https://example.com",
			"your business",
		},
		{"title equals url falls back", "https://example.com", "https://example.com", "your business"},
		{"empty title falls back", "", "https://example.com", "your business"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res := domain.ScoreResult{URL: tc.url, MobileFriendly: true}
			draft := engine.GenerateDraft(res, tc.title)

			if draft.BusinessName != tc.want {
				t.Errorf("title %q: expected name %q, got %q", tc.title, tc.want, draft.BusinessName)
			}
		})
	}
}

func TestGenerateDraft_Deterministic(t *testing.T) {
	t.Parallel()

	res := domain.ScoreResult{
		URL:    "https://example.com",
		Issues: []domain.Issue{negativeIssue("Not mobile responsive")},
	}

	first := engine.GenerateDraft(res, "Joe's Pizza | Chicago")
	second := engine.GenerateDraft(res, "Joe's Pizza | Chicago")

	if first != second {
		t.Error("draft generation must be deterministic")
	}
}

func TestGenerateDraft_SubjectAndClosing(t *testing.T) {
	t.Parallel()

	res := domain.ScoreResult{URL: "https://joespizza.com", MobileFriendly: true}
	draft := engine.GenerateDraft(res, "Joe's Pizza")

	if draft.Subject != "Quick question about Joe's Pizza's website" {
		t.Errorf("unexpected subject %q", draft.Subject)
	}
	if !strings.Contains(draft.Body, "free site analysis") {
		t.Error("expected the fixed closing call-to-action")
	}
	if !strings.HasPrefix(draft.String(), "Subject: ") {
		t.Error("String() must start with the subject line")
	}
}
