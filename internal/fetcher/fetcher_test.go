package fetcher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonesrussell/siteleads/internal/fetcher"
)

const testPageHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Joe's Pizza | Best in Chicago</title>
  <meta name="description" content="Family-owned pizzeria since 1985.">
</head>
<body><p>Welcome!</p></body>
</html>`

func TestFetch_BuildsDocument(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(testPageHTML))
	}))
	defer srv.Close()

	f := fetcher.NewHTTPFetcher(fetcher.Config{UserAgent: "test-agent"})

	doc, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", doc.StatusCode)
	}
	if doc.Title != "Joe's Pizza | Best in Chicago" {
		t.Errorf("unexpected title %q", doc.Title)
	}
	if doc.Description != "Family-owned pizzeria since 1985." {
		t.Errorf("unexpected description %q", doc.Description)
	}
	if doc.ContentLength != len(testPageHTML) {
		t.Errorf("expected content length %d, got %d", len(testPageHTML), doc.ContentLength)
	}
}

func TestFetch_FollowsRedirectsToFinalURL(t *testing.T) {
	t.Parallel()

	var target string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.Redirect(w, r, target+"/landed", http.StatusMovedPermanently)
			return
		}
		_, _ = w.Write([]byte("<html><body>landed</body></html>"))
	}))
	defer srv.Close()
	target = srv.URL

	f := fetcher.NewHTTPFetcher(fetcher.Config{})

	doc, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.URL != srv.URL+"/landed" {
		t.Errorf("expected final resolved URL, got %q", doc.URL)
	}
}

func TestFetch_SendsUserAgent(t *testing.T) {
	t.Parallel()

	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := fetcher.NewHTTPFetcher(fetcher.Config{UserAgent: "siteleads-test"})

	if _, err := f.Fetch(context.Background(), srv.URL); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAgent != "siteleads-test" {
		t.Errorf("expected custom user agent, got %q", gotAgent)
	}
}

func TestFetch_ErrorOnUnreachableHost(t *testing.T) {
	t.Parallel()

	f := fetcher.NewHTTPFetcher(fetcher.Config{})

	// Reserved TLD, guaranteed not to resolve.
	_, err := f.Fetch(context.Background(), "https://nothing.invalid")
	if err == nil {
		t.Fatal("expected an error for an unreachable host")
	}
}

func TestDegraded_ProducesUnreachableDocument(t *testing.T) {
	t.Parallel()

	doc := fetcher.Degraded("joespizza.com")

	if doc.Reachable() {
		t.Error("degraded document must not be reachable")
	}
	if doc.URL != "https://joespizza.com" {
		t.Errorf("expected normalized URL, got %q", doc.URL)
	}
	if doc.Content != "" {
		t.Error("degraded document must carry no content")
	}
}

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"joespizza.com":         "https://joespizza.com",
		"http://joespizza.com":  "http://joespizza.com",
		"https://joespizza.com": "https://joespizza.com",
	}
	for in, want := range cases {
		if got := fetcher.NormalizeURL(in); got != want {
			t.Errorf("NormalizeURL(%q): expected %q, got %q", in, want, got)
		}
	}
}
