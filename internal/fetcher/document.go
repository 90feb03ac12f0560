package fetcher

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/siteleads/internal/domain"
)

// Caps applied to extracted page metadata.
const (
	maxTitleLen       = 120
	maxDescriptionLen = 200
)

// buildDocument assembles an immutable document from a fetched response,
// extracting the page title and meta description.
func buildDocument(finalURL string, statusCode int, body []byte) *domain.Document {
	content := string(body)

	doc := &domain.Document{
		URL:           finalURL,
		Content:       content,
		StatusCode:    statusCode,
		ContentLength: len(content),
		Title:         finalURL,
	}

	parsed, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return doc
	}

	if title := extractPageTitle(parsed); title != "" {
		doc.Title = truncate(title, maxTitleLen)
	}
	doc.Description = truncate(extractMetaDescription(parsed), maxDescriptionLen)

	return doc
}

// Degraded converts a failed fetch into a document the engine can still
// score: empty content and a zero status, which analysis maps to the
// unreachable result. Batches keep running instead of aborting.
func Degraded(rawURL string) *domain.Document {
	return &domain.Document{
		URL:   NormalizeURL(rawURL),
		Title: "Error",
	}
}

// extractPageTitle extracts the page title, preferring <title> then
// og:title fallback.
func extractPageTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}

	if ogTitle, exists := doc.Find("meta[property='og:title']").Attr("content"); exists {
		return strings.TrimSpace(ogTitle)
	}

	return ""
}

// extractMetaDescription extracts the description from meta tags.
func extractMetaDescription(doc *goquery.Document) string {
	if desc, exists := doc.Find("meta[name='description']").Attr("content"); exists {
		return strings.TrimSpace(desc)
	}

	if ogDesc, exists := doc.Find("meta[property='og:description']").Attr("content"); exists {
		return strings.TrimSpace(ogDesc)
	}

	return ""
}

// truncate shortens s to at most limit bytes.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit]
}
