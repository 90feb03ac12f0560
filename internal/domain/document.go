// Package domain provides domain models used across the application.
package domain

// Document is a fetched web page handed to the analysis engine.
// It is constructed once by the fetcher and never mutated afterwards.
type Document struct {
	// URL is the final resolved URL after redirects
	URL string `json:"url" mapstructure:"url"`
	// Content is the raw page body as text
	Content string `json:"-" mapstructure:"-"`
	// StatusCode is the HTTP status of the fetch, 0 when the fetch failed
	StatusCode int `json:"status" mapstructure:"status"`
	// ContentLength is the size of Content in bytes
	ContentLength int `json:"content_length" mapstructure:"content_length"`
	// Title is the page title, capped at 120 characters
	Title string `json:"title" mapstructure:"title"`
	// Description is the meta description, capped at 200 characters
	Description string `json:"description,omitempty" mapstructure:"description"`
}

// Reachable reports whether the document represents a successful fetch.
// A degraded document produced from a fetch failure has StatusCode 0.
func (d *Document) Reachable() bool {
	return d.StatusCode != 0
}

// LeadMetadata is a sparse search-result record scored in batch lead mode.
// Unlike Document it carries no page content, only listing metadata.
type LeadMetadata struct {
	// Title is the business or listing title
	Title string `json:"title" mapstructure:"title"`
	// URL is the candidate website URL, may be empty when the business
	// has no site at all
	URL string `json:"url" mapstructure:"url"`
	// Snippet is the free-text search result snippet
	Snippet string `json:"snippet" mapstructure:"snippet"`
	// Location is an optional business location hint
	Location string `json:"location,omitempty" mapstructure:"location"`
}
