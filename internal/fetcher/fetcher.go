// Package fetcher retrieves web pages and converts them into immutable
// documents for the analysis engine. Fetch failures never propagate into
// the engine: callers turn them into degraded documents with Degraded.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jonesrussell/siteleads/internal/domain"
)

// maxResponseBodyBytes limits the size of fetched page responses.
const maxResponseBodyBytes = 10 * 1024 * 1024 // 10 MB

// DefaultTimeout bounds a single page fetch when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// Fetcher retrieves a single page. Implementations own all transport
// concerns: timeouts, redirects, and retry policy if any.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*domain.Document, error)
}

// Config configures the HTTP fetcher.
type Config struct {
	// Timeout bounds a single fetch including redirects
	Timeout time.Duration
	// UserAgent is sent with every request
	UserAgent string
}

// HTTPFetcher fetches pages over HTTP with a bounded client.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher creates a fetcher with the given configuration.
func NewHTTPFetcher(cfg Config) *HTTPFetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: cfg.UserAgent,
	}
}

// NormalizeURL prefixes bare hosts with https:// so users can pass
// "joespizza.com" as well as full URLs.
func NormalizeURL(rawURL string) string {
	if strings.HasPrefix(rawURL, "http") {
		return rawURL
	}

	return "https://" + rawURL
}

// Fetch retrieves the page at rawURL, following redirects. The returned
// document's URL is the final resolved URL, which scoring inspects for
// the transport scheme.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*domain.Document, error) {
	target := NormalizeURL(rawURL)

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %w", reqErr)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, doErr := f.client.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("http fetch: %w", doErr)
	}
	defer resp.Body.Close()

	limited := io.LimitReader(resp.Body, maxResponseBodyBytes)

	body, readErr := io.ReadAll(limited)
	if readErr != nil {
		return nil, fmt.Errorf("read response body: %w", readErr)
	}

	return buildDocument(resp.Request.URL.String(), resp.StatusCode, body), nil
}
