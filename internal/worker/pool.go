// Package worker runs batches of independent site analyses with bounded
// parallelism. Each analysis is a pure computation over its own fetched
// document, so workers share no state and need no locking.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/jonesrussell/siteleads/internal/domain"
	"github.com/jonesrussell/siteleads/internal/engine"
	"github.com/jonesrussell/siteleads/internal/fetcher"
	"github.com/jonesrussell/siteleads/internal/logger"
)

// DefaultConcurrency is used when the configured concurrency is not positive.
const DefaultConcurrency = 4

// Pool fans a list of URLs out to a bounded set of analysis workers.
type Pool struct {
	fetcher     fetcher.Fetcher
	log         logger.Interface
	concurrency int
	now         func() time.Time
}

// NewPool creates an analysis pool.
func NewPool(f fetcher.Fetcher, log logger.Interface, concurrency int) *Pool {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}

	return &Pool{
		fetcher:     f,
		log:         log,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// indexedURL carries a URL together with its submission position.
type indexedURL struct {
	index int
	url   string
}

// AnalyzeURLs fetches and analyzes every URL with bounded parallelism and
// returns one lead per input. Results come back in submission order even
// though processing order is unordered; callers that want score order
// sort afterwards. Fetch failures degrade to unreachable results rather
// than failing the batch. Cancelling ctx stops dispatch of remaining URLs.
func (p *Pool) AnalyzeURLs(ctx context.Context, urls []string) []domain.Lead {
	jobs := make(chan indexedURL)
	results := make([]domain.Lead, len(urls))

	var wg sync.WaitGroup

	workers := min(p.concurrency, len(urls))
	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for job := range jobs {
				results[job.index] = p.analyzeOne(ctx, job)
			}
		}()
	}

	for i, u := range urls {
		select {
		case <-ctx.Done():
			// Mark everything not yet dispatched as unreachable so the
			// batch report still has a row per input.
			for j := i; j < len(urls); j++ {
				results[j] = p.degradedLead(urls[j], j)
			}
			close(jobs)
			wg.Wait()

			return results
		case jobs <- indexedURL{index: i, url: u}:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

// analyzeOne runs the full single-site pipeline for one URL.
func (p *Pool) analyzeOne(ctx context.Context, job indexedURL) domain.Lead {
	p.log.Info("analyzing site", "url", job.url)

	doc, err := p.fetcher.Fetch(ctx, job.url)
	if err != nil {
		p.log.Warn("fetch failed, continuing with degraded document",
			"url", job.url, "error", err.Error())

		doc = fetcher.Degraded(job.url)
	}

	result := engine.AnalyzeDocument(doc)
	draft := engine.GenerateDraft(result, doc.Title)

	return domain.Lead{
		URL:         doc.URL,
		Title:       doc.Title,
		Description: doc.Description,
		Result:      result,
		Draft:       draft,
		Index:       job.index,
		AnalyzedAt:  p.now(),
	}
}

// ScoreLeads runs the opportunity scorer over search-result metadata.
// No fetching happens, so the batch runs inline. Results keep input order.
func (p *Pool) ScoreLeads(metas []domain.LeadMetadata) []domain.Lead {
	results := make([]domain.Lead, len(metas))
	for i, meta := range metas {
		result := engine.ScoreOpportunity(meta.URL, meta.Title, meta.Snippet)

		results[i] = domain.Lead{
			URL:         meta.URL,
			Title:       meta.Title,
			Description: meta.Snippet,
			Result:      result,
			Draft:       engine.GenerateDraft(result, meta.Title),
			Index:       i,
			AnalyzedAt:  p.now(),
		}
	}

	return results
}

// degradedLead builds the unreachable lead for an undispatched URL.
func (p *Pool) degradedLead(rawURL string, index int) domain.Lead {
	doc := fetcher.Degraded(rawURL)
	result := engine.AnalyzeDocument(doc)

	return domain.Lead{
		URL:        doc.URL,
		Title:      doc.Title,
		Result:     result,
		Draft:      engine.GenerateDraft(result, doc.Title),
		Index:      index,
		AnalyzedAt: p.now(),
	}
}
