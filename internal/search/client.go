package search

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"careerpilot/internal/config"
	"careerpilot/internal/logging"
	"careerpilot/pkg/models"
)

// Client wraps a search provider behind a uniform, non-failing surface.
// Any provider failure (or a missing provider) is converted into a
// single-element result list carrying only an error message, so callers can
// detect degraded search without a separate error channel.
type Client struct {
	provider   Provider
	limiter    *rate.Limiter
	maxResults int
	region     string
	timeout    time.Duration
}

// NewClient creates a new search client. The provider may be nil when no
// search credential is configured; searches then degrade in-band.
func NewClient(cfg *config.Config, provider Provider) *Client {
	region := cfg.Search.Region
	if region == "" {
		region = RegionWorldwide
	}

	timeout := cfg.Search.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		provider:   provider,
		limiter:    rate.NewLimiter(rate.Every(cfg.Search.QueryPause), 1),
		maxResults: cfg.Search.MaxResults,
		region:     region,
		timeout:    timeout,
	}
}

type searchOutcome struct {
	results []models.SearchResult
	err     error
}

// callProvider runs one provider call under the configured deadline. The
// provider API has no context support, so a timed-out call is abandoned
// rather than cancelled.
func (c *Client) callProvider(ctx context.Context, call func() ([]models.SearchResult, error)) ([]models.SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	ch := make(chan searchOutcome, 1)
	go func() {
		results, err := call()
		ch <- searchOutcome{results: results, err: err}
	}()

	select {
	case out := <-ch:
		return out.results, out.err
	case <-ctx.Done():
		return nil, fmt.Errorf("search timed out after %s: %w", c.timeout, ctx.Err())
	}
}

// SearchWeb performs a web search. It never fails: provider errors are
// returned as a single error-shaped result.
func (c *Client) SearchWeb(ctx context.Context, query string) []models.SearchResult {
	if c.provider == nil {
		return []models.SearchResult{{Error: "search provider not available - configure SERPAPI_API_KEY"}}
	}

	results, err := c.callProvider(ctx, func() ([]models.SearchResult, error) {
		return c.provider.SearchWeb(query, c.maxResults, c.region)
	})
	if err != nil {
		return []models.SearchResult{{Error: fmt.Sprintf("search failed: %v", err)}}
	}

	return results
}

// SearchNews performs a news search with the same degraded-failure contract
// as SearchWeb.
func (c *Client) SearchNews(ctx context.Context, query string) []models.SearchResult {
	if c.provider == nil {
		return []models.SearchResult{{Error: "search provider not available - configure SERPAPI_API_KEY"}}
	}

	results, err := c.callProvider(ctx, func() ([]models.SearchResult, error) {
		return c.provider.SearchNews(query, c.maxResults, c.region)
	})
	if err != nil {
		return []models.SearchResult{{Error: fmt.Sprintf("news search failed: %v", err)}}
	}

	return results
}

// jobQueryTemplates are the fixed query variants issued per job search: the
// plain English query, two localized French variants, and one site-scoped
// variant per targeted job board.
var jobQueryTemplates = []string{
	"%s jobs %s",
	"%s emploi %s",
	"%s offre %s",
	"site:linkedin.com/jobs %s %s",
	"site:indeed.com %s %s",
}

// SearchJobListings issues one web search per query template, pacing calls
// with the configured inter-query pause to reduce provider throttling risk,
// and concatenates the result lists. Duplicates across variants are kept;
// de-duplication is delegated to the generation step downstream.
func (c *Client) SearchJobListings(ctx context.Context, jobTitle, location string) []models.SearchResult {
	logger := logging.GetGlobalLogger()

	var all []models.SearchResult
	for _, tmpl := range jobQueryTemplates {
		if err := c.limiter.Wait(ctx); err != nil {
			all = append(all, models.SearchResult{Error: fmt.Sprintf("search cancelled: %v", err)})
			break
		}

		query := fmt.Sprintf(tmpl, jobTitle, location)
		logger.Debug("Issuing job search query", map[string]interface{}{"query": query})

		all = append(all, c.SearchWeb(ctx, query)...)
	}

	return all
}
