package search

import (
	"fmt"
	"strconv"

	g "github.com/serpapi/google-search-results-golang"

	"careerpilot/internal/config"
	"careerpilot/pkg/models"
)

// RegionWorldwide is the sentinel region meaning no geographic restriction.
const RegionWorldwide = "wt-wt"

// SerpAPIProvider implements the Provider interface on top of SerpApi's
// Google search engines.
type SerpAPIProvider struct {
	apiKey string
}

// NewSerpAPIProvider creates a new SerpApi provider instance
func NewSerpAPIProvider(cfg *config.Config) *SerpAPIProvider {
	return &SerpAPIProvider{
		apiKey: cfg.Search.APIKey,
	}
}

// Name returns the provider name
func (p *SerpAPIProvider) Name() string {
	return "serpapi"
}

// SearchWeb performs a Google web search via SerpApi
func (p *SerpAPIProvider) SearchWeb(query string, maxResults int, region string) ([]models.SearchResult, error) {
	parameter := p.baseParameters(query, maxResults, region)

	search := g.NewGoogleSearch(parameter, p.apiKey)
	data, err := search.GetJSON()
	if err != nil {
		return nil, fmt.Errorf("serpapi web search failed: %w", err)
	}

	organic, ok := data["organic_results"].([]interface{})
	if !ok {
		return []models.SearchResult{}, nil
	}

	var results []models.SearchResult
	for _, item := range organic {
		res, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		title, _ := res["title"].(string)
		link, _ := res["link"].(string)
		snippet, _ := res["snippet"].(string)
		date, _ := res["date"].(string)

		if title == "" || link == "" {
			continue
		}

		results = append(results, models.SearchResult{
			Title:   title,
			URL:     link,
			Snippet: snippet,
			Source:  "Google",
			Date:    date,
		})
	}

	return results, nil
}

// SearchNews performs a Google News search via SerpApi
func (p *SerpAPIProvider) SearchNews(query string, maxResults int, region string) ([]models.SearchResult, error) {
	parameter := p.baseParameters(query, maxResults, region)
	parameter["tbm"] = "nws"

	search := g.NewGoogleSearch(parameter, p.apiKey)
	data, err := search.GetJSON()
	if err != nil {
		return nil, fmt.Errorf("serpapi news search failed: %w", err)
	}

	news, ok := data["news_results"].([]interface{})
	if !ok {
		return []models.SearchResult{}, nil
	}

	var results []models.SearchResult
	for _, item := range news {
		res, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		title, _ := res["title"].(string)
		link, _ := res["link"].(string)
		snippet, _ := res["snippet"].(string)
		date, _ := res["date"].(string)
		source, _ := res["source"].(string)

		if title == "" || link == "" {
			continue
		}

		if source == "" {
			source = "Google News"
		}

		results = append(results, models.SearchResult{
			Title:   title,
			URL:     link,
			Snippet: snippet,
			Source:  source,
			Date:    date,
		})
	}

	return results, nil
}

// baseParameters builds the common SerpApi query parameters. The worldwide
// sentinel region maps to no geographic restriction.
func (p *SerpAPIProvider) baseParameters(query string, maxResults int, region string) map[string]string {
	parameter := map[string]string{
		"engine": "google",
		"q":      query,
		"num":    strconv.Itoa(maxResults),
	}

	if region != "" && region != RegionWorldwide {
		parameter["gl"] = region
	}

	return parameter
}
