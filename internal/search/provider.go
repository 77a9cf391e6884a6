package search

import "careerpilot/pkg/models"

// Provider defines the interface for web search providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// SearchWeb performs a web search and returns results in provider order
	SearchWeb(query string, maxResults int, region string) ([]models.SearchResult, error)

	// SearchNews performs a news search and returns results in provider order
	SearchNews(query string, maxResults int, region string) ([]models.SearchResult, error)
}
