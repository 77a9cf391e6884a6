package models

// SearchResult represents a single result returned by the web search provider.
// When the provider is unavailable or fails, exactly one result carrying only
// Error is returned in place of normal results, so orchestration continues
// with degraded rather than absent search data. Callers must check IsError
// before reading the other fields.
type SearchResult struct {
	Title   string `json:"title,omitempty"`
	URL     string `json:"url,omitempty"`
	Snippet string `json:"snippet,omitempty"`
	Source  string `json:"source,omitempty"`
	Date    string `json:"date,omitempty"`
	Error   string `json:"error,omitempty"`
}

// IsError reports whether the result is the error-shaped variant.
func (r SearchResult) IsError() bool {
	return r.Error != ""
}
