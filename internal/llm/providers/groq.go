package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"careerpilot/internal/config"
	"careerpilot/internal/logging"
	"careerpilot/pkg/models"
)

// GroqProvider implements the generation provider interface against an
// OpenAI-compatible chat-completions endpoint (Groq Cloud by default).
type GroqProvider struct {
	client  *http.Client
	apiKey  string
	baseURL string
	config  *config.Config
}

// chatCompletionRequest is the OpenAI-compatible request payload
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

// chatMessage represents a message in the chat-completions payload
type chatMessage struct {
	Role    string `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

// chatCompletionResponse is the subset of the response payload this service
// reads.
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewGroqProvider creates a new Groq provider instance
func NewGroqProvider(cfg *config.Config) *GroqProvider {
	return &GroqProvider{
		client: &http.Client{
			Timeout: cfg.LLM.Timeout,
		},
		apiKey:  cfg.LLM.APIKey,
		baseURL: strings.TrimRight(cfg.LLM.BaseURL, "/"),
		config:  cfg,
	}
}

// Complete sends a single synchronous chat-completion request and returns
// the first completion's text content unmodified. No retries, no streaming.
func (gp *GroqProvider) Complete(ctx context.Context, req models.GenerationRequest) (string, error) {
	startTime := time.Now()
	logger := logging.GetGlobalLogger()

	payload := chatCompletionRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemInstructions},
			{Role: "user", Content: req.UserPrompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, gp.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+gp.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := gp.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: status %d: %s", ErrProviderUnavailable, resp.StatusCode, string(detail))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: response has no choices", ErrMalformedResponse)
	}

	content := completion.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("%w: first choice has no content", ErrMalformedResponse)
	}

	logger.Debug("Chat completion finished", map[string]interface{}{
		"provider":        "groq",
		"model":           req.Model,
		"processing_time": time.Since(startTime),
		"response_length": len(content),
	})

	return content, nil
}

// IsHealthy checks if the chat-completion endpoint is reachable
func (gp *GroqProvider) IsHealthy(ctx context.Context) error {
	if gp.apiKey == "" {
		return fmt.Errorf("generation API key not configured - set LLM_API_KEY environment variable")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, gp.baseURL+"/models", nil)
	if err != nil {
		return fmt.Errorf("failed to create health check request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+gp.apiKey)

	resp, err := gp.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("generation API health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("generation API health check failed: status %d", resp.StatusCode)
	}

	return nil
}

// GetProviderName returns the name of the generation provider
func (gp *GroqProvider) GetProviderName() string {
	return "groq"
}
