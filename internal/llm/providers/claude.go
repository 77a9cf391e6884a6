package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"careerpilot/internal/config"
	"careerpilot/internal/logging"
	"careerpilot/pkg/models"
)

// ClaudeProvider implements the generation provider interface using
// Anthropic's Claude as an alternative backend.
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
	}
}

// Complete sends a single message request to Claude and returns the first
// text block of the response unmodified.
func (cp *ClaudeProvider) Complete(ctx context.Context, req models.GenerationRequest) (string, error) {
	startTime := time.Now()
	logger := logging.GetGlobalLogger()

	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(req.Model),
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(req.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: req.SystemInstructions},
		},
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: req.UserPrompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})

	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	if len(response.Content) == 0 {
		return "", fmt.Errorf("%w: empty response content", ErrMalformedResponse)
	}

	var responseText string
	for _, content := range response.Content {
		textContent := content.AsText()
		responseText = textContent.Text
		break
	}

	if responseText == "" {
		return "", fmt.Errorf("%w: no text content in response", ErrMalformedResponse)
	}

	logger.Debug("Chat completion finished", map[string]interface{}{
		"provider":        "claude",
		"model":           req.Model,
		"processing_time": time.Since(startTime),
		"response_length": len(responseText),
	})

	return responseText, nil
}

// IsHealthy checks if the Claude provider is healthy and available
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.config.LLM.APIKey == "" {
		return fmt.Errorf("generation API key not configured - set LLM_API_KEY environment variable")
	}

	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(cp.config.LLM.Model),
		MaxTokens: 16,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})

	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the generation provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}
