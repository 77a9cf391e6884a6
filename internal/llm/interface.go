package llm

import (
	"context"

	"careerpilot/internal/llm/providers"
	"careerpilot/pkg/models"
)

// Provider defines the interface for generation providers
type Provider interface {
	// Complete sends one generation request and returns the completion text
	Complete(ctx context.Context, req models.GenerationRequest) (string, error)

	// IsHealthy checks if the provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the provider
	GetProviderName() string
}

// Generator is the minimal completion surface orchestrators depend on
type Generator interface {
	Complete(ctx context.Context, req models.GenerationRequest) (string, error)
}

// Classified provider errors, re-exported so callers outside this package
// can check them without importing the providers package.
var (
	ErrProviderUnavailable = providers.ErrProviderUnavailable
	ErrMalformedResponse   = providers.ErrMalformedResponse
)
