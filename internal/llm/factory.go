package llm

import (
	"fmt"
	"strings"

	"careerpilot/internal/config"
	"careerpilot/internal/llm/providers"
)

// Factory creates generation provider instances
type Factory struct {
	config *config.Config
}

// NewFactory creates a new provider factory instance
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		config: cfg,
	}
}

// CreateProvider creates a generation provider based on the configuration
func (f *Factory) CreateProvider() (Provider, error) {
	switch f.config.LLM.Provider {
	case "groq":
		return providers.NewGroqProvider(f.config), nil
	case "claude":
		return providers.NewClaudeProvider(f.config), nil
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s (supported: %s)",
			f.config.LLM.Provider, strings.Join(f.GetSupportedProviders(), ", "))
	}
}

// GetSupportedProviders returns a list of supported generation providers
func (f *Factory) GetSupportedProviders() []string {
	return []string{"groq", "claude"}
}
