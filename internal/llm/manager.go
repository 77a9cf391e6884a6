package llm

import (
	"context"
	"fmt"
	"sync"

	"careerpilot/internal/config"
	"careerpilot/internal/logging"
	"careerpilot/pkg/models"
)

// Manager manages the generation provider and its lifecycle
type Manager struct {
	config   *config.Config
	factory  *Factory
	provider Provider
	mu       sync.RWMutex
	healthy  bool
}

// NewManager creates a new generation manager instance
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config:  cfg,
		factory: NewFactory(cfg),
	}
}

// Start initializes the manager and creates the provider
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting generation manager", map[string]interface{}{"provider": m.config.LLM.Provider})

	provider, err := m.factory.CreateProvider()
	if err != nil {
		return fmt.Errorf("failed to create generation provider: %w", err)
	}

	m.provider = provider

	// Test provider health; a failed check degrades rather than aborts so
	// the server can still serve health endpoints.
	ctx, cancel := context.WithTimeout(context.Background(), m.config.LLM.Timeout)
	defer cancel()

	if err := m.provider.IsHealthy(ctx); err != nil {
		logger.Warn("Generation provider health check failed - generation requests will error", map[string]interface{}{"error": err.Error()})
		m.healthy = false
	} else {
		m.healthy = true
		logger.Info("Generation manager started successfully", map[string]interface{}{"provider": m.provider.GetProviderName()})
	}

	return nil
}

// Stop shuts down the manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	logging.GetGlobalLogger().Info("Stopping generation manager")
	m.provider = nil
	m.healthy = false
	return nil
}

// Complete fills request defaults from configuration and delegates to the
// configured provider. System instructions are required: the persona must
// always be distinct from the task payload.
func (m *Manager) Complete(ctx context.Context, req models.GenerationRequest) (string, error) {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return "", fmt.Errorf("generation manager not started or provider not available")
	}

	if req.SystemInstructions == "" {
		return "", fmt.Errorf("generation request is missing system instructions")
	}

	if req.UserPrompt == "" {
		return "", fmt.Errorf("generation request is missing a user prompt")
	}

	if req.Model == "" {
		req.Model = m.config.LLM.Model
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = m.config.LLM.MaxTokens
	}
	if req.Temperature == 0 {
		req.Temperature = m.config.LLM.Temperature
	}

	ctx, cancel := context.WithTimeout(ctx, m.config.LLM.Timeout)
	defer cancel()

	return provider.Complete(ctx, req)
}

// IsHealthy checks if the manager and provider are healthy
func (m *Manager) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy && m.provider != nil
}

// GetProviderName returns the name of the current generation provider
func (m *Manager) GetProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider != nil {
		return m.provider.GetProviderName()
	}
	return "none"
}

// CheckHealth performs a health check on the generation provider
func (m *Manager) CheckHealth(ctx context.Context) error {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return fmt.Errorf("generation provider not available")
	}

	err := provider.IsHealthy(ctx)

	m.mu.Lock()
	m.healthy = (err == nil)
	m.mu.Unlock()

	return err
}
