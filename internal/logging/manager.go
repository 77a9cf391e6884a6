package logging

import (
	"fmt"

	"careerpilot/internal/config"
	"careerpilot/internal/logging/adapters"
	"careerpilot/internal/logging/types"
)

// Manager manages the logging system initialization and configuration
type Manager struct {
	logger *MultiLogger
}

// NewManager creates a new logging manager
func NewManager() *Manager {
	return &Manager{
		logger: NewMultiLogger(),
	}
}

// Initialize initializes the logging system from configuration
func (m *Manager) Initialize(cfg *config.Config) error {
	m.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))

	// If adapter configuration is provided, use it
	if len(cfg.Logging.Adapters) > 0 {
		for _, ac := range cfg.Logging.Adapters {
			if !ac.Enabled {
				continue
			}

			adapter, err := createAdapter(types.AdapterConfig{
				Name:    ac.Name,
				Type:    ac.Type,
				Enabled: ac.Enabled,
				Options: ac.Options,
			})
			if err != nil {
				return fmt.Errorf("failed to create adapter %s: %w", ac.Name, err)
			}

			if err := m.logger.AddAdapter(adapter); err != nil {
				return fmt.Errorf("failed to add adapter %s: %w", ac.Name, err)
			}
		}
		return nil
	}

	// Fallback to a single stdout adapter driven by the flat logging config
	adapter := adapters.NewStdoutAdapter("stdout", adapters.StdoutConfig{
		Format: cfg.Logging.Format,
	})
	return m.logger.AddAdapter(adapter)
}

// createAdapter creates a logging adapter based on the provided configuration
func createAdapter(ac types.AdapterConfig) (types.LogAdapter, error) {
	switch ac.Type {
	case "stdout":
		return adapters.NewStdoutAdapter(ac.Name, adapters.StdoutConfig{
			Format:    getStringOption(ac.Options, "format", "json"),
			Colorized: getBoolOption(ac.Options, "colorized", false),
		}), nil
	case "file":
		path := getStringOption(ac.Options, "file_path", "")
		if path == "" {
			return nil, fmt.Errorf("file_path is required for file adapter")
		}
		return adapters.NewFileAdapter(ac.Name, adapters.FileConfig{
			FilePath:   path,
			Format:     getStringOption(ac.Options, "format", "json"),
			CreateDirs: getBoolOption(ac.Options, "create_dirs", true),
		})
	default:
		return nil, fmt.Errorf("unsupported adapter type: %s", ac.Type)
	}
}

func getStringOption(options map[string]interface{}, key, def string) string {
	if v, ok := options[key].(string); ok && v != "" {
		return v
	}
	return def
}

func getBoolOption(options map[string]interface{}, key string, def bool) bool {
	if v, ok := options[key].(bool); ok {
		return v
	}
	return def
}

// GetLogger returns the initialized logger
func (m *Manager) GetLogger() Logger {
	return m.logger
}

// Close closes the logging system
func (m *Manager) Close() error {
	if m.logger != nil {
		return m.logger.Close()
	}
	return nil
}

// Global manager instance
var globalManager *Manager

// InitializeLogging initializes the global logging system
func InitializeLogging(cfg *config.Config) error {
	globalManager = NewManager()
	return globalManager.Initialize(cfg)
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() Logger {
	if globalManager == nil {
		// Fallback to a basic stdout logger if not initialized
		manager := NewManager()
		adapter := adapters.NewStdoutAdapter("fallback_stdout", adapters.StdoutConfig{Format: "json"})
		manager.logger.AddAdapter(adapter)
		globalManager = manager
	}
	return globalManager.GetLogger()
}

// CloseLogging closes the global logging system
func CloseLogging() error {
	if globalManager != nil {
		return globalManager.Close()
	}
	return nil
}

// LogWithRequestID creates a logger with request ID context
func LogWithRequestID(requestID string) Logger {
	return GetGlobalLogger().WithField("request_id", requestID)
}
