package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port"`
		Host         string        `yaml:"host"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
	} `yaml:"server"`

	LLM struct {
		Provider    string        `yaml:"provider"`
		APIKey      string        `yaml:"api_key"`
		BaseURL     string        `yaml:"base_url"`
		Model       string        `yaml:"model"`
		MaxTokens   int           `yaml:"max_tokens"`
		Temperature float64       `yaml:"temperature"`
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"llm"`

	Search struct {
		Provider   string        `yaml:"provider"`
		APIKey     string        `yaml:"api_key"`
		MaxResults int           `yaml:"max_results"`
		Region     string        `yaml:"region"`
		QueryPause time.Duration `yaml:"query_pause"`
		Timeout    time.Duration `yaml:"timeout"`
	} `yaml:"search"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or
// $VAR syntax. Unset variables expand to the empty string so placeholder
// values never survive into validated fields.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	// Must exceed the generation endpoints' middleware timeout or the
	// connection drops before a slow completion is written.
	config.Server.WriteTimeout = 3 * time.Minute
	config.Server.IdleTimeout = 60 * time.Second

	config.LLM.Provider = "groq"
	config.LLM.BaseURL = "https://api.groq.com/openai/v1"
	config.LLM.Model = "mixtral-8x7b-32768"
	config.LLM.MaxTokens = 4096
	config.LLM.Temperature = 0.7
	config.LLM.Timeout = 60 * time.Second

	config.Search.Provider = "serpapi"
	config.Search.MaxResults = 10
	config.Search.QueryPause = 1 * time.Second
	config.Search.Timeout = 30 * time.Second

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		c.LLM.APIKey = apiKey
	}

	// Also support GROQ_API_KEY for compatibility with the hosted provider naming
	if apiKey := os.Getenv("GROQ_API_KEY"); apiKey != "" && c.LLM.APIKey == "" {
		c.LLM.APIKey = apiKey
	}

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		c.LLM.Provider = provider
	}

	if baseURL := os.Getenv("LLM_BASE_URL"); baseURL != "" {
		c.LLM.BaseURL = baseURL
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		c.LLM.Model = model
	}

	if timeout := os.Getenv("LLM_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.LLM.Timeout = d
		}
	}

	if apiKey := os.Getenv("SERPAPI_API_KEY"); apiKey != "" {
		c.Search.APIKey = apiKey
	}

	if region := os.Getenv("SEARCH_REGION"); region != "" {
		c.Search.Region = region
	}

	if maxResults := os.Getenv("SEARCH_MAX_RESULTS"); maxResults != "" {
		if n, err := strconv.Atoi(maxResults); err == nil {
			c.Search.MaxResults = n
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}
}

// Validate checks that the configuration is complete enough to start the
// service. There is deliberately no default credential fallback: a missing
// generation API key fails startup.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm api key is not configured (set LLM_API_KEY)")
	}

	if c.LLM.Provider == "" {
		return fmt.Errorf("llm provider is not configured")
	}

	if c.LLM.Temperature < 0 || c.LLM.Temperature > 1 {
		return fmt.Errorf("llm temperature must be within [0,1], got %v", c.LLM.Temperature)
	}

	if c.Search.MaxResults <= 0 {
		return fmt.Errorf("search max_results must be positive, got %d", c.Search.MaxResults)
	}

	return nil
}
