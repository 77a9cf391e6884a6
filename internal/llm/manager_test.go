package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpilot/internal/config"
	"careerpilot/pkg/models"
)

func managerTestConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.LLM.Provider = "groq"
	cfg.LLM.APIKey = "test-key"
	cfg.LLM.BaseURL = baseURL
	cfg.LLM.Model = "default-model"
	cfg.LLM.MaxTokens = 512
	cfg.LLM.Temperature = 0.7
	cfg.LLM.Timeout = 5 * time.Second
	return cfg
}

// newCompletionServer answers health checks and records the last completion
// payload it received.
func newCompletionServer(t *testing.T, lastPayload *map[string]interface{}) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/models":
			w.Write([]byte(`{"data":[]}`))
		case "/chat/completions":
			require.NoError(t, json.NewDecoder(r.Body).Decode(lastPayload))
			json.NewEncoder(w).Encode(map[string]interface{}{
				"choices": []map[string]interface{}{
					{"message": map[string]interface{}{"role": "assistant", "content": "ok"}},
				},
			})
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestManagerCompleteFillsDefaults(t *testing.T) {
	var payload map[string]interface{}
	server := newCompletionServer(t, &payload)
	defer server.Close()

	manager := NewManager(managerTestConfig(server.URL))
	require.NoError(t, manager.Start())
	defer manager.Stop()

	assert.True(t, manager.IsHealthy())
	assert.Equal(t, "groq", manager.GetProviderName())

	text, err := manager.Complete(context.Background(), models.GenerationRequest{
		SystemInstructions: "persona",
		UserPrompt:         "prompt",
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", text)

	// Model, max tokens and temperature come from configuration when unset
	assert.Equal(t, "default-model", payload["model"])
	assert.EqualValues(t, 512, payload["max_tokens"])
	assert.InDelta(t, 0.7, payload["temperature"].(float64), 1e-9)
}

func TestManagerCompleteRequiresSystemInstructions(t *testing.T) {
	var payload map[string]interface{}
	server := newCompletionServer(t, &payload)
	defer server.Close()

	manager := NewManager(managerTestConfig(server.URL))
	require.NoError(t, manager.Start())
	defer manager.Stop()

	_, err := manager.Complete(context.Background(), models.GenerationRequest{
		UserPrompt: "prompt without a persona",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "system instructions")
}

func TestManagerCompleteBeforeStart(t *testing.T) {
	manager := NewManager(managerTestConfig("http://localhost:0"))

	_, err := manager.Complete(context.Background(), models.GenerationRequest{
		SystemInstructions: "persona",
		UserPrompt:         "prompt",
	})

	assert.Error(t, err)
}

func TestManagerStartWithUnknownProvider(t *testing.T) {
	cfg := managerTestConfig("http://localhost:0")
	cfg.LLM.Provider = "davinci"

	manager := NewManager(cfg)
	err := manager.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "supported: groq, claude")
}

func TestManagerStartDegradedWhenUnhealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no", http.StatusInternalServerError)
	}))
	defer server.Close()

	manager := NewManager(managerTestConfig(server.URL))

	// A failed health check degrades instead of aborting startup
	require.NoError(t, manager.Start())
	assert.False(t, manager.IsHealthy())
}
