package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"careerpilot/internal/llm"
	"careerpilot/pkg/models"
)

var startTime = time.Now()

// HealthHandler handles health check requests
func HealthHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		generation := "ok"
		if !llmManager.IsHealthy() {
			generation = "degraded"
		}

		response := models.HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks: map[string]string{
				"api":        "ok",
				"generation": generation,
			},
		}

		return c.JSON(http.StatusOK, response)
	}
}

// ReadinessHandler handles readiness probe requests with a live provider
// probe, so a recovered backend flips the service back to ready without a
// restart.
func ReadinessHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := llmManager.CheckHealth(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, models.HealthResponse{
				Status:    "not_ready",
				Timestamp: time.Now(),
				Version:   "1.0.0",
				Uptime:    time.Since(startTime),
				Checks: map[string]string{
					"generation": "unavailable",
				},
			})
		}

		return c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "ready",
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks: map[string]string{
				"api":        "ok",
				"generation": "ok",
			},
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
	})
}
