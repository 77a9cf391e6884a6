package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"careerpilot/internal/agents"
	"careerpilot/internal/api/handlers"
	"careerpilot/internal/api/middleware"
	"careerpilot/internal/config"
	"careerpilot/internal/llm"
	"careerpilot/internal/search"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, llmManager *llm.Manager, searchClient *search.Client) {
	e.HTTPErrorHandler = handlers.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Short timeout for plain endpoints, 2 minutes for generation-heavy ones
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*time.Minute))

	// Orchestrators share the generation manager and search client
	jobSearchAgent := agents.NewJobSearchAgent(llmManager, searchClient)
	cvAgent := agents.NewCVAgent(llmManager)
	coverLetterAgent := agents.NewCoverLetterAgent(llmManager)

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler(llmManager))
		health.GET("/ready", handlers.ReadinessHandler(llmManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// API routes
	api := e.Group("/api")
	{
		api.POST("/search-jobs", handlers.SearchJobsHandler(jobSearchAgent))
		api.POST("/generate-cv", handlers.GenerateCVHandler(cvAgent))
		api.POST("/generate-cover-letter", handlers.GenerateCoverLetterHandler(coverLetterAgent))
		api.POST("/download-latex", handlers.DownloadLatexHandler())
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "CareerPilot API",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
