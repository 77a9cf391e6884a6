package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"careerpilot/internal/agents"
	"careerpilot/internal/logging"
	"careerpilot/pkg/models"
	"careerpilot/pkg/utils"
)

// SearchJobsHandler handles POST /api/search-jobs
func SearchJobsHandler(agent *agents.JobSearchAgent) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		logger := logging.LogWithRequestID(requestID(c))

		var req models.JobSearchRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to parse job search request", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse("invalid request body"))
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Job search request validation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse("job_title is required"))
		}

		logger.Info("Processing job search request", map[string]interface{}{
			"job_title": req.JobTitle,
			"location":  req.Location,
		})

		report, err := agent.SearchJobs(c.Request().Context(), req)
		if err != nil {
			logger.Error("Job search failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusInternalServerError, models.NewErrorResponse(envelopeMessage(err)))
		}

		logger.Info("Job search completed", map[string]interface{}{
			"processing_time": utils.FormatDuration(time.Since(startTime)),
		})

		return c.JSON(http.StatusOK, models.NewSuccessResponse(report))
	}
}
