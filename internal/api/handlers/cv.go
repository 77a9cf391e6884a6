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

// GenerateCVHandler handles POST /api/generate-cv (multipart form)
func GenerateCVHandler(agent *agents.CVAgent) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		logger := logging.LogWithRequestID(requestID(c))

		cvContent, err := resolveCvContent(c)
		if err != nil {
			logger.Error("Failed to resolve CV input", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(envelopeMessage(err)))
		}

		if cvContent == "" {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse("cv_file or cv_content is required"))
		}

		jobDescription := c.FormValue("job_description")
		if jobDescription == "" {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse("job_description is required"))
		}

		personalInfo := c.FormValue("personal_info")

		logger.Info("Processing CV generation request", map[string]interface{}{
			"cv_length":  len(cvContent),
			"job_length": len(jobDescription),
		})

		result, err := agent.GenerateCV(c.Request().Context(), cvContent, jobDescription, personalInfo)
		if err != nil {
			logger.Error("CV generation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusInternalServerError, models.NewErrorResponse(envelopeMessage(err)))
		}

		logger.Info("CV generation completed", map[string]interface{}{
			"processing_time": utils.FormatDuration(time.Since(startTime)),
		})

		return c.JSON(http.StatusOK, models.NewSuccessResponse(result))
	}
}
