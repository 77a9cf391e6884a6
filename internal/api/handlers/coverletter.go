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

// GenerateCoverLetterHandler handles POST /api/generate-cover-letter
// (multipart form)
func GenerateCoverLetterHandler(agent *agents.CoverLetterAgent) echo.HandlerFunc {
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

		companyInfo := c.FormValue("company_info")

		logger.Info("Processing cover letter request", map[string]interface{}{
			"cv_length":   len(cvContent),
			"has_company": companyInfo != "",
		})

		result, err := agent.GenerateCoverLetter(c.Request().Context(), cvContent, jobDescription, companyInfo)
		if err != nil {
			logger.Error("Cover letter generation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusInternalServerError, models.NewErrorResponse(envelopeMessage(err)))
		}

		logger.Info("Cover letter generation completed", map[string]interface{}{
			"processing_time": utils.FormatDuration(time.Since(startTime)),
		})

		return c.JSON(http.StatusOK, models.NewSuccessResponse(result))
	}
}
