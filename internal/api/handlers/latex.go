package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"careerpilot/internal/latex"
	"careerpilot/internal/logging"
	"careerpilot/pkg/models"
)

// DownloadLatexHandler handles POST /api/download-latex. The LaTeX content is
// written verbatim to a temporary artifact and streamed back as a file
// attachment under the requested filename.
func DownloadLatexHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.LogWithRequestID(requestID(c))

		var req models.DownloadLatexRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to parse download request", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse("invalid request body"))
		}

		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse("latex_content is required"))
		}

		path, err := latex.WriteArtifact(req.LatexContent, req.Filename)
		if err != nil {
			logger.Error("Failed to write LaTeX artifact", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusInternalServerError, models.NewErrorResponse("failed to prepare download"))
		}
		defer os.RemoveAll(filepath.Dir(path))

		logger.Info("Serving LaTeX artifact", map[string]interface{}{
			"filename": filepath.Base(path),
			"size":     len(req.LatexContent),
		})

		return c.Attachment(path, filepath.Base(path))
	}
}
