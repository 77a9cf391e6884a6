package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"careerpilot/internal/logging"
	"careerpilot/pkg/models"
	"careerpilot/pkg/utils"
)

// ErrorHandler renders errors that escape the handlers - middleware
// rejections, unknown routes, panics recovered by echo - as structured error
// responses with tracking metadata. Endpoint-level failures never reach here;
// they are answered in-handler with the APIResponse envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var ce *utils.CustomError
	var he *echo.HTTPError
	switch {
	case errors.As(err, &ce):
		// already shaped
	case errors.As(err, &he):
		ce = &utils.CustomError{Code: he.Code, Message: fmt.Sprintf("%v", he.Message)}
	default:
		logging.LogWithRequestID(requestID(c)).Error("Unhandled error", map[string]interface{}{"error": err.Error()})
		ce = utils.NewInternalServerError("internal server error")
	}

	response := models.ErrorResponse{
		Error:     http.StatusText(ce.Code),
		Message:   ce.Message,
		RequestID: requestID(c),
		Timestamp: time.Now(),
	}

	if jsonErr := c.JSON(ce.Code, response); jsonErr != nil {
		logging.GetGlobalLogger().Error("Failed to write error response", map[string]interface{}{"error": jsonErr.Error()})
	}
}
