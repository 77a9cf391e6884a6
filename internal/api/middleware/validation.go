package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"careerpilot/pkg/utils"
)

// maxRequestBody bounds POST bodies; generous enough for CV file uploads.
const maxRequestBody = 10 * 1024 * 1024

// RequestValidation middleware validates incoming requests
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Add request ID to context
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			// Content length validation for POST requests
			if c.Request().Method == http.MethodPost {
				if c.Request().ContentLength > maxRequestBody {
					return utils.NewRequestTooLargeError("request body too large")
				}
			}

			return next(c)
		}
	}
}
