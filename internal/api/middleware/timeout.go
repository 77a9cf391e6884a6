package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SelectiveTimeoutConfig applies the default timeout to most endpoints and a
// longer one to the generation-heavy endpoints, whose upstream calls can
// legitimately take minutes.
func SelectiveTimeoutConfig(defaultTimeout, generationTimeout time.Duration) echo.MiddlewareFunc {
	long := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: generationTimeout,
		Skipper: func(c echo.Context) bool {
			return !isGenerationPath(c.Request().URL.Path)
		},
	})
	short := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: defaultTimeout,
		Skipper: func(c echo.Context) bool {
			return isGenerationPath(c.Request().URL.Path)
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return short(long(next))
	}
}

// isGenerationPath reports whether the endpoint makes generation or search
// provider calls.
func isGenerationPath(path string) bool {
	return strings.HasPrefix(path, "/api/search-jobs") ||
		strings.HasPrefix(path, "/api/generate-")
}
