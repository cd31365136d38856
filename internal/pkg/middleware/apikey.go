package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/buspulse/buspulse/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey guards device-facing endpoints with a shared key.
// An empty configured key disables the check, preserving the
// permissive intake default for unauthenticated trackers.
func ValidateAPIKey(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if key == "" {
				return next(c)
			}

			supplied := c.Request().Header.Get(APIKeyHeader)
			if supplied == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			if subtle.ConstantTimeCompare([]byte(supplied), []byte(key)) != 1 {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
