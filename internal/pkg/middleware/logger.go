package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/buspulse/buspulse/internal/pkg/logger"
)

// RequestLogger logs every request with method, path, status and latency.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := []logger.Field{
				logger.String("method", req.Method),
				logger.String("path", req.URL.Path),
				logger.Int("status", res.Status),
				logger.Duration("latency", time.Since(start)),
				logger.String("remote_ip", c.RealIP()),
			}
			if err != nil {
				fields = append(fields, logger.Err(err))
			}

			if res.Status >= 500 {
				logger.Error("request completed", fields...)
			} else {
				logger.Info("request completed", fields...)
			}

			return nil
		}
	}
}
