package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware creates request logging middleware for the Echo framework.
func EchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			if raw != "" {
				path = path + "?" + raw
			}

			fields := []Field{
				Int("status", c.Response().Status),
				String("method", c.Request().Method),
				String("path", path),
				String("client_ip", c.RealIP()),
				Duration("latency", latency),
			}
			if err != nil {
				fields = append(fields, Err(err))
				logger.Error("HTTP request", fields...)
				return err
			}

			logger.Info("HTTP request", fields...)
			return nil
		}
	}
}
