package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Logger assigns every request an id, threads a request-scoped logger through
// the context and records the outcome with its latency.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		requestID := uuid.New().String()
		logger := log.With().Str("request_id", requestID).Logger()

		req := c.Request()
		c.SetRequest(req.WithContext(logger.WithContext(req.Context())))
		c.Response().Header().Set(echo.HeaderXRequestID, requestID)

		err := next(c)

		logger.Info().
			Str("method", req.Method).
			Str("endpoint", req.URL.Path).
			Int("status", c.Response().Status).
			Int64("latency", time.Since(start).Milliseconds()).
			Msg("Request processed")

		return err
	}
}
