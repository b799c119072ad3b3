package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/online-shopping/catalog-service/pkg/response"
	"github.com/rs/zerolog/log"
)

// Logger binds a per-request trace id into the request context and logs the
// request outcome. The same id ends up in the response envelope header.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		traceID := uuid.New().String()

		ctx := c.Request().Context()

		logger := log.With().Str("trace_id", traceID).Logger()
		ctx = logger.WithContext(ctx)

		c.Set(response.TraceIDKey, traceID)
		c.SetRequest(c.Request().WithContext(ctx))

		err := next(c)

		latency := time.Since(start).Milliseconds()

		req := c.Request()
		res := c.Response()

		log.Ctx(c.Request().Context()).Info().
			Str("method", req.Method).
			Str("endpoint", req.URL.Path).
			Int("status", res.Status).
			Int64("latency", latency).
			Msg("Request processed")

		return err
	}
}
