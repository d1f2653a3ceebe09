package middleware

import (
	"context"

	"myMarketHub/business/recommend"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestTrace attaches a trace id to every request so downstream logs
// can be correlated. An inbound X-Trace-ID header is reused when present.
func RequestTrace() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get("X-Trace-ID")
			if traceID == "" {
				traceID = uuid.NewString()
			}

			ctx := context.WithValue(c.Request().Context(), recommend.TraceIDKey, traceID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("X-Trace-ID", traceID)

			return next(c)
		}
	}
}
