package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDKey = "request_id"

// RequestID propagates the caller's request ID or generates one, storing it
// on the context and echoing it back in the response header.
func RequestID(header string) echo.MiddlewareFunc {
	if header == "" {
		header = echo.HeaderXRequestID
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(header)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Set(requestIDKey, rid)
			c.Response().Header().Set(header, rid)
			return next(c)
		}
	}
}

// RequestIDFromContext returns the request ID stored by RequestID, or empty.
func RequestIDFromContext(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}
