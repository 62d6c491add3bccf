package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger emits one structured line per request, at a level keyed to
// the response status class.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			path := c.Path()
			if path == "" {
				path = req.URL.Path
			}

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", path),
				zap.Int("status", res.Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("client_ip", c.RealIP()),
				zap.Int64("bytes_in", req.ContentLength),
				zap.Int64("bytes_out", res.Size),
			}
			if rid := RequestIDFromContext(c); rid != "" {
				fields = append(fields, zap.String("request_id", rid))
			}

			switch {
			case res.Status >= 500:
				log.Error("http request", fields...)
			case res.Status >= 400:
				log.Warn("http request", fields...)
			default:
				log.Info("http request", fields...)
			}

			return err
		}
	}
}
