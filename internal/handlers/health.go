package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// sqlPinger is the slice of database/sql used by readiness checks.
type sqlPinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	db           sqlPinger
	checkTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db sqlPinger) *HealthHandler {
	return &HealthHandler{db: db, checkTimeout: 2 * time.Second}
}

// Health reports process liveness.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// Ready reports whether the relationship store is reachable.
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.checkTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"status": "unavailable",
			"checks": echo.Map{"postgres": err.Error()},
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
		"checks": echo.Map{"postgres": "ok"},
	})
}
