package handlers

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/flocknet/follow-service/internal/models"
	"github.com/flocknet/follow-service/internal/service"
)

// parseUserID validates an opaque user identifier taken from a path or query
// parameter. Identifiers are never interpreted beyond UUID syntax.
func parseUserID(value, name string) (string, error) {
	if value == "" {
		return "", models.NewInvalidInput(name + " is required")
	}
	if _, err := uuid.Parse(value); err != nil {
		return "", models.NewInvalidInput(name + " must be a valid UUID")
	}
	return value, nil
}

// parsePagination reads the limit and offset query parameters, applying the
// documented defaults when absent and rejecting values outside the window.
func parsePagination(c echo.Context) (int, int, error) {
	limit := service.DefaultPageLimit
	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > service.MaxPageLimit {
			return 0, 0, models.NewInvalidInput("limit must be an integer between 1 and 100")
		}
		limit = v
	}

	offset := 0
	if raw := c.QueryParam("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return 0, 0, models.NewInvalidInput("offset must be a non-negative integer")
		}
		offset = v
	}
	return limit, offset, nil
}
