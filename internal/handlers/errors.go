package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/flocknet/follow-service/internal/models"
)

// writeError renders a service error as the common JSON envelope. Domain
// errors are expected outcomes and pass through with their own status and
// code; everything else is logged in full and surfaced as a generic 500.
func writeError(c echo.Context, log *zap.Logger, err error) error {
	var domainErr *models.DomainError
	if errors.As(err, &domainErr) {
		return c.JSON(domainErr.Status, models.ErrorResponse{
			Success: false,
			Message: domainErr.Message,
			Code:    domainErr.Code,
		})
	}

	log.Error("request failed",
		zap.String("method", c.Request().Method),
		zap.String("path", c.Request().URL.Path),
		zap.Error(err),
	)
	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Message: "internal server error",
		Code:    models.CodeInternal,
	})
}
