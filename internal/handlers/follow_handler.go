package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/flocknet/follow-service/internal/models"
	"github.com/flocknet/follow-service/internal/service"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followService service.FollowService
	log           *zap.Logger
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followService service.FollowService, log *zap.Logger) *FollowHandler {
	return &FollowHandler{followService: followService, log: log}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/follows", h.CreateFollow)
	g.DELETE("/follows", h.DeleteFollow)
	g.GET("/follows/check", h.CheckFollow)
}

// CreateFollow makes the follower follow the followee.
func (h *FollowHandler) CreateFollow(c echo.Context) error {
	var req models.FollowRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, h.log, models.NewInvalidInput("malformed request body"))
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, h.log, models.NewInvalidInput("followerId and followeeId must be valid UUIDs"))
	}

	follow, err := h.followService.Follow(c.Request().Context(), req.FollowerID, req.FolloweeID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": follow.ID})
}

// DeleteFollow makes the follower unfollow the followee.
func (h *FollowHandler) DeleteFollow(c echo.Context) error {
	var req models.FollowRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, h.log, models.NewInvalidInput("malformed request body"))
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, h.log, models.NewInvalidInput("followerId and followeeId must be valid UUIDs"))
	}

	if err := h.followService.Unfollow(c.Request().Context(), req.FollowerID, req.FolloweeID); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// CheckFollow reports whether follower currently follows followee.
func (h *FollowHandler) CheckFollow(c echo.Context) error {
	followerID, err := parseUserID(c.QueryParam("followerId"), "followerId")
	if err != nil {
		return writeError(c, h.log, err)
	}
	followeeID, err := parseUserID(c.QueryParam("followeeId"), "followeeId")
	if err != nil {
		return writeError(c, h.log, err)
	}

	following, err := h.followService.IsFollowing(c.Request().Context(), followerID, followeeID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"isFollowing": following})
}
