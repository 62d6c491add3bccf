package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/flocknet/follow-service/internal/service"
)

// UserHandler handles HTTP requests for users and their follow listings
type UserHandler struct {
	followService service.FollowService
	log           *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(followService service.FollowService, log *zap.Logger) *UserHandler {
	return &UserHandler{followService: followService, log: log}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users", h.ListUsers)
	g.GET("/users/:id", h.GetUser)
	g.GET("/users/:id/followers", h.ListFollowers)
	g.GET("/users/:id/following", h.ListFollowing)
	g.GET("/users/:id/followers/count", h.FollowerCount)
	g.GET("/users/:id/following/count", h.FollowingCount)
}

// ListUsers returns every user ordered by handle.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.followService.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": users})
}

// GetUser returns one user by ID.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseUserID(c.Param("id"), "id")
	if err != nil {
		return writeError(c, h.log, err)
	}

	user, err := h.followService.GetUser(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, user)
}

// ListFollowers returns one page of the user's followers, newest edge first.
func (h *UserHandler) ListFollowers(c echo.Context) error {
	id, err := parseUserID(c.Param("id"), "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	limit, offset, err := parsePagination(c)
	if err != nil {
		return writeError(c, h.log, err)
	}

	page, err := h.followService.ListFollowers(c.Request().Context(), id, limit, offset)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, page)
}

// ListFollowing returns one page of the users this user follows, newest edge first.
func (h *UserHandler) ListFollowing(c echo.Context) error {
	id, err := parseUserID(c.Param("id"), "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	limit, offset, err := parsePagination(c)
	if err != nil {
		return writeError(c, h.log, err)
	}

	page, err := h.followService.ListFollowing(c.Request().Context(), id, limit, offset)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, page)
}

// FollowerCount returns the total number of followers for a user.
func (h *UserHandler) FollowerCount(c echo.Context) error {
	id, err := parseUserID(c.Param("id"), "id")
	if err != nil {
		return writeError(c, h.log, err)
	}

	count, err := h.followService.FollowerCount(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// FollowingCount returns the total number of users a user follows.
func (h *UserHandler) FollowingCount(c echo.Context) error {
	id, err := parseUserID(c.Param("id"), "id")
	if err != nil {
		return writeError(c, h.log, err)
	}

	count, err := h.followService.FollowingCount(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}
