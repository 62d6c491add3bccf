package service

import (
	"context"

	"github.com/flocknet/follow-service/internal/models"
)

// FollowService is the orchestration layer over the relationship store. It
// validates intent, runs best-effort existence checks and translates store
// constraint violations into domain errors.
type FollowService interface {
	Follow(ctx context.Context, followerID, followeeID string) (*models.Follow, error)
	Unfollow(ctx context.Context, followerID, followeeID string) error
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
	ListFollowers(ctx context.Context, userID string, limit, offset int) (*models.FollowPage, error)
	ListFollowing(ctx context.Context, userID string, limit, offset int) (*models.FollowPage, error)
	FollowerCount(ctx context.Context, userID string) (int64, error)
	FollowingCount(ctx context.Context, userID string) (int64, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
}
