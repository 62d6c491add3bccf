package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/flocknet/follow-service/internal/models"
	"github.com/flocknet/follow-service/internal/repositories"
)

// Pagination bounds shared by the service and the HTTP boundary.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type followService struct {
	follows repositories.FollowRepository
	users   repositories.UserRepository
	log     *zap.Logger
}

// NewFollowService creates a FollowService backed by the given repositories.
func NewFollowService(follows repositories.FollowRepository, users repositories.UserRepository, log *zap.Logger) FollowService {
	if log == nil {
		log = zap.NewNop()
	}
	return &followService{follows: follows, users: users, log: log}
}

// Follow creates the follower to followee edge. The existence checks are
// best effort; the insert itself is the authority, so a pair raced by a
// concurrent identical request still resolves to exactly one stored edge.
func (s *followService) Follow(ctx context.Context, followerID, followeeID string) (*models.Follow, error) {
	if followerID == followeeID {
		return nil, models.ErrSelfFollow
	}

	ok, err := s.users.UserExists(ctx, followerID)
	if err != nil {
		return nil, fmt.Errorf("check follower %s: %w", followerID, err)
	}
	if !ok {
		return nil, models.NewUserNotFound("follower", followerID)
	}
	ok, err = s.users.UserExists(ctx, followeeID)
	if err != nil {
		return nil, fmt.Errorf("check followee %s: %w", followeeID, err)
	}
	if !ok {
		return nil, models.NewUserNotFound("followee", followeeID)
	}

	follow := &models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	if err := s.follows.CreateFollow(ctx, follow); err != nil {
		return nil, s.classifyCreateError(err, followerID, followeeID)
	}

	s.log.Debug("follow created",
		zap.String("follow_id", follow.ID),
		zap.String("follower_id", followerID),
		zap.String("followee_id", followeeID),
	)
	return follow, nil
}

// classifyCreateError maps the store's constraint signals onto domain errors.
// The duplicate key path covers both a straight re-follow and two concurrent
// follows of the same pair; the foreign key path is the race where an
// endpoint user is deleted between the existence check and the insert.
// Anything unrecognized fails closed as an internal error.
func (s *followService) classifyCreateError(err error, followerID, followeeID string) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.ErrDuplicateFollow
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return models.ErrUserNotFound
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return models.ErrSelfFollow
	default:
		return fmt.Errorf("create follow %s -> %s: %w", followerID, followeeID, err)
	}
}

// Unfollow removes the follower to followee edge. The delete is keyed on the
// pair in a single statement, so of two concurrent unfollows exactly one
// succeeds and the other reports the edge as missing.
func (s *followService) Unfollow(ctx context.Context, followerID, followeeID string) error {
	err := s.follows.DeleteFollow(ctx, followerID, followeeID)
	if errors.Is(err, repositories.ErrFollowNotFound) {
		return models.ErrFollowNotFound
	}
	if err != nil {
		return fmt.Errorf("delete follow %s -> %s: %w", followerID, followeeID, err)
	}

	s.log.Debug("follow removed",
		zap.String("follower_id", followerID),
		zap.String("followee_id", followeeID),
	)
	return nil
}

// IsFollowing reports whether the edge currently exists. Unknown users are
// not an error here; they simply follow nobody.
func (s *followService) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	following, err := s.follows.IsFollowing(ctx, followerID, followeeID)
	if err != nil {
		return false, fmt.Errorf("check follow %s -> %s: %w", followerID, followeeID, err)
	}
	return following, nil
}

// ListFollowers returns one page of the users following userID together with
// the total follower count.
func (s *followService) ListFollowers(ctx context.Context, userID string, limit, offset int) (*models.FollowPage, error) {
	limit, offset = clampPage(limit, offset)
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	total, err := s.follows.GetFollowersCount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count followers of %s: %w", userID, err)
	}
	items, err := s.follows.GetFollowers(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list followers of %s: %w", userID, err)
	}
	if items == nil {
		items = []models.User{}
	}
	return &models.FollowPage{Total: total, Items: items, Limit: limit, Offset: offset}, nil
}

// ListFollowing returns one page of the users userID follows together with
// the total following count.
func (s *followService) ListFollowing(ctx context.Context, userID string, limit, offset int) (*models.FollowPage, error) {
	limit, offset = clampPage(limit, offset)
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	total, err := s.follows.GetFollowingCount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count following of %s: %w", userID, err)
	}
	items, err := s.follows.GetFollowing(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list following of %s: %w", userID, err)
	}
	if items == nil {
		items = []models.User{}
	}
	return &models.FollowPage{Total: total, Items: items, Limit: limit, Offset: offset}, nil
}

// FollowerCount returns how many users follow userID.
func (s *followService) FollowerCount(ctx context.Context, userID string) (int64, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return 0, err
	}
	count, err := s.follows.GetFollowersCount(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count followers of %s: %w", userID, err)
	}
	return count, nil
}

// FollowingCount returns how many users userID follows.
func (s *followService) FollowingCount(ctx context.Context, userID string) (int64, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return 0, err
	}
	count, err := s.follows.GetFollowingCount(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count following of %s: %w", userID, err)
	}
	return count, nil
}

// ListUsers returns every user ordered by handle.
func (s *followService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// GetUser returns one user by ID.
func (s *followService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return user, nil
}

func (s *followService) requireUser(ctx context.Context, id string) error {
	ok, err := s.users.UserExists(ctx, id)
	if err != nil {
		return fmt.Errorf("check user %s: %w", id, err)
	}
	if !ok {
		return models.ErrUserNotFound
	}
	return nil
}

// clampPage applies the documented defaults and bounds. The HTTP boundary
// already rejects out-of-range values, so this only floors programmatic
// callers into the valid window.
func clampPage(limit, offset int) (int, int) {
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
