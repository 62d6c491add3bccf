package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flocknet/follow-service/internal/models"
)

// ErrFollowNotFound is returned when a delete-by-pair matches no edge.
var ErrFollowNotFound = errors.New("follow relationship not found")

// FollowRepository defines the interface for follow-edge data operations
type FollowRepository interface {
	CreateFollow(ctx context.Context, follow *models.Follow) error
	DeleteFollow(ctx context.Context, followerID, followeeID string) error
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
	GetFollowers(ctx context.Context, userID string, limit, offset int) ([]models.User, error)
	GetFollowing(ctx context.Context, userID string, limit, offset int) ([]models.User, error)
	GetFollowersCount(ctx context.Context, userID string) (int64, error)
	GetFollowingCount(ctx context.Context, userID string) (int64, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// CreateFollow inserts the edge in a single statement. Pair uniqueness, the
// self-follow rule and endpoint integrity are left to the table constraints,
// whose violations surface as gorm's translated sentinel errors.
func (r *PostgresFollowRepository) CreateFollow(ctx context.Context, follow *models.Follow) error {
	if follow.ID == "" {
		follow.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(follow).Error
}

// DeleteFollow removes the edge identified by the pair in one atomic delete.
func (r *PostgresFollowRepository) DeleteFollow(ctx context.Context, followerID, followeeID string) error {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrFollowNotFound
	}
	return nil
}

// IsFollowing reports whether the follower currently follows the followee.
func (r *PostgresFollowRepository) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowers returns one window of the users following userID, most recent
// edge first. Ties on creation time fall back to the edge ID so repeated
// queries page through a stable order.
func (r *PostgresFollowRepository) GetFollowers(ctx context.Context, userID string, limit, offset int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", userID).
		Order("follows.created_at DESC").
		Order("follows.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	return users, err
}

// GetFollowing returns one window of the users userID follows, most recent
// edge first with the same tie-break as GetFollowers.
func (r *PostgresFollowRepository) GetFollowing(ctx context.Context, userID string, limit, offset int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at DESC").
		Order("follows.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	return users, err
}

// GetFollowersCount returns the number of users following userID.
func (r *PostgresFollowRepository) GetFollowersCount(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).Where("followee_id = ?", userID).Count(&count).Error
	return count, err
}

// GetFollowingCount returns the number of users userID follows.
func (r *PostgresFollowRepository) GetFollowingCount(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}
