package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flocknet/follow-service/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByHandle(ctx context.Context, handle string) (*models.User, error)
	UserExists(ctx context.Context, id string) (bool, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser persists a new user, generating an identifier when unset.
func (r *PostgresUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(user).Error
}

// GetUserByID retrieves a user by ID from PostgreSQL
func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByHandle retrieves a user by handle from PostgreSQL
func (r *PostgresUserRepository) GetUserByHandle(ctx context.Context, handle string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("handle = ?", handle).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UserExists reports whether a user with the given ID is present.
func (r *PostgresUserRepository) UserExists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListUsers retrieves every user ordered by handle.
func (r *PostgresUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("handle ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
