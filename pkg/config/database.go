package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/flocknet/follow-service/internal/models"
)

// InitDB opens the PostgreSQL store, verifies the connection, applies the
// schema and returns the handle. TranslateError turns constraint violations
// into gorm's typed sentinel errors, which the service layer relies on to
// classify duplicate edges, self-follows and dangling endpoints.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Ping the database to verify connection
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Follow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return db, nil
}
