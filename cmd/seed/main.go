package main

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/flocknet/follow-service/internal/models"
	"github.com/flocknet/follow-service/internal/repositories"
	"github.com/flocknet/follow-service/internal/service"
	"github.com/flocknet/follow-service/pkg/config"
	"github.com/flocknet/follow-service/pkg/logger"
)

// Seeds a small demo graph: five users and a handful of follow edges. Safe
// to run repeatedly; existing users are reused and duplicate edges skipped.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("failed to initialize postgres", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql handle", zap.Error(err))
	}
	defer sqlDB.Close()

	userRepo := repositories.NewPostgresUserRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	followService := service.NewFollowService(followRepo, userRepo, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := []models.User{
		{Handle: "alice", DisplayName: "Alice Zhang"},
		{Handle: "bob", DisplayName: "Bob Okafor"},
		{Handle: "carol", DisplayName: "Carol Reyes"},
		{Handle: "dave", DisplayName: "Dave Lindqvist"},
		{Handle: "erin", DisplayName: "Erin Nakamura"},
	}
	ids := make(map[string]string, len(users))
	for i := range users {
		u := &users[i]
		if err := userRepo.CreateUser(ctx, u); err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Fatal("failed to create user", zap.String("handle", u.Handle), zap.Error(err))
			}
			existing, err := userRepo.GetUserByHandle(ctx, u.Handle)
			if err != nil {
				log.Fatal("failed to look up user", zap.String("handle", u.Handle), zap.Error(err))
			}
			*u = *existing
		}
		ids[u.Handle] = u.ID
	}
	log.Info("seeded users", zap.Int("count", len(users)))

	edges := []struct{ follower, followee string }{
		{"alice", "bob"},
		{"alice", "carol"},
		{"bob", "carol"},
		{"dave", "carol"},
		{"erin", "carol"},
		{"carol", "alice"},
	}
	created := 0
	for _, edge := range edges {
		if _, err := followService.Follow(ctx, ids[edge.follower], ids[edge.followee]); err != nil {
			if errors.Is(err, models.ErrDuplicateFollow) {
				continue
			}
			log.Fatal("failed to create follow",
				zap.String("follower", edge.follower),
				zap.String("followee", edge.followee),
				zap.Error(err),
			)
		}
		created++
	}
	log.Info("seeded follows", zap.Int("created", created), zap.Int("total", len(edges)))
}
