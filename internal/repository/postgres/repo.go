package postgres

import (
	"context"
	"fmt"

	"github.com/BloggingApp/social-service/internal/config"
	"github.com/BloggingApp/social-service/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode,
	)
	return pgxpool.New(ctx, dsn)
}

func New(db *pgxpool.Pool) *repository.Store {
	return &repository.Store{
		User:         newUserRepo(db),
		Post:         newPostRepo(db),
		Follow:       newFollowRepo(db),
		Notification: newNotificationRepo(db),
	}
}
