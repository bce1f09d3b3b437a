package service

import (
	"context"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/BloggingApp/social-service/internal/notifier"
	"github.com/BloggingApp/social-service/internal/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type User interface {
	Create(ctx context.Context, username string, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetAll(ctx context.Context) ([]*model.User, error)
	UpdateBio(ctx context.Context, id uuid.UUID, bio string) (*model.User, error)
}

type Post interface {
	Create(ctx context.Context, authorID uuid.UUID, content string) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	GetUserPosts(ctx context.Context, authorID uuid.UUID) ([]*model.Post, error)
	GetAll(ctx context.Context) ([]*model.Post, error)
	Delete(ctx context.Context, id int64) error
	Feed(ctx context.Context, userID uuid.UUID) ([]*model.Post, error)
}

type Follow interface {
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) (*model.Follow, error)
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error
	Followers(ctx context.Context, userID uuid.UUID) ([]*model.Follow, error)
	Following(ctx context.Context, userID uuid.UUID) ([]*model.Follow, error)
	IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	FollowerCount(ctx context.Context, userID uuid.UUID) (int64, error)
	FollowingCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type Notification interface {
	Create(ctx context.Context, receiverID uuid.UUID, message string, notificationType string) (*model.Notification, error)
	GetUserNotifications(ctx context.Context, receiverID uuid.UUID) ([]*model.Notification, error)
	GetUnread(ctx context.Context, receiverID uuid.UUID) ([]*model.Notification, error)
	UnreadCount(ctx context.Context, receiverID uuid.UUID) (int64, error)
	MarkAsRead(ctx context.Context, receiverID uuid.UUID, id int64) (*model.Notification, error)
	Delete(ctx context.Context, receiverID uuid.UUID, id int64) error
	StartJobs()
}

type Service struct {
	User
	Post
	Follow
	Notification
}

func New(logger *zap.Logger, store *repository.Store, rdb *redis.Client, dispatcher *notifier.Dispatcher) *Service {
	return &Service{
		User:         newUserService(logger, store),
		Post:         newPostService(logger, store, dispatcher),
		Follow:       newFollowService(logger, store, dispatcher),
		Notification: newNotificationService(logger, store, rdb),
	}
}
