package repository

import (
	"context"
	"errors"
	"time"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by find operations when no row matches.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateFollow is returned when inserting a follow edge that
	// already exists for the (follower, followee) pair.
	ErrDuplicateFollow = errors.New("follow edge already exists")
)

type User interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindAll(ctx context.Context) ([]*model.User, error)
	UpdateBio(ctx context.Context, id uuid.UUID, bio string) (*model.User, error)
}

type Post interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id int64) (*model.Post, error)
	FindByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*model.Post, error)
	FindAll(ctx context.Context) ([]*model.Post, error)
	DeleteByID(ctx context.Context, id int64) error
}

type Follow interface {
	Create(ctx context.Context, follow *model.Follow) (*model.Follow, error)
	FindByFollowerID(ctx context.Context, followerID uuid.UUID) ([]*model.Follow, error)
	FindByFolloweeID(ctx context.Context, followeeID uuid.UUID) ([]*model.Follow, error)
	FindByPair(ctx context.Context, followerID, followeeID uuid.UUID) ([]*model.Follow, error)
	DeleteAll(ctx context.Context, follows []*model.Follow) error
	CountByFollowerID(ctx context.Context, followerID uuid.UUID) (int64, error)
	CountByFolloweeID(ctx context.Context, followeeID uuid.UUID) (int64, error)
}

type Notification interface {
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)
	FindByID(ctx context.Context, id int64) (*model.Notification, error)
	FindByReceiverID(ctx context.Context, receiverID uuid.UUID) ([]*model.Notification, error)
	FindUnreadByReceiverID(ctx context.Context, receiverID uuid.UUID) ([]*model.Notification, error)
	CountUnreadByReceiverID(ctx context.Context, receiverID uuid.UUID) (int64, error)
	MarkAsRead(ctx context.Context, id int64) (*model.Notification, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteReadOlderThan(ctx context.Context, age time.Duration) error
}

// Store aggregates the per-entity record stores behind one handle.
type Store struct {
	User         User
	Post         Post
	Follow       Follow
	Notification Notification
}
