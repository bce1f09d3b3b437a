package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/BloggingApp/social-service/internal/notifier"
	"github.com/BloggingApp/social-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type postService struct {
	logger     *zap.Logger
	store      *repository.Store
	dispatcher *notifier.Dispatcher
}

func newPostService(logger *zap.Logger, store *repository.Store, dispatcher *notifier.Dispatcher) Post {
	return &postService{
		logger:     logger,
		store:      store,
		dispatcher: dispatcher,
	}
}

// Create persists the post and fans out one "POST" notification per follower
// of the author, synchronously within this call. A failed dispatch never
// rolls the post back; failures are logged per follower.
func (s *postService) Create(ctx context.Context, authorID uuid.UUID, content string) (*model.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > model.MAX_POST_CONTENT_LEN {
		return nil, ErrContentTooLong
	}

	post, err := s.store.Post.Create(ctx, &model.Post{
		AuthorID: authorID,
		Content:  content,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to create post for user(%s): %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	followers, err := s.store.Follow.FindByFolloweeID(ctx, authorID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get user(%s)'s followers for post(%d) fan-out: %s", authorID.String(), post.ID, err.Error())
		return post, nil
	}

	message := fmt.Sprintf("User %s posted: %s", authorID.String(), content)
	for _, follower := range followers {
		if _, err := s.dispatcher.Dispatch(ctx, &model.Notification{
			ReceiverID: follower.FollowerID,
			Message:    message,
			Type:       model.NOTIFICATION_TYPE_POST,
		}); err != nil {
			s.logger.Sugar().Errorf("failed to dispatch post(%d) notification to user(%s): %s", post.ID, follower.FollowerID.String(), err.Error())
		}
	}

	return post, nil
}

func (s *postService) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.store.Post.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to get post(%d): %s", id, err.Error())
		return nil, ErrInternal
	}

	return post, nil
}

func (s *postService) GetUserPosts(ctx context.Context, authorID uuid.UUID) ([]*model.Post, error) {
	posts, err := s.store.Post.FindByAuthorID(ctx, authorID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get user(%s)'s posts: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	return posts, nil
}

func (s *postService) GetAll(ctx context.Context) ([]*model.Post, error) {
	posts, err := s.store.Post.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to list posts: %s", err.Error())
		return nil, ErrInternal
	}

	return posts, nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Post.DeleteByID(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%d): %s", id, err.Error())
		return ErrInternal
	}

	return nil
}

// Feed recomputes the reverse-chronological union of the followees' posts on
// every call. The requester's own posts are not included. Ties on creation
// time keep per-followee retrieval order (stable sort).
func (s *postService) Feed(ctx context.Context, userID uuid.UUID) ([]*model.Post, error) {
	following, err := s.store.Follow.FindByFollowerID(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get user(%s)'s followees for feed: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	var feed []*model.Post
	for _, follow := range following {
		posts, err := s.store.Post.FindByAuthorID(ctx, follow.FolloweeID)
		if err != nil {
			s.logger.Sugar().Errorf("failed to get user(%s)'s posts for user(%s)'s feed: %s", follow.FolloweeID.String(), userID.String(), err.Error())
			return nil, ErrInternal
		}

		feed = append(feed, posts...)
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})

	return feed, nil
}
