package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/BloggingApp/social-service/internal/notifier"
	"github.com/BloggingApp/social-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type followService struct {
	logger     *zap.Logger
	store      *repository.Store
	dispatcher *notifier.Dispatcher
}

func newFollowService(logger *zap.Logger, store *repository.Store, dispatcher *notifier.Dispatcher) Follow {
	return &followService{
		logger:     logger,
		store:      store,
		dispatcher: dispatcher,
	}
}

// Follow creates the edge and notifies the followee through the dispatcher.
// The duplicate check races with concurrent follows of the same pair; the
// store's pair-uniqueness constraint is what actually holds the invariant.
func (s *followService) Follow(ctx context.Context, followerID, followeeID uuid.UUID) (*model.Follow, error) {
	if followerID == followeeID {
		return nil, ErrSelfFollow
	}

	existing, err := s.store.Follow.FindByPair(ctx, followerID, followeeID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check follow(%s -> %s): %s", followerID.String(), followeeID.String(), err.Error())
		return nil, ErrInternal
	}
	if len(existing) > 0 {
		return nil, ErrAlreadyFollowing
	}

	follow, err := s.store.Follow.Create(ctx, &model.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateFollow) {
			return nil, ErrAlreadyFollowing
		}
		s.logger.Sugar().Errorf("failed to create follow(%s -> %s): %s", followerID.String(), followeeID.String(), err.Error())
		return nil, ErrInternal
	}

	if _, err := s.dispatcher.Dispatch(ctx, &model.Notification{
		ReceiverID: followeeID,
		Message:    fmt.Sprintf("User %s followed you!", followerID.String()),
		Type:       model.NOTIFICATION_TYPE_FOLLOW,
	}); err != nil {
		s.logger.Sugar().Errorf("failed to dispatch follow notification to user(%s): %s", followeeID.String(), err.Error())
	}

	return follow, nil
}

// Unfollow deletes every edge for the pair. There should only be one, but
// the store delete tolerates duplicates anyway.
func (s *followService) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	follows, err := s.store.Follow.FindByPair(ctx, followerID, followeeID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check follow(%s -> %s): %s", followerID.String(), followeeID.String(), err.Error())
		return ErrInternal
	}
	if len(follows) == 0 {
		return ErrNotFollowing
	}

	if err := s.store.Follow.DeleteAll(ctx, follows); err != nil {
		s.logger.Sugar().Errorf("failed to delete follow(%s -> %s): %s", followerID.String(), followeeID.String(), err.Error())
		return ErrInternal
	}

	return nil
}

func (s *followService) Followers(ctx context.Context, userID uuid.UUID) ([]*model.Follow, error) {
	follows, err := s.store.Follow.FindByFolloweeID(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get user(%s)'s followers: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	return follows, nil
}

func (s *followService) Following(ctx context.Context, userID uuid.UUID) ([]*model.Follow, error) {
	follows, err := s.store.Follow.FindByFollowerID(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get user(%s)'s followees: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	return follows, nil
}

func (s *followService) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	follows, err := s.store.Follow.FindByPair(ctx, followerID, followeeID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check follow(%s -> %s): %s", followerID.String(), followeeID.String(), err.Error())
		return false, ErrInternal
	}

	return len(follows) > 0, nil
}

func (s *followService) FollowerCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.store.Follow.CountByFolloweeID(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count user(%s)'s followers: %s", userID.String(), err.Error())
		return 0, ErrInternal
	}

	return count, nil
}

func (s *followService) FollowingCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.store.Follow.CountByFollowerID(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count user(%s)'s followees: %s", userID.String(), err.Error())
		return 0, ErrInternal
	}

	return count, nil
}
