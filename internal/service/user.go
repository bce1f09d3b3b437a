package service

import (
	"context"
	"errors"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/BloggingApp/social-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type userService struct {
	logger *zap.Logger
	store  *repository.Store
}

func newUserService(logger *zap.Logger, store *repository.Store) User {
	return &userService{
		logger: logger,
		store:  store,
	}
}

func (s *userService) Create(ctx context.Context, username string, email string) (*model.User, error) {
	_, err := s.store.User.FindByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Sugar().Errorf("failed to check username(%s) availability: %s", username, err.Error())
		return nil, ErrInternal
	}

	user, err := s.store.User.Create(ctx, &model.User{
		ID:       uuid.New(),
		Username: username,
		Email:    email,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s): %s", username, err.Error())
		return nil, ErrInternal
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.store.User.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Sugar().Errorf("failed to get user(%s): %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	return user, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.store.User.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Sugar().Errorf("failed to get user(%s): %s", username, err.Error())
		return nil, ErrInternal
	}

	return user, nil
}

func (s *userService) GetAll(ctx context.Context) ([]*model.User, error) {
	users, err := s.store.User.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to list users: %s", err.Error())
		return nil, ErrInternal
	}

	return users, nil
}

func (s *userService) UpdateBio(ctx context.Context, id uuid.UUID, bio string) (*model.User, error) {
	user, err := s.store.User.UpdateBio(ctx, id, bio)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Sugar().Errorf("failed to update user(%s)'s bio: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	return user, nil
}
