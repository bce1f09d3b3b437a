package inmem

import (
	"context"
	"sync"
	"time"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/BloggingApp/social-service/internal/repository"
	"github.com/google/uuid"
)

type userRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*model.User
	order []uuid.UUID
}

func newUserRepo() repository.User {
	return &userRepo{
		users: make(map[uuid.UUID]*model.User),
	}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *user
	stored.CreatedAt = time.Now()
	r.users[stored.ID] = &stored
	r.order = append(r.order, stored.ID)

	copied := stored
	return &copied, nil
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	copied := *user
	return &copied, nil
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.users[id].Username == username {
			copied := *r.users[id]
			return &copied, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (r *userRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*model.User, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.users[id]
		users = append(users, &copied)
	}

	return users, nil
}

func (r *userRepo) UpdateBio(ctx context.Context, id uuid.UUID, bio string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	user.Bio = &bio

	copied := *user
	return &copied, nil
}
