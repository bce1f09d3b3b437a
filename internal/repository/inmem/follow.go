package inmem

import (
	"context"
	"sync"
	"time"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/BloggingApp/social-service/internal/repository"
	"github.com/google/uuid"
)

type followRepo struct {
	mu      sync.RWMutex
	seq     seq
	follows []*model.Follow
}

func newFollowRepo() repository.Follow {
	return &followRepo{}
}

// Create enforces at-most-one edge per pair under the repo lock, mirroring
// the UNIQUE (follower_id, followee_id) constraint of the postgres schema.
func (r *followRepo) Create(ctx context.Context, follow *model.Follow) (*model.Follow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.follows {
		if existing.FollowerID == follow.FollowerID && existing.FolloweeID == follow.FolloweeID {
			return nil, repository.ErrDuplicateFollow
		}
	}

	stored := *follow
	stored.ID = r.seq.nextID()
	stored.CreatedAt = time.Now()
	r.follows = append(r.follows, &stored)

	copied := stored
	return &copied, nil
}

func (r *followRepo) FindByFollowerID(ctx context.Context, followerID uuid.UUID) ([]*model.Follow, error) {
	return r.findMany(func(f *model.Follow) bool { return f.FollowerID == followerID })
}

func (r *followRepo) FindByFolloweeID(ctx context.Context, followeeID uuid.UUID) ([]*model.Follow, error) {
	return r.findMany(func(f *model.Follow) bool { return f.FolloweeID == followeeID })
}

func (r *followRepo) FindByPair(ctx context.Context, followerID, followeeID uuid.UUID) ([]*model.Follow, error) {
	return r.findMany(func(f *model.Follow) bool {
		return f.FollowerID == followerID && f.FolloweeID == followeeID
	})
}

func (r *followRepo) findMany(match func(*model.Follow) bool) ([]*model.Follow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var follows []*model.Follow
	for _, follow := range r.follows {
		if match(follow) {
			copied := *follow
			follows = append(follows, &copied)
		}
	}

	return follows, nil
}

func (r *followRepo) DeleteAll(ctx context.Context, follows []*model.Follow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make(map[int64]struct{}, len(follows))
	for _, follow := range follows {
		ids[follow.ID] = struct{}{}
	}

	kept := r.follows[:0]
	for _, follow := range r.follows {
		if _, ok := ids[follow.ID]; !ok {
			kept = append(kept, follow)
		}
	}
	r.follows = kept

	return nil
}

func (r *followRepo) CountByFollowerID(ctx context.Context, followerID uuid.UUID) (int64, error) {
	follows, _ := r.FindByFollowerID(ctx, followerID)
	return int64(len(follows)), nil
}

func (r *followRepo) CountByFolloweeID(ctx context.Context, followeeID uuid.UUID) (int64, error) {
	follows, _ := r.FindByFolloweeID(ctx, followeeID)
	return int64(len(follows)), nil
}
