package inmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/BloggingApp/social-service/internal/repository"
	"github.com/google/uuid"
)

type postRepo struct {
	mu    sync.RWMutex
	seq   seq
	posts []*model.Post
}

func newPostRepo() repository.Post {
	return &postRepo{}
}

func (r *postRepo) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *post
	stored.ID = r.seq.nextID()
	stored.CreatedAt = time.Now()
	r.posts = append(r.posts, &stored)

	copied := stored
	return &copied, nil
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, post := range r.posts {
		if post.ID == id {
			copied := *post
			return &copied, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (r *postRepo) FindByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var posts []*model.Post
	for _, post := range r.posts {
		if post.AuthorID == authorID {
			copied := *post
			posts = append(posts, &copied)
		}
	}

	sortByCreatedAtDesc(posts)
	return posts, nil
}

func (r *postRepo) FindAll(ctx context.Context) ([]*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]*model.Post, 0, len(r.posts))
	for _, post := range r.posts {
		copied := *post
		posts = append(posts, &copied)
	}

	sortByCreatedAtDesc(posts)
	return posts, nil
}

func (r *postRepo) DeleteByID(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, post := range r.posts {
		if post.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}

	return nil
}

func sortByCreatedAtDesc(posts []*model.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
