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

type notificationRepo struct {
	mu            sync.RWMutex
	seq           seq
	notifications []*model.Notification
}

func newNotificationRepo() repository.Notification {
	return &notificationRepo{}
}

func (r *notificationRepo) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *n
	stored.ID = r.seq.nextID()
	stored.Read = false
	stored.CreatedAt = time.Now()
	r.notifications = append(r.notifications, &stored)

	copied := stored
	return &copied, nil
}

func (r *notificationRepo) FindByID(ctx context.Context, id int64) (*model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.notifications {
		if n.ID == id {
			copied := *n
			return &copied, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (r *notificationRepo) FindByReceiverID(ctx context.Context, receiverID uuid.UUID) ([]*model.Notification, error) {
	return r.findMany(func(n *model.Notification) bool { return n.ReceiverID == receiverID })
}

func (r *notificationRepo) FindUnreadByReceiverID(ctx context.Context, receiverID uuid.UUID) ([]*model.Notification, error) {
	return r.findMany(func(n *model.Notification) bool { return n.ReceiverID == receiverID && !n.Read })
}

func (r *notificationRepo) findMany(match func(*model.Notification) bool) ([]*model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var notifications []*model.Notification
	for _, n := range r.notifications {
		if match(n) {
			copied := *n
			notifications = append(notifications, &copied)
		}
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	return notifications, nil
}

func (r *notificationRepo) CountUnreadByReceiverID(ctx context.Context, receiverID uuid.UUID) (int64, error) {
	unread, _ := r.FindUnreadByReceiverID(ctx, receiverID)
	return int64(len(unread)), nil
}

func (r *notificationRepo) MarkAsRead(ctx context.Context, id int64) (*model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notifications {
		if n.ID == id {
			n.Read = true
			copied := *n
			return &copied, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (r *notificationRepo) DeleteByID(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.notifications {
		if n.ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}

	return nil
}

func (r *notificationRepo) DeleteReadOlderThan(ctx context.Context, age time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-age)
	kept := r.notifications[:0]
	for _, n := range r.notifications {
		if !n.Read || n.CreatedAt.After(cutoff) {
			kept = append(kept, n)
		}
	}
	r.notifications = kept

	return nil
}
