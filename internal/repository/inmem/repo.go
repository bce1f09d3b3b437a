// Package inmem implements the record store over mutex-guarded maps.
// It backs the test suite and local runs that have no Postgres around.
package inmem

import (
	"sync"

	"github.com/BloggingApp/social-service/internal/repository"
)

func New() *repository.Store {
	return &repository.Store{
		User:         newUserRepo(),
		Post:         newPostRepo(),
		Follow:       newFollowRepo(),
		Notification: newNotificationRepo(),
	}
}

// seq hands out int64 ids the way a bigserial column would.
type seq struct {
	mu   sync.Mutex
	next int64
}

func (s *seq) nextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.next
}
