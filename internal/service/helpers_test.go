package service

import (
	"context"
	"testing"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/BloggingApp/social-service/internal/notifier"
	"github.com/BloggingApp/social-service/internal/repository"
	"github.com/BloggingApp/social-service/internal/repository/inmem"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	services   *Service
	store      *repository.Store
	dispatcher *notifier.Dispatcher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := inmem.New()
	dispatcher := notifier.New(zap.NewNop(), store.Notification)

	return &testEnv{
		services:   New(zap.NewNop(), store, nil, dispatcher),
		store:      store,
		dispatcher: dispatcher,
	}
}

func (e *testEnv) mustCreateUser(t *testing.T, username string) *model.User {
	t.Helper()

	user, err := e.services.User.Create(context.Background(), username, username+"@example.com")
	require.NoError(t, err)
	return user
}
