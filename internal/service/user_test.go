package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUserServiceCreate(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.services.User.Create(context.Background(), "alice", "alice@example.com")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, user.ID)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "alice@example.com", user.Email)

	found, err := env.services.User.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, user.ID, found.ID)
}

func TestUserServiceCreateDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)

	env.mustCreateUser(t, "alice")

	_, err := env.services.User.Create(context.Background(), "alice", "other@example.com")
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserServiceGetByIDNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.services.User.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserServiceUpdateBio(t *testing.T) {
	env := newTestEnv(t)

	user := env.mustCreateUser(t, "alice")
	require.Nil(t, user.Bio)

	updated, err := env.services.User.UpdateBio(context.Background(), user.ID, "gopher")
	require.NoError(t, err)
	require.NotNil(t, updated.Bio)
	require.Equal(t, "gopher", *updated.Bio)

	_, err = env.services.User.UpdateBio(context.Background(), uuid.New(), "nope")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserServiceGetAll(t *testing.T) {
	env := newTestEnv(t)

	env.mustCreateUser(t, "alice")
	env.mustCreateUser(t, "bob")

	users, err := env.services.User.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
}
