package service

import (
	"context"
	"testing"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/stretchr/testify/require"
)

func TestFollowServiceSelfFollow(t *testing.T) {
	env := newTestEnv(t)

	alice := env.mustCreateUser(t, "alice")

	_, err := env.services.Follow.Follow(context.Background(), alice.ID, alice.ID)
	require.ErrorIs(t, err, ErrSelfFollow)
}

func TestFollowServiceDuplicateFollow(t *testing.T) {
	env := newTestEnv(t)

	alice := env.mustCreateUser(t, "alice")
	bob := env.mustCreateUser(t, "bob")

	_, err := env.services.Follow.Follow(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = env.services.Follow.Follow(context.Background(), alice.ID, bob.ID)
	require.ErrorIs(t, err, ErrAlreadyFollowing)
}

func TestFollowServiceFollowNotifiesFollowee(t *testing.T) {
	env := newTestEnv(t)

	alice := env.mustCreateUser(t, "alice")
	bob := env.mustCreateUser(t, "bob")

	_, err := env.services.Follow.Follow(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)

	notifications, err := env.store.Notification.FindByReceiverID(context.Background(), bob.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, model.NOTIFICATION_TYPE_FOLLOW, notifications[0].Type)
	require.Contains(t, notifications[0].Message, alice.ID.String())

	// the follower gets nothing
	own, err := env.store.Notification.FindByReceiverID(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Empty(t, own)
}

func TestFollowServiceUnfollow(t *testing.T) {
	env := newTestEnv(t)

	alice := env.mustCreateUser(t, "alice")
	bob := env.mustCreateUser(t, "bob")

	_, err := env.services.Follow.Follow(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)

	following, err := env.services.Follow.IsFollowing(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, following)

	require.NoError(t, env.services.Follow.Unfollow(context.Background(), alice.ID, bob.ID))

	following, err = env.services.Follow.IsFollowing(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)
	require.False(t, following)

	require.ErrorIs(t, env.services.Follow.Unfollow(context.Background(), alice.ID, bob.ID), ErrNotFollowing)
}

func TestFollowServiceListsAndCounts(t *testing.T) {
	env := newTestEnv(t)

	alice := env.mustCreateUser(t, "alice")
	bob := env.mustCreateUser(t, "bob")
	carol := env.mustCreateUser(t, "carol")

	_, err := env.services.Follow.Follow(context.Background(), alice.ID, carol.ID)
	require.NoError(t, err)
	_, err = env.services.Follow.Follow(context.Background(), bob.ID, carol.ID)
	require.NoError(t, err)
	_, err = env.services.Follow.Follow(context.Background(), carol.ID, alice.ID)
	require.NoError(t, err)

	followers, err := env.services.Follow.Followers(context.Background(), carol.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	require.Equal(t, alice.ID, followers[0].FollowerID)
	require.Equal(t, bob.ID, followers[1].FollowerID)

	following, err := env.services.Follow.Following(context.Background(), carol.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	require.Equal(t, alice.ID, following[0].FolloweeID)

	followerCount, err := env.services.Follow.FollowerCount(context.Background(), carol.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, followerCount)

	followingCount, err := env.services.Follow.FollowingCount(context.Background(), carol.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, followingCount)
}
