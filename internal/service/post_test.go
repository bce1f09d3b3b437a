package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/stretchr/testify/require"
)

func TestPostServiceContentValidation(t *testing.T) {
	env := newTestEnv(t)
	alice := env.mustCreateUser(t, "alice")

	_, err := env.services.Post.Create(context.Background(), alice.ID, "")
	require.ErrorIs(t, err, ErrEmptyContent)

	_, err = env.services.Post.Create(context.Background(), alice.ID, "   \t\n")
	require.ErrorIs(t, err, ErrEmptyContent)

	_, err = env.services.Post.Create(context.Background(), alice.ID, strings.Repeat("a", 251))
	require.ErrorIs(t, err, ErrContentTooLong)

	post, err := env.services.Post.Create(context.Background(), alice.ID, strings.Repeat("a", 250))
	require.NoError(t, err)
	require.NotZero(t, post.ID)
	require.Equal(t, alice.ID, post.AuthorID)
}

func TestPostServiceFanOut(t *testing.T) {
	env := newTestEnv(t)

	author := env.mustCreateUser(t, "author")
	follower1 := env.mustCreateUser(t, "follower1")
	follower2 := env.mustCreateUser(t, "follower2")
	bystander := env.mustCreateUser(t, "bystander")

	_, err := env.services.Follow.Follow(context.Background(), follower1.ID, author.ID)
	require.NoError(t, err)
	_, err = env.services.Follow.Follow(context.Background(), follower2.ID, author.ID)
	require.NoError(t, err)

	_, err = env.services.Post.Create(context.Background(), author.ID, "hello world")
	require.NoError(t, err)

	for _, follower := range []*model.User{follower1, follower2} {
		notifications, err := env.store.Notification.FindByReceiverID(context.Background(), follower.ID)
		require.NoError(t, err)
		require.Len(t, notifications, 1)
		require.Equal(t, model.NOTIFICATION_TYPE_POST, notifications[0].Type)
		require.Contains(t, notifications[0].Message, "hello world")
		require.Contains(t, notifications[0].Message, author.ID.String())
	}

	notifications, err := env.store.Notification.FindByReceiverID(context.Background(), bystander.ID)
	require.NoError(t, err)
	require.Empty(t, notifications)

	// the author gets no notification for their own post
	notifications, err = env.store.Notification.FindByReceiverID(context.Background(), author.ID)
	require.NoError(t, err)
	require.Empty(t, notifications)
}

func TestPostServiceGetUserPostsOrdered(t *testing.T) {
	env := newTestEnv(t)
	alice := env.mustCreateUser(t, "alice")

	for _, content := range []string{"first", "second", "third"} {
		_, err := env.services.Post.Create(context.Background(), alice.ID, content)
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}

	posts, err := env.services.Post.GetUserPosts(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	require.Equal(t, "third", posts[0].Content)
	require.Equal(t, "second", posts[1].Content)
	require.Equal(t, "first", posts[2].Content)
}

func TestPostServiceFeed(t *testing.T) {
	env := newTestEnv(t)

	reader := env.mustCreateUser(t, "reader")
	writer1 := env.mustCreateUser(t, "writer1")
	writer2 := env.mustCreateUser(t, "writer2")
	stranger := env.mustCreateUser(t, "stranger")

	_, err := env.services.Follow.Follow(context.Background(), reader.ID, writer1.ID)
	require.NoError(t, err)
	_, err = env.services.Follow.Follow(context.Background(), reader.ID, writer2.ID)
	require.NoError(t, err)

	_, err = env.services.Post.Create(context.Background(), writer1.ID, "w1 old")
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = env.services.Post.Create(context.Background(), writer2.ID, "w2 mid")
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = env.services.Post.Create(context.Background(), writer1.ID, "w1 new")
	require.NoError(t, err)

	// not in the feed: the stranger's posts and the reader's own
	_, err = env.services.Post.Create(context.Background(), stranger.ID, "noise")
	require.NoError(t, err)
	_, err = env.services.Post.Create(context.Background(), reader.ID, "my own post")
	require.NoError(t, err)

	feed, err := env.services.Post.Feed(context.Background(), reader.ID)
	require.NoError(t, err)
	require.Len(t, feed, 3)
	require.Equal(t, "w1 new", feed[0].Content)
	require.Equal(t, "w2 mid", feed[1].Content)
	require.Equal(t, "w1 old", feed[2].Content)

	for i := 0; i < len(feed)-1; i++ {
		require.False(t, feed[i].CreatedAt.Before(feed[i+1].CreatedAt))
	}
}

func TestPostServiceFeedEmptyWithoutFollows(t *testing.T) {
	env := newTestEnv(t)
	loner := env.mustCreateUser(t, "loner")

	_, err := env.services.Post.Create(context.Background(), loner.ID, "talking to myself")
	require.NoError(t, err)

	feed, err := env.services.Post.Feed(context.Background(), loner.ID)
	require.NoError(t, err)
	require.Empty(t, feed)
}

func TestPostServiceDelete(t *testing.T) {
	env := newTestEnv(t)
	alice := env.mustCreateUser(t, "alice")

	post, err := env.services.Post.Create(context.Background(), alice.ID, "soon gone")
	require.NoError(t, err)

	require.NoError(t, env.services.Post.Delete(context.Background(), post.ID))

	_, err = env.services.Post.GetByID(context.Background(), post.ID)
	require.ErrorIs(t, err, ErrPostNotFound)
}
