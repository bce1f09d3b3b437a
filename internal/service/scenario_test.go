package service

import (
	"context"
	"testing"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/stretchr/testify/require"
)

// End-to-end walk through the fan-out path: follow, post, read notifications,
// mark one as read.
func TestFollowPostNotifyScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u1 := env.mustCreateUser(t, "u1")
	u2 := env.mustCreateUser(t, "u2")

	// u1 follows u2: u2 gets a FOLLOW notification
	_, err := env.services.Follow.Follow(ctx, u1.ID, u2.ID)
	require.NoError(t, err)

	u2Notifications, err := env.services.Notification.GetUserNotifications(ctx, u2.ID)
	require.NoError(t, err)
	require.Len(t, u2Notifications, 1)
	require.Equal(t, model.NOTIFICATION_TYPE_FOLLOW, u2Notifications[0].Type)

	// u2 posts: u1 gets a POST notification mentioning the content
	_, err = env.services.Post.Create(ctx, u2.ID, "hello")
	require.NoError(t, err)

	u1Notifications, err := env.services.Notification.GetUserNotifications(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, u1Notifications, 1)
	require.Equal(t, model.NOTIFICATION_TYPE_POST, u1Notifications[0].Type)
	require.Contains(t, u1Notifications[0].Message, "hello")

	unreadBefore, err := env.services.Notification.UnreadCount(ctx, u1.ID)
	require.NoError(t, err)
	require.GreaterOrEqual(t, unreadBefore, int64(1))

	_, err = env.services.Notification.MarkAsRead(ctx, u1.ID, u1Notifications[0].ID)
	require.NoError(t, err)

	unreadAfter, err := env.services.Notification.UnreadCount(ctx, u1.ID)
	require.NoError(t, err)
	require.Equal(t, unreadBefore-1, unreadAfter)

	// the feed shows u2's post to u1
	feed, err := env.services.Post.Feed(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	require.Equal(t, "hello", feed[0].Content)
	require.Equal(t, u2.ID, feed[0].AuthorID)
}
