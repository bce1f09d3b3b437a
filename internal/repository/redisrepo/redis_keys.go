package redisrepo

import "fmt"

const (
	USER_NOTIFICATIONS = "user:%s-notifications"
)

func UserNotificationsKey(userID string) string {
	return fmt.Sprintf(USER_NOTIFICATIONS, userID)
}
