package redisrepo

import "fmt"

const (
	HOME_FEED_KEY     = "home-feed:%d:%d" // <page>:<size>
	USER_ID_KEY       = "user:id:%s"      // <userID>
	USER_USERNAME_KEY = "user:name:%s"    // <username>
)

func HomeFeedKey(page int, size int) string {
	return fmt.Sprintf(HOME_FEED_KEY, page, size)
}

func UserIDKey(userID string) string {
	return fmt.Sprintf(USER_ID_KEY, userID)
}

func UserUsernameKey(username string) string {
	return fmt.Sprintf(USER_USERNAME_KEY, username)
}
