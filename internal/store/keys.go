package store

import "fmt"

// Keys of the persisted key-value model.
const (
	KeyName1         = "name1"
	KeyName2         = "name2"
	KeyStartDate     = "startDate"
	KeyCalendarNotes = "calendarNotes"
	KeyUserCode      = "userCode"
	KeyUserName      = "userName"
	KeyFriends       = "friends"
	KeyAppLanguage   = "appLanguage"

	MessagesKeyPrefix = "messages_"
)

// MessagesKey returns the key holding the message log between owner and friend.
func MessagesKey(ownerCode, friendCode string) string {
	return fmt.Sprintf("%s%s_%s", MessagesKeyPrefix, ownerCode, friendCode)
}
