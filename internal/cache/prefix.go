package cache

import "fmt"

type Prefix string

const (
	// UserMessages counts stored messages per user.
	UserMessages Prefix = "user_messages"
	// DailyTotal caches the total number of messages archived on a day.
	DailyTotal Prefix = "daily_total"
)

func (p Prefix) Key(id string) string {
	return fmt.Sprintf("%s:%s", p, id)
}
