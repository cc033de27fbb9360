package redis

import "fmt"

// Key key.
type Key string

// Format format.
func (k Key) Format(params ...interface{}) string {
	return fmt.Sprintf(string(k), params...)
}

// Session keys.

const (
	// SessionDeleteLaterMessagesForActor1 is the key for placeholder messages
	// that should be deleted when the actor cancels their in-flight commands.
	// params: actor id
	SessionDeleteLaterMessagesForActor1 Key = "session/delete_later_messages_for_actor/%d" // List
)

// Rate limits.

const (
	// CommandRateLimitLock2 is the key for the per-command rate limit window.
	// params: command, chat id
	CommandRateLimitLock2 Key = "rate_limit/command:%s/chat/%s"
)
